package inventory

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

// maxQuantityDigits keeps every quantity inside int64.
const maxQuantityDigits = 18

var (
	// ErrQuantityNotNumber is returned for a quantity that does not parse as a number.
	ErrQuantityNotNumber = apperr.Validation("quantity must be a number")
	// ErrQuantityNotWhole is returned for a fractional quantity.
	ErrQuantityNotWhole = apperr.Validation("quantity must be a whole number")
	// ErrQuantityOutOfRange is returned for a quantity with more than 18 integer digits.
	ErrQuantityOutOfRange = apperr.Validation("quantity is out of range")
)

// Quantity is a stock count. It is stored as NUMERIC and serialised as a
// bare JSON number.
type Quantity struct{ decimal.Decimal }

// NewQuantity returns a whole-number quantity.
func NewQuantity(n int64) Quantity { return Quantity{decimal.NewFromInt(n)} }

// ParseQuantity reads the raw quantity from a request body. Absent and
// null values are zero; numbers and numeric strings are accepted when they
// are whole and have at most 18 digits.
func ParseQuantity(raw json.RawMessage) (Quantity, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return Quantity{}, nil
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return Quantity{}, ErrQuantityNotNumber
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return Quantity{}, nil
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, ErrQuantityNotNumber
	}
	return boundQuantity(d)
}

// boundQuantity checks magnitude from the digit count and exponent before
// any arithmetic, so a huge exponent is never expanded.
func boundQuantity(d decimal.Decimal) (Quantity, error) {
	if d.IsZero() {
		return Quantity{}, nil
	}
	intDigits := int64(d.NumDigits()) + int64(d.Exponent())
	if intDigits > maxQuantityDigits {
		return Quantity{}, ErrQuantityOutOfRange
	}
	if intDigits <= 0 || !d.IsInteger() {
		return Quantity{}, ErrQuantityNotWhole
	}
	return NewQuantity(d.IntPart()), nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal.String()), nil
}
