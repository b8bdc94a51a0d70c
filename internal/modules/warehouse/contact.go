package warehouse

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

var (
	phonePattern = regexp.MustCompile(`^\+1 \(\d{3}\) \d{3}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var (
	// ErrInvalidPhone is returned by ParsePhone for any other shape.
	ErrInvalidPhone = apperr.Validation("invalid phone number format, expected +1 (XXX) XXX-XXXX")
	// ErrInvalidEmail is returned by ParseEmail for any other shape.
	ErrInvalidEmail = apperr.Validation("invalid email format")
)

// Phone is a contact number in the form +1 (XXX) XXX-XXXX. Values are only
// built by ParsePhone or read back from the store.
type Phone struct{ number string }

// ParsePhone validates s and returns it as a Phone.
func ParsePhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{number: s}, nil
}

func (p Phone) String() string { return p.number }

func (p Phone) MarshalJSON() ([]byte, error) { return json.Marshal(p.number) }

func (p Phone) Value() (driver.Value, error) { return p.number, nil }

func (p *Phone) Scan(src interface{}) error {
	s, err := scanString(src)
	p.number = s
	return err
}

// Email is a contact address shaped local@domain.tld.
type Email struct{ address string }

// ParseEmail validates s and returns it as an Email.
func ParseEmail(s string) (Email, error) {
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{address: s}, nil
}

func (e Email) String() string { return e.address }

func (e Email) MarshalJSON() ([]byte, error) { return json.Marshal(e.address) }

func (e Email) Value() (driver.Value, error) { return e.address, nil }

func (e *Email) Scan(src interface{}) error {
	s, err := scanString(src)
	e.address = s
	return err
}

func scanString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("cannot scan %T into a contact field", src)
	}
}
