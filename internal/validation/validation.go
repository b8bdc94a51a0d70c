// Package validation holds the request checks shared by the modules.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

// MsgAllFieldsRequired prefixes every presence failure.
const MsgAllFieldsRequired = "all fields are required"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Required checks the fields tagged `validate:"required"` on the struct v
// points to and names every missing one.
func Required(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return apperr.Validation(fmt.Sprintf("%s (missing: %s)", MsgAllFieldsRequired, strings.Join(missing, ", ")))
}

// TrimSpace trims each string in place.
func TrimSpace(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
