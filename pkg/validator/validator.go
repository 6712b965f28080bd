package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go-wholesale-console/internal/model"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed field.
type FieldError struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       string `json:"param,omitempty"`
}

// ValidationError is returned by Validate when at least one field failed.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	first := e.Fields[0]
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

// simpleEmail is the local@domain.tld shape accepted by the forms.
var simpleEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = validator.New()

func init() {
	validate.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return model.Role(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return simpleEmail.MatchString(s)
}

// ValidateStruct returns the failed fields of data, or nil.
func ValidateStruct(data interface{}) []*FieldError {
	var fields []*FieldError
	err := validate.Struct(data)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []*FieldError{{FailedField: "", Tag: err.Error()}}
		}
		for _, ve := range verrs {
			fields = append(fields, &FieldError{
				FailedField: ve.StructNamespace(),
				Tag:         ve.Tag(),
				Value:       ve.Param(),
			})
		}
	}
	return fields
}

// Validate is ValidateStruct folded into an error.
func Validate(data interface{}) error {
	if fields := ValidateStruct(data); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
