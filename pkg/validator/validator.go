package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Field       string
	Tag         string
	Value       string
}

var validate = validator.New()

// zeroer is satisfied by time.Time and anything embedding it.
type zeroer interface {
	IsZero() bool
}

// enumerated is satisfied by closed integer code sets.
type enumerated interface {
	Valid() bool
}

func init() {
	// Register custom validation for calendar dates
	validate.RegisterValidation("date_required", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(zeroer); ok {
			return !d.IsZero()
		}
		return false
	})

	// Register custom validation for enumeration codes
	validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		if e, ok := fl.Field().Interface().(enumerated); ok {
			return e.Valid()
		}
		return false
	})

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct returns one entry per failed rule, in field order.
// Field carries the JSON name of the offending field.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*ErrorResponse{{FailedField: "", Tag: err.Error()}}
		}
		for _, err := range validationErrors {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Field = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
