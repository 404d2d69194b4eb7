// Package validation is the parse-or-fail entry point for API input and
// output schemas. Rules are declared as struct tags; a failed parse yields a
// single *Error carrying a flattened field->message map keyed by JSON field
// names, which the HTTP layer serializes verbatim.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error is a schema validation failure with per-field detail.
type Error struct {
	Message string
	Fields  map[string]string
}

// NewError builds a validation error with a custom message, e.g. for rules
// that span more than one field.
func NewError(message string, fields map[string]string) *Error {
	return &Error{Message: message, Fields: fields}
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

var (
	instance *validator.Validate
	once     sync.Once
)

// validate returns the shared validator. Field names in errors come from the
// json tag so clients can match them against their payload.
func validate() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// Struct validates v against its struct tags. On failure it returns *Error;
// any other error means v is not a validatable value at all.
func Struct(v any) error {
	err := validate().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &Error{Message: "Validation failed", Fields: fields}
}

// fieldMessage renders a single rule violation as a client-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
