// Package validation wraps go-playground/validator so request payloads can
// validate themselves and handlers can report field-level problems in a
// consistent shape.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payloads that know how to check
// themselves.
type Validatable interface {
	Validate() error
}

// FieldError describes a single invalid field, e.g.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

var (
	once     sync.Once
	instance *validator.Validate
)

// get returns the shared validator. validator.Validate caches struct
// metadata and is safe for concurrent use.
func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(jsonName)
		instance.RegisterAlias("int32", "min=-2147483648,max=2147483647")
	})
	return instance
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return get().Struct(s)
}

// Fields converts a validation error into per-field messages. Errors that did
// not come from the validator are reported against the empty field name.
func Fields(err error) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Error: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Error: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "int32":
		return "must be between -2147483648 and 2147483647"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
