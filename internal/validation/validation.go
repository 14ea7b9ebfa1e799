// Package validation evaluates field rules on incoming payloads before
// any handler logic runs. Rules are declared as `validate` struct tags
// on the request DTOs and failures are reported as a list of field and
// message pairs suitable for a 400 response body.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

// Check runs the struct's validate tags and returns one FieldError per
// violation. A nil result means the payload passed.
func Check(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (e.g. a non-struct payload) are a
		// programming mistake; report them on a synthetic field.
		return []FieldError{{Field: "payload", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
