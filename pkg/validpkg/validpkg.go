// Package validpkg turns go-playground/validator failures into readable messages.
package validpkg

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorMsg returns the message suffix for a failed field, to be appended to its name.
func ErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "currency":
		return " must be a three-letter currency code"
	case "oneof":
		return " must be one of " + fe.Param()
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	}

	return " is invalid"
}

// Messages lists one message per failed field of err.
//
// Errors that do not come from the validator are returned as a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Namespace()+ErrorMsg(fe))
	}

	return msgs
}
