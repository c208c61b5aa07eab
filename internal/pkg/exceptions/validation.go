package exceptions

import (
	"errors"
	"fmt"
	"pilates-vision-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError renders the first failed rule as
// "<field> <message>", e.g. "language must be one of pt, en".
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}
	return describeFieldError(fieldErrors[0])
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	message, known := constvars.CustomValidationErrorMessages[fe.Tag()]
	if !known {
		return field + " is invalid"
	}
	if !constvars.TagsWithParams[fe.Tag()] {
		return field + " " + message
	}

	param := fe.Param()
	if fe.Tag() == "oneof" {
		param = strings.Join(strings.Fields(param), ", ")
	}
	return field + " " + fmt.Sprintf(message, param)
}
