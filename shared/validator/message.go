package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// messages renders a failed rule for a field. Rules without an entry fall back to the
// library's own message.
var messages = map[string]func(field, param string) string{
	"required":    func(f, _ string) string { return f + " is required" },
	"email":       func(f, _ string) string { return f + " must be a valid email address" },
	"url":         func(f, _ string) string { return f + " must be a valid URL" },
	"phone":       func(f, _ string) string { return f + " must be a valid phone number" },
	"valid":       func(f, _ string) string { return f + " is not a valid value" },
	"oneof":       func(f, p string) string { return fmt.Sprintf("%s must be one of %s", f, p) },
	"gt":          func(f, p string) string { return fmt.Sprintf("%s must be greater than %s", f, p) },
	"gte":         atLeast,
	"min":         atLeast,
	"lte":         atMost,
	"max":         atMost,
	"datetime":    func(f, p string) string { return fmt.Sprintf("%s must match the format %s", f, p) },
	"mimetypes":   func(f, p string) string { return fmt.Sprintf("%s must be one of the types %s", f, p) },
	"maxfilesize": func(f, p string) string { return fmt.Sprintf("%s must not exceed %sMB", f, p) },
	"document":    func(f, _ string) string { return f + " must be a document url or a png, jpeg or pdf up to 5MB" },
}

func atLeast(field, param string) string {
	return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
}

func atMost(field, param string) string {
	return fmt.Sprintf("%s must be less than or equal to %s", field, param)
}

// message describes the first failed rule that has a known wording.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fe := range fieldErrors {
		if render, ok := messages[fe.Tag()]; ok {
			return render(fe.Field(), fe.Param())
		}
	}

	return fieldErrors.Error()
}
