// Package validation validates request and fixture structs with
// go-playground/validator and reports failures as BAD_REQUEST errors whose
// message is safe to show to clients.
package validation

import (
	"discovery/pkg/serrors"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate //nolint: gochecknoglobals
	validateOnce sync.Once           //nolint: gochecknoglobals
)

// Validator returns the shared validator. Field names in errors are taken from
// json tags so they match what clients send.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}

			return name
		})
	})

	return validate
}

// Struct validates v. Every failing field is described in the message of the
// returned error.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	messages := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		messages[i] = translate(fe)
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", strings.Join(messages, "; "))
}

var simpleMessages = map[string]string{ //nolint: gochecknoglobals
	"required":  "%s is required",
	"latitude":  "%s must be a valid latitude (-90 to 90)",
	"longitude": "%s must be a valid longitude (-180 to 180)",
	"uuid":      "%s must be a UUID",
}

var paramMessages = map[string]string{ //nolint: gochecknoglobals
	"oneof":    "%s must be one of: %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"gtefield": "%s must not be before %s",
}

func translate(fe validator.FieldError) string {
	field := fe.Namespace()
	// drop the root struct name
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	if tmpl, ok := simpleMessages[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field, fe.Param())
	}

	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
