// Package validator wraps go-playground/validator with the error format used
// across ledgerwatch. Fields are reported by their JSON name when they have
// one, so failures on decoded payloads point at the wire field.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned on failure.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'amount': value '-1' does not meet the requirements for the 'gte' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(jsonName)
}

// jsonName reports the JSON name of a field, or its Go name without a json tag.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// formatError turns validation errors into an ErrValidationFailed chain with
// one entry per failing field. prefix is prepended to every field path.
func formatError(err error, prefix string) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			prefix+fieldPath(validationErr),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// fieldPath drops the root struct name from the namespace, keeping nested
// paths such as "transactions[0].amount".
func fieldPath(fe gvalidator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

// Validate checks v against its `validate` tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // invalid configuration
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err, "")
	}

	return nil
}

// ValidateEach validates every element of items, reporting failing fields
// with their index (e.g. "[2].amount"). All elements are checked.
func ValidateEach[T any](items []T) error {
	var errs []error
	for i, item := range items {
		if err := validator.Struct(item); err != nil {
			errs = append(errs, formatError(err, fmt.Sprintf("[%d].", i)))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
