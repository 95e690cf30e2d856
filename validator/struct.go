package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by the error Validate returns.
var ErrInvalid = errors.New("validation failed")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// errorMessages maps validation tags to custom error messages.
var errorMessages = map[string]string{
	"required":    "The field '%s' is required.",
	"required_if": "The field '%s' is required when %s.",
	"min":         "The field '%s' must have at least %s item(s).",
	"max":         "The field '%s' must have at most %s item(s).",
	"lte":         "The field '%s' must be less than or equal to %s.",
	"gte":         "The field '%s' must be greater than or equal to %s.",
	"oneof":       "The field '%s' must be one of [%s].",
}

// Register adds a custom validation tag.
func Register(tag, message string, fn validator.Func) error {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		return err
	}
	if message != "" {
		errorMessages[tag] = message
	}
	return nil
}

// parseMessage constructs a friendly error message based on the validation tag and custom messages.
func parseMessage(field string, e validator.FieldError) string {
	if msg, exists := errorMessages[e.Tag()]; exists {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// fieldName drops the top-level struct name from a namespace like
// "Config.logger.level".
func fieldName(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ValidateStruct validates a struct and returns a map of JSON field paths to friendly error messages.
func ValidateStruct(s any) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				field := fieldName(e)
				validationErrors[field] = parseMessage(field, e)
			}
		} else {
			validationErrors[""] = err.Error()
		}
	}

	return validationErrors
}

// Validate validates a struct and folds every failure into one error.
func Validate(s any) error {
	errs := ValidateStruct(s)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, errs[field])
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, " "))
}
