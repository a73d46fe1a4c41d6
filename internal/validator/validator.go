package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (by its JSON name) to a human-readable
// message. It satisfies error so use cases can return it directly.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with the form rules used by the
// screen controllers.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with JSON tag names and the custom rules registered.
func New() *Validator {
	v := validator.New()

	// report errors under the JSON field name the client submitted
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerRules(v)

	return &Validator{validate: v}
}

// Validate checks the struct and returns FieldErrors when any rule fails.
func (v *Validator) Validate(form interface{}) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(FieldErrors, len(violations))
	for _, violation := range violations {
		fields[violation.Field()] = message(violation)
	}
	return fields
}

func message(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		if violation.Kind() == reflect.String {
			return "must be at least " + violation.Param() + " characters"
		}
		return "must be at least " + violation.Param()
	case "max":
		if violation.Kind() == reflect.String {
			return "must be at most " + violation.Param() + " characters"
		}
		return "must be at most " + violation.Param()
	case "email":
		return "must be a valid email address"
	case "blood_type":
		return "must be a valid blood type"
	case "urgency":
		return "must be one of low, medium, high, critical"
	default:
		return "is invalid"
	}
}
