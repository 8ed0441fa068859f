// Package validation checks request models against their `validate` struct tags
// using a shared go-playground/validator instance.
//
// Field names in messages come from the `form` tag (then `json`), so a message
// reads the way the field was submitted:
//
//	"title" is required,"price" must be greater than or equal to 0
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single field failure.
type ValidationError struct {
	field   string
	tag     string
	message string
}

// Field returns the submitted field name.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Error returns the human-readable message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects every field failure of one request.
// A nil *RequestValidationError means the request is valid.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the collected field failures.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Add records a failure found outside of struct validation, such as a number
// that could not be parsed.
func (ve *RequestValidationError) Add(field, tag, message string) {
	ve.errors = append(ve.errors, ValidationError{
		field:   field,
		tag:     tag,
		message: message,
	})
}

// Empty reports whether no failures were recorded.
func (ve *RequestValidationError) Empty() bool {
	return ve == nil || len(ve.errors) == 0
}

// Error joins all field messages with a comma.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, ",")
}

// Has reports whether field already failed.
func (ve *RequestValidationError) Has(field string) bool {
	if ve == nil {
		return false
	}
	for _, err := range ve.errors {
		if err.field == field {
			return true
		}
	}
	return false
}

// Without returns a copy with the failures of the fields reported by other
// removed, or nil when nothing remains.
func (ve *RequestValidationError) Without(other *RequestValidationError) *RequestValidationError {
	if ve.Empty() {
		return nil
	}
	out := &RequestValidationError{}
	for _, err := range ve.errors {
		if !other.Has(err.field) {
			out.errors = append(out.errors, err)
		}
	}
	if out.Empty() {
		return nil
	}
	return out
}

// Combine merges several results into one, returning nil when none of them
// carries a failure.
func Combine(results ...*RequestValidationError) *RequestValidationError {
	merged := &RequestValidationError{}
	for _, r := range results {
		if r.Empty() {
			continue
		}
		merged.errors = append(merged.errors, r.errors...)
	}
	if merged.Empty() {
		return nil
	}
	return merged
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ValidateStruct validates s. It returns nil when s is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{
				field:   "unknown",
				tag:     "unknown",
				message: err.Error(),
			}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			message: translateError(fe),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

var errorMessageTemplates = map[string]string{
	"required": "%q is required",
	"url":      "%q must be a valid uri",
	"numeric":  "%q must be a number",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%q must be one of [%s]",
	"gte":   "%q must be greater than or equal to %s",
	"lte":   "%q must be less than or equal to %s",
	"gt":    "%q must be greater than %s",
	"lt":    "%q must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if tmpl, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	isString := fe.Kind() == reflect.String
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%q length must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, param)
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%q failed %s validation", field, tag)
	}
}
