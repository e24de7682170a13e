// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for validation failures. Every FieldError unwraps to one
// of the category sentinels and to ErrValidationFailed.
var (
	ErrValidationFailed    = errors.New("validation failed")
	ErrMissingRequired     = errors.New("missing required field")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrRangeViolation      = errors.New("value out of range")
	ErrLengthViolation     = errors.New("invalid length")
	ErrEnumViolation       = errors.New("unsupported value")
	ErrFormatViolation     = errors.New("invalid format")
	ErrCrossFieldViolation = errors.New("conflicting fields")
)

// FieldError describes a single rejected field value.
type FieldError struct {
	Kind       error // one of the category sentinels above
	Field      string
	Value      interface{}
	Constraint string
}

func (e *FieldError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")
	fmt.Fprintf(&sb, "%q", e.Field)
	if e.Value != nil {
		fmt.Fprintf(&sb, " = %s", formatValue(e.Value))
	}
	if e.Constraint != "" {
		sb.WriteString(" (" + e.Constraint + ")")
	}
	return sb.String()
}

func (e *FieldError) Unwrap() []error {
	return []error{e.Kind, ErrValidationFailed}
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// NewMissingError reports a required field that was not supplied.
func NewMissingError(field, constraint string) *FieldError {
	return &FieldError{Kind: ErrMissingRequired, Field: field, Constraint: constraint}
}

// NewTypeError reports a value of the wrong kind.
func NewTypeError(field string, value interface{}, want string) *FieldError {
	return &FieldError{Kind: ErrTypeMismatch, Field: field, Value: value, Constraint: "must be " + want}
}

// NewRangeError reports a numeric value outside [min, max].
func NewRangeError(field string, value, min, max int64) *FieldError {
	return &FieldError{
		Kind:       ErrRangeViolation,
		Field:      field,
		Value:      value,
		Constraint: fmt.Sprintf("must be between %d and %d", min, max),
	}
}

// NewLengthError reports a string whose length is outside [min, max] or
// which is blank where content is required.
func NewLengthError(field string, value string, constraint string) *FieldError {
	return &FieldError{Kind: ErrLengthViolation, Field: field, Value: value, Constraint: constraint}
}

// NewEnumError reports a value that is not a member of the allowed set.
func NewEnumError(field string, value interface{}, allowed []string) *FieldError {
	return &FieldError{
		Kind:       ErrEnumViolation,
		Field:      field,
		Value:      value,
		Constraint: "allowed: " + strings.Join(allowed, ", "),
	}
}

// NewFormatError reports a value that fails to parse.
func NewFormatError(field string, value interface{}, constraint string) *FieldError {
	return &FieldError{Kind: ErrFormatViolation, Field: field, Value: value, Constraint: constraint}
}

// NewCrossFieldError reports a value that conflicts with another field.
func NewCrossFieldError(field string, value interface{}, constraint string) *FieldError {
	return &FieldError{Kind: ErrCrossFieldViolation, Field: field, Value: value, Constraint: constraint}
}

// AsFieldError returns the first FieldError in err's chain, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
	causes []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidationFailed}, e.causes...)
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
	causes []error
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// AddCause records err under a prefix, keeping it reachable via errors.Is/As.
func (v *ValidationBuilder) AddCause(prefix string, err error) *ValidationBuilder {
	if err == nil {
		return v
	}
	v.errors = append(v.errors, prefix+": "+err.Error())
	v.causes = append(v.causes, err)
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors, causes: v.causes}
}
