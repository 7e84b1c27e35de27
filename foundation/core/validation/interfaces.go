// File: interfaces.go
// Title: Validation Rules and Results
// Description: Defines rules as plain data (a predicate plus the field, code
//              and message reported when it fails) and the structured result
//              collected while a chain is traversed.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-12 v0.2.0: Replaced the Validator interface with generic Rule data,
//                       trimmed the code table to required/range/custom

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // text field missing or blank
	CodeRange    = "VALIDATION_RANGE"    // numeric field outside its range
	CodeCustom   = "VALIDATION_CUSTOM"
)

// Rule is one check over a value of type T.
// Check returns true when the value satisfies the rule.
type Rule[T any] struct {
	Name    string
	Field   string
	Code    string
	Message string
	Check   func(T) bool
}

// ValidationError describes one failed rule
type ValidationError struct {
	Rule    string `json:"rule"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// String returns a compact representation of the error
func (e ValidationError) String() string {
	if e.Field != "" {
		return fmt.Sprintf("ValidationError{field:%s, code:%s, message:%s}", e.Field, e.Code, e.Message)
	}
	return fmt.Sprintf("ValidationError{code:%s, message:%s}", e.Code, e.Message)
}

// Result is the outcome of running a chain. Errors keep chain order.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewResult creates a successful result
func NewResult() Result {
	return Result{Valid: true}
}

// Add records a failed rule
func (r *Result) Add(err ValidationError) *Result {
	r.Valid = false
	r.Errors = append(r.Errors, err)
	return r
}

// Merge appends the errors of other after the errors already recorded
func (r *Result) Merge(other Result) *Result {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	return r
}

// ErrorMessages returns all error messages in order. Never nil.
func (r Result) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// Fields returns the failing field names in order
func (r Result) Fields() []string {
	fields := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		fields[i] = err.Field
	}
	return fields
}

// HasField reports whether the given field failed
func (r Result) HasField(field string) bool {
	for _, err := range r.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// FirstError returns the first validation error, or nil if validation passed
func (r Result) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ToError converts a failed result into a foundation error for callers that
// need to stop on invalid input. Returns nil for a valid result.
func (r Result) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").WithCode(mdwerror.CodeInvalidInput)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("rule", first.Rule)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the result
func (r Result) String() string {
	if r.Valid {
		return "Result{valid: true}"
	}
	parts := []string{"Result{valid: false", fmt.Sprintf("errors: %d", len(r.Errors))}
	if first := r.FirstError(); first != nil {
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
	}
	return strings.Join(parts, ", ") + "}"
}
