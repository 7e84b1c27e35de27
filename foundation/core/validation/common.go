// File: common.go
// Title: Predicate Helpers
// Description: Builds rule predicates from field accessors so that concrete
//              rules stay declarative.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-12 v0.2.0: Replaced reflection helpers with typed predicates

package validation

import "strings"

// NotBlank passes when the accessed string has non-space content
func NotBlank[T any](get func(T) string) func(T) bool {
	return func(v T) bool {
		return strings.TrimSpace(get(v)) != ""
	}
}

// Positive passes when the accessed number is greater than zero
func Positive[T any](get func(T) int) func(T) bool {
	return func(v T) bool {
		return get(v) > 0
	}
}

// RequiredText builds a CodeRequired rule over a string field
func RequiredText[T any](name, field, message string, get func(T) string) Rule[T] {
	return Rule[T]{Name: name, Field: field, Code: CodeRequired, Message: message, Check: NotBlank(get)}
}

// RequiredPositive builds a CodeRange rule over a numeric field
func RequiredPositive[T any](name, field, message string, get func(T) int) Rule[T] {
	return Rule[T]{Name: name, Field: field, Code: CodeRange, Message: message, Check: Positive(get)}
}
