// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across pcbuild to classify usage
//              errors. Validation failures are reported as messages, never as
//              coded errors, so no code here describes a missing part.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Replaced platform codes with build and catalog codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parts and builds
	CodeInvalidPart     Code = "INVALID_PART"
	CodeUnknownCategory Code = "UNKNOWN_CATEGORY"

	// Catalogs
	CodeUnknownPreset Code = "UNKNOWN_PRESET"
	CodeUnknownFamily Code = "UNKNOWN_FAMILY"

	// Validator chains
	CodeUnknownRule   Code = "UNKNOWN_RULE"
	CodeDuplicateRule Code = "DUPLICATE_RULE"
	CodeChainCycle    Code = "CHAIN_CYCLE"

	// Files and configuration
	CodeConfigError     Code = "CONFIG_ERROR"
	CodeInvalidManifest Code = "INVALID_MANIFEST"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidPart, CodeUnknownCategory,
		CodeUnknownPreset, CodeUnknownFamily,
		CodeUnknownRule, CodeDuplicateRule, CodeChainCycle,
		CodeConfigError, CodeInvalidManifest, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidPart, CodeUnknownCategory:
		return "build"
	case CodeUnknownPreset, CodeUnknownFamily:
		return "catalog"
	case CodeUnknownRule, CodeDuplicateRule, CodeChainCycle:
		return "chain"
	case CodeConfigError, CodeInvalidManifest, CodeInvalidFormat:
		return "input"
	default:
		return "generic"
	}
}
