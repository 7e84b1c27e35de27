// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the default severity of
//              each error code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Dropped alerting helpers, mapped build codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for an error code.
// Bad input is low, wiring mistakes in code are high.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeInvalidPart, CodeUnknownCategory, CodeUnknownPreset,
		CodeUnknownFamily, CodeInvalidFormat, CodeInvalidManifest, CodeNotFound:
		return SeverityLow
	case CodeUnknownRule, CodeDuplicateRule, CodeChainCycle, CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
