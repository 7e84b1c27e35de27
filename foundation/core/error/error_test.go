// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching and
//              serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Covered code based Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("disk full"),
			message:  "saving manifest",
			wantMsg:  "saving manifest: disk full",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error keeps code",
			err:      New("no such kit").WithCode(CodeUnknownPreset),
			message:  "applying step 2",
			wantMsg:  "applying step 2: no such kit",
			wantCode: CodeUnknownPreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	sentinel := New("unknown preset").WithCode(CodeUnknownPreset)
	err := New("unknown preset \"x\"").WithCode(CodeUnknownPreset).WithDetail("preset", "x")

	if !errors.Is(err, sentinel) {
		t.Error("errors with the same code should match")
	}

	other := New("unknown family").WithCode(CodeUnknownFamily)
	if errors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}

	generic := New("something")
	if errors.Is(New("else"), generic) {
		t.Error("CodeUnknown should never match")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Error("match should survive fmt wrapping")
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidPart, SeverityLow},
		{CodeUnknownPreset, SeverityLow},
		{CodeChainCycle, SeverityHigh},
		{CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("bad part").
		WithCode(CodeInvalidPart).
		WithOperation("build.AddPart").
		WithDetail("name", "").
		WithDetail("price", "-1")

	if v, ok := err.Detail("price"); !ok || v != "-1" {
		t.Errorf("Detail(price) = %v, %v", v, ok)
	}

	details := err.Details()
	details["price"] = "changed"
	if v, _ := err.Detail("price"); v != "-1" {
		t.Error("Details() must return a copy")
	}

	s := err.String()
	for _, want := range []string{"Code: INVALID_PART", "Operation: build.AddPart", "Details: {name=, price=-1}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	cause := errors.New("eof")
	err := Wrap(cause, "reading manifest").WithCode(CodeInvalidManifest)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "INVALID_MANIFEST" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("cycle").WithCode(CodeChainCycle)
	outer := fmt.Errorf("wiring: %w", inner)

	if !HasCode(outer, CodeChainCycle) {
		t.Error("HasCode() should find code through wrapping")
	}
	if HasCode(outer, CodeUnknownRule) {
		t.Error("HasCode() matched wrong code")
	}
	if GetCode(outer) != CodeChainCycle {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if root := Wrap(outer, "top").RootCause(); root != inner {
		t.Errorf("RootCause() = %v, want %v", root, inner)
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeInvalidPart:     "build",
		CodeUnknownPreset:   "catalog",
		CodeChainCycle:      "chain",
		CodeInvalidManifest: "input",
		CodeInternal:        "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}
