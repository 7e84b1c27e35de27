// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers and struct decoding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2026-10-12 v0.2.0: Documented Decode

// Package mapx provides generic map helpers and Decode, which turns the
// map[string]interface{} values produced by YAML, TOML and JSON parsers into
// typed structs.
//
//	var specs struct {
//	    RAMGB int `mapstructure:"ramGB"`
//	}
//	err := mapx.Decode(map[string]interface{}{"ramGB": "16"}, &specs,
//	    mapx.DecodeOptions{WeaklyTyped: true})
//
// Types implementing encoding.TextUnmarshaler, such as mathx.Decimal, are
// decoded from strings and numbers alike.
package mapx
