// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides file checks and structured document
//              decoding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-12 v0.2.0: Documented document decoding

// Package filex provides file existence checks and decoding of YAML, TOML and
// JSON documents chosen by file extension.
//
//	var raw map[string]interface{}
//	if err := filex.DecodeFile("build.yaml", &raw); err != nil {
//	    return err
//	}
//
// Errors are *mdwerror.Error values: CodeNotFound for missing files and
// CodeInvalidFormat for unknown extensions or malformed content.
package filex
