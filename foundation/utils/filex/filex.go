// File: filex.go
// Title: File Utilities
// Description: File existence checks and decoding of structured documents
//              (YAML, TOML, JSON) selected by file extension.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-12 v0.2.0: Reduced to existence checks, added document decoding

package filex

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// Format is a structured document format
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Ext returns the lower-cased file extension including the dot
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ===============================
// Structured Documents
// ===============================

// DetectFormat derives the document format from the file extension
func DetectFormat(path string) Format {
	switch Ext(path) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// ParseFormat parses a format name such as "yaml" or "toml"
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatUnknown, mdwerror.New("unsupported document format").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("filex.ParseFormat").
			WithDetail("format", name)
	}
}

// Decode unmarshals data in the given format into out
func Decode(data []byte, format Format, out interface{}) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, out)
	case FormatTOML:
		err = toml.Unmarshal(data, out)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(out)
	default:
		return mdwerror.New("unsupported document format").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("filex.Decode").
			WithDetail("format", format.String())
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse "+format.String()+" document").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("filex.Decode")
	}
	return nil
}

// DecodeFile reads path and unmarshals it according to its extension
func DecodeFile(path string, out interface{}) error {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return mdwerror.New("unsupported file extension").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("filex.DecodeFile").
			WithDetail("path", path).
			WithDetail("supported", ".yaml, .yml, .toml, .json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read file").
			WithCode(code).
			WithOperation("filex.DecodeFile").
			WithDetail("path", path)
	}

	if err := Decode(data, format, out); err != nil {
		return mdwerror.Wrap(err, "failed to decode file").
			WithOperation("filex.DecodeFile").
			WithDetail("path", path)
	}
	return nil
}
