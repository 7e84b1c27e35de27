// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     version
// Description: Central version information for the pcbuild binary
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Catalog version of the preset kits and validation rules
	Catalog = "1.0.0"
)

// Set during build via -ldflags "-X github.com/msto63/pcbuild/pkg/core/version.Commit=..."
var (
	Commit = "dev"
	Date   = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Catalog   string `json:"catalog"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Platform,
		Catalog:   Catalog,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("pcbuild %s (catalog %s, commit %s, built %s, %s %s)",
		i.Version, i.Catalog, i.Commit, i.Date, i.GoVersion, i.Platform)
}
