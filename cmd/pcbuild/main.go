// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     main
// Description: Entry point of the pcbuild command line
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/pcbuild/cmd/pcbuild/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
