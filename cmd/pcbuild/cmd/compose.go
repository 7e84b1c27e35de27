// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     cmd
// Description: compose command: build a configuration from a manifest
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/manifest"
)

func newComposeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compose <manifest>",
		Short: "Assemble a build from a manifest file",
		Long: `Reads a YAML, TOML or JSON manifest, applies its kit and part steps in
order, then prints the build summary and validation result.

A part listed after a kit replaces the kit's part in singleton categories
(processor, motherboard, power supply, case, operating system) and is
appended in the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			// --currency wins over the manifest, the manifest over the config file
			var opts []build.Option
			if m.Currency != "" && a.currency == "" {
				opts = append(opts, build.WithCurrency(m.Currency))
			}
			b := a.newBuild(opts...)
			if err := m.Apply(b, a.logger); err != nil {
				return err
			}

			summary := b.Summary()
			report := b.Validate()

			if err := a.writeCompose(cmd.OutOrStdout(), output, summary, report); err != nil {
				return err
			}

			if !report.Valid {
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

type composeResult struct {
	Summary build.Summary `json:"summary" yaml:"summary"`
	Report  build.Report  `json:"report" yaml:"report"`
}

func (a *app) writeCompose(w io.Writer, format string, summary build.Summary, report build.Report) error {
	result := composeResult{Summary: summary, Report: report}

	switch format {
	case "text":
		fmt.Fprintln(w, a.renderer.Summary(summary))
		fmt.Fprintln(w)
		fmt.Fprintln(w, a.renderer.Report(report))
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return mdwerror.New(fmt.Sprintf("unknown output format %q (want text, json or yaml)", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("compose.write").
			WithDetail("format", format).
			WithDetail("supported", "text,json,yaml")
	}
}
