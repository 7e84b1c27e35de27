// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     cmd
// Description: Root command, persistent flags and shared setup
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/foundation/core/i18n"
	mdwlog "github.com/msto63/pcbuild/foundation/core/log"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/locales"
	"github.com/msto63/pcbuild/internal/render"
	"github.com/msto63/pcbuild/pkg/core/config"
	"github.com/msto63/pcbuild/pkg/core/logging"
)

// ErrInvalid is returned when a validation reported errors. The report itself
// has already been printed.
var ErrInvalid = errors.New("validation reported errors")

// app holds flag values and the collaborators built from them
type app struct {
	cfgFile  string
	verbose  bool
	locale   string
	currency string
	plain    bool

	cfg      *config.Config
	tr       *i18n.Manager
	logger   *logging.Logger
	renderer *render.Renderer
}

// Execute runs the pcbuild command line
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, ErrInvalid) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pcbuild",
		Short: "pcbuild - computer build assembly and validation",
		Long: `pcbuild assembles computer builds from individual parts and preset kits,
reports their price and checks them for missing components.

Commands:
  validate  - run the validator chain over a flat configuration
  compose   - assemble a build from a manifest file
  kits      - list and inspect the preset kits
  family    - show a vendor family of parts
  demo      - walk through every feature
  tui       - browse the preset kits interactively
  locales   - list the message catalogs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $PCBUILD_CONFIG or ./configs/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "message locale ("+strings.Join(locales.Supported(), ", ")+")")
	root.PersistentFlags().StringVar(&a.currency, "currency", "", "display currency (BRL, USD, EUR)")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "disable colours and borders")

	root.AddCommand(
		newValidateCmd(a),
		newComposeCmd(a),
		newKitsCmd(a),
		newFamilyCmd(a),
		newDemoCmd(a),
		newTUICmd(a),
		newLocalesCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds translator, logger and renderer
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.locale != "" {
		cfg.General.Locale = a.locale
	}
	if a.currency != "" {
		cfg.Pricing.Currency = a.currency
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tr, err := locales.New(cfg.General.Locale)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.tr = tr
	a.logger = logging.NewFromConfig(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	if a.verbose {
		a.logger = a.logger.WithLevel(mdwlog.LevelDebug)
	}
	a.renderer = render.New(
		render.WithTranslator(tr),
		render.WithPlain(a.plainOutput()),
	)

	a.logger.Debug("configuration loaded",
		"source", cfg.Source(),
		"locale", cfg.General.Locale,
		"currency", cfg.Pricing.Currency)
	return nil
}

func (a *app) plainOutput() bool {
	return a.plain || os.Getenv("NO_COLOR") != ""
}

// newBuild creates an empty build wired to the configured locale, currency
// and logger
func (a *app) newBuild(opts ...build.Option) *build.Build {
	base := []build.Option{
		build.WithTranslator(a.tr),
		build.WithCurrency(a.cfg.Pricing.Currency),
		build.WithLogger(a.logger),
	}
	return build.New(append(base, opts...)...)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
