// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the pcbuild CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	mdwlog "github.com/msto63/pcbuild/foundation/core/log"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/checker"
	"github.com/msto63/pcbuild/internal/locales"
)

// EnvVar names the environment variable holding the config path
const EnvVar = "PCBUILD_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Pricing    PricingConfig    `toml:"pricing"`
	Validation ValidationConfig `toml:"validation"`

	// path the configuration was read from; empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Locale    string `toml:"locale"`
}

// PricingConfig holds price display settings
type PricingConfig struct {
	Currency string `toml:"currency"`
}

// ValidationConfig holds the validator chain order
type ValidationConfig struct {
	Order []string `toml:"order"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, mdwerror.New("unknown config keys").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("keys", strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from PCBUILD_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./pcbuild.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pcbuild", "config.toml"))
	}
	return paths
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "pcbuild"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Locale == "" {
		c.General.Locale = "pt-BR"
	}

	if c.Pricing.Currency == "" {
		c.Pricing.Currency = mathx.BRL.Code
	}

	if len(c.Validation.Order) == 0 {
		c.Validation.Order = checker.DefaultOrder()
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.Name = os.ExpandEnv(c.General.Name)
	c.General.Locale = os.ExpandEnv(c.General.Locale)
	c.Pricing.Currency = os.ExpandEnv(c.Pricing.Currency)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}

	switch c.General.LogFormat {
	case "text", "json":
	default:
		return invalid("general.log_format", c.General.LogFormat)
	}

	if !locales.Has(c.General.Locale) {
		return invalid("general.locale", c.General.Locale)
	}

	if _, ok := mathx.GetCurrency(c.Pricing.Currency); !ok {
		return invalid("pricing.currency", c.Pricing.Currency)
	}

	seen := make(map[string]bool, len(c.Validation.Order))
	for _, name := range c.Validation.Order {
		if !checker.IsKnown(name) || seen[name] {
			return invalid("validation.order", name)
		}
		seen[name] = true
	}
	return nil
}

func invalid(key, value string) error {
	return mdwerror.New("invalid config value").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
