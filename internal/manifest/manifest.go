// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     manifest
// Description: Build manifests: ordered kit and part steps from files
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

// Package manifest reads build recipes from YAML, TOML or JSON files. A
// manifest is an ordered list of steps; each step either ingests a preset kit
// or adds a single part:
//
//	name: upgraded basic
//	currency: BRL
//	steps:
//	  - kit: basic
//	  - part:
//	      category: graphics_card
//	      name: GTX 1660
//	      price: 1500
//	      description: 6GB GDDR5
//
// Steps run in file order, so a part listed after a kit replaces the kit's
// part in singleton categories.
package manifest

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/utils/filex"
	"github.com/msto63/pcbuild/foundation/utils/mapx"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/pkg/core/logging"
)

// PartStep describes one part to add
type PartStep struct {
	Category    string        `mapstructure:"category"`
	Name        string        `mapstructure:"name"`
	Price       mathx.Decimal `mapstructure:"price"`
	Description string        `mapstructure:"description"`
}

// Step is either a kit id or a part
type Step struct {
	Kit  string    `mapstructure:"kit"`
	Part *PartStep `mapstructure:"part"`
}

// Manifest is a decoded build recipe
type Manifest struct {
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
	Steps    []Step `mapstructure:"steps"`
}

// Load reads and checks a manifest file. The format follows the extension.
func Load(path string) (*Manifest, error) {
	var raw map[string]interface{}
	if err := filex.DecodeFile(path, &raw); err != nil {
		return nil, err
	}

	m, err := FromMap(raw)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load manifest").
			WithOperation("manifest.Load").
			WithDetail("path", path)
	}
	return m, nil
}

// FromMap decodes an already parsed document
func FromMap(raw map[string]interface{}) (*Manifest, error) {
	var m Manifest
	if err := mapx.Decode(raw, &m, mapx.DecodeOptions{ErrorUnused: true}); err != nil {
		return nil, mdwerror.Wrap(err, "malformed manifest").
			WithCode(mdwerror.CodeInvalidManifest).
			WithOperation("manifest.FromMap")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every step names exactly one action and that kit ids
// are known
func (m *Manifest) Validate() error {
	if len(m.Steps) == 0 {
		return mdwerror.New("manifest has no steps").
			WithCode(mdwerror.CodeInvalidManifest).
			WithOperation("manifest.Validate")
	}
	for i, step := range m.Steps {
		kit := strings.TrimSpace(step.Kit)
		switch {
		case kit == "" && step.Part == nil:
			return stepError(mdwerror.New("step has neither kit nor part"), i)
		case kit != "" && step.Part != nil:
			return stepError(mdwerror.New("step has both kit and part"), i)
		case kit != "":
			if _, err := kits.Preset(kit); err != nil {
				return stepError(err, i)
			}
		default:
			if _, err := build.ParseCategory(step.Part.Category); err != nil {
				return stepError(err, i)
			}
		}
	}
	return nil
}

// Apply runs the steps against b in order. Application stops at the first
// failing step; steps before it stay applied.
func (m *Manifest) Apply(b *build.Build, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}

	for i, step := range m.Steps {
		var err error
		if p := step.Part; p != nil {
			var category build.Category
			category, err = build.ParseCategory(p.Category)
			if err == nil {
				err = b.AddPart(category, p.Name, p.Price, p.Description)
			}
		} else {
			var entries []kits.Entry
			entries, err = kits.Preset(step.Kit)
			if err == nil {
				err = b.AddKit(entries)
			}
		}
		if err != nil {
			return stepError(err, i)
		}
	}

	logger.Info("manifest applied",
		"manifest", m.Name,
		"build_id", b.ID(),
		"steps", len(m.Steps),
		"parts", b.Count())
	return nil
}

// NewBuild creates a build in the manifest's currency and applies the steps
func (m *Manifest) NewBuild(logger *logging.Logger, opts ...build.Option) (*build.Build, error) {
	if m.Currency != "" {
		opts = append(opts, build.WithCurrency(m.Currency))
	}
	if logger != nil {
		opts = append(opts, build.WithLogger(logger))
	}
	b := build.New(opts...)
	if err := m.Apply(b, logger); err != nil {
		return nil, err
	}
	return b, nil
}

func stepError(err error, index int) error {
	return mdwerror.Wrap(err, fmt.Sprintf("manifest step %d failed", index)).
		WithCode(mdwerror.CodeInvalidManifest).
		WithOperation("manifest.Apply").
		WithDetail("step", index)
}
