// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     specs
// Description: Fluent and record-based construction of configurations
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

// Package specs assembles checker.Specs values: field by field through a
// fluent Builder, from named presets, or from loosely typed records and files.
package specs

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/utils/filex"
	"github.com/msto63/pcbuild/foundation/utils/mapx"
	"github.com/msto63/pcbuild/internal/checker"
)

// Builder fills a checker.Specs one field at a time
type Builder struct {
	specs checker.Specs
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// FromSpecs returns a builder starting from s
func FromSpecs(s checker.Specs) *Builder {
	return &Builder{specs: s}
}

func (b *Builder) Processor(name string) *Builder {
	b.specs.Processor = name
	return b
}

func (b *Builder) Motherboard(name string) *Builder {
	b.specs.Motherboard = name
	return b
}

// RAM sets the memory size in GB
func (b *Builder) RAM(gb int) *Builder {
	b.specs.RAMGB = gb
	return b
}

// Storage sets the storage size in GB
func (b *Builder) Storage(gb int) *Builder {
	b.specs.StorageGB = gb
	return b
}

func (b *Builder) GraphicsCard(name string) *Builder {
	b.specs.GraphicsCard = name
	return b
}

// PowerSupply sets the power supply wattage
func (b *Builder) PowerSupply(watts int) *Builder {
	b.specs.PowerSupplyW = watts
	return b
}

func (b *Builder) Case(name string) *Builder {
	b.specs.Case = name
	return b
}

func (b *Builder) OperatingSystem(name string) *Builder {
	b.specs.OperatingSystem = name
	return b
}

// Build returns a copy of the current specs; the builder stays usable
func (b *Builder) Build() checker.Specs {
	return b.specs
}

var presets = map[string]checker.Specs{
	"gamer": {
		Processor:       "Intel Core i9-13900K",
		Motherboard:     "ASUS ROG Strix Z790",
		RAMGB:           32,
		StorageGB:       2000,
		GraphicsCard:    "NVIDIA RTX 4080",
		PowerSupplyW:    850,
		Case:            "Full Tower RGB",
		OperatingSystem: "Windows 11 Pro",
	},
	"office": {
		Processor:       "Intel Core i5-12400",
		Motherboard:     "ASRock B660M",
		RAMGB:           16,
		StorageGB:       512,
		PowerSupplyW:    500,
		Case:            "Mini Tower",
		OperatingSystem: "Windows 11 Pro",
	},
}

// NewPresetBuilder returns a builder pre-filled from a named preset.
// The result can be adjusted with the setters before Build.
func NewPresetBuilder(id string) (*Builder, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, mdwerror.New("unknown specs preset").
			WithCode(mdwerror.CodeUnknownPreset).
			WithOperation("specs.NewPresetBuilder").
			WithDetail("id", id).
			WithDetail("known", strings.Join(Presets(), ","))
	}
	return &Builder{specs: s}, nil
}

// Presets returns the preset ids, sorted
func Presets() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FromMap decodes a flat record such as {"processor": "Intel i7", "ramGB": "16"}.
// Values are weakly typed and unknown keys are rejected. Absent keys stay
// zero, and so do false or 0 given for a text field, so the chain reports them.
func FromMap(record map[string]interface{}) (checker.Specs, error) {
	var s checker.Specs
	opts := mapx.DecodeOptions{WeaklyTyped: true, ErrorUnused: true, EmptyFalsyText: true}
	if err := mapx.Decode(record, &s, opts); err != nil {
		return checker.Specs{}, mdwerror.Wrap(err, "invalid specs record").
			WithOperation("specs.FromMap")
	}
	return s, nil
}

// Load reads a flat record from a YAML, TOML or JSON file
func Load(path string) (checker.Specs, error) {
	var record map[string]interface{}
	if err := filex.DecodeFile(path, &record); err != nil {
		return checker.Specs{}, err
	}
	return FromMap(record)
}
