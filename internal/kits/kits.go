// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     kits
// Description: Catalog of preset part kits
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

// Package kits is the catalog of preset part bundles.
//
// A preset is fixed data. Preset returns a freshly allocated copy on every
// call, so callers may modify the result without affecting the catalog.
package kits

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
)

// Preset ids
const (
	GamerID       = "gamer"
	BasicID       = "basic"
	OfficeID      = "office"
	WorkstationID = "workstation"
)

// Entry is one part of a preset. Category holds a category key such as
// "processor" or "graphics_card".
type Entry struct {
	Category    string        `json:"category" yaml:"category" toml:"category"`
	Name        string        `json:"name" yaml:"name" toml:"name"`
	Price       mathx.Decimal `json:"price" yaml:"price" toml:"price"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// ErrUnknownPreset matches every UnknownPresetError under errors.Is
var ErrUnknownPreset = mdwerror.New("unknown kit preset").WithCode(mdwerror.CodeUnknownPreset)

// UnknownPresetError is returned by Preset for ids not in the catalog
type UnknownPresetError struct {
	ID string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown kit preset %q (known: %s)", e.ID, strings.Join(Names(), ", "))
}

// Unwrap exposes the coded foundation error
func (e *UnknownPresetError) Unwrap() error {
	return mdwerror.New("unknown kit preset").
		WithCode(mdwerror.CodeUnknownPreset).
		WithOperation("kits.Preset").
		WithDetail("id", e.ID)
}

type preset struct {
	description string
	entries     []Entry
}

func entry(category, name, price, description string) Entry {
	return Entry{Category: category, Name: name, Price: mathx.MustNewDecimal(price), Description: description}
}

var catalog = map[string]preset{
	GamerID: {
		description: "Alto desempenho para jogos em 1440p",
		entries: []Entry{
			entry("processor", "AMD Ryzen 7 7800X3D", "2500", "8 cores, 96MB L3"),
			entry("motherboard", "ASUS TUF B650-Plus", "1300", "Socket AM5, DDR5"),
			entry("ram", "32GB DDR5", "900", "6000MHz, 2x16GB"),
			entry("storage", "2TB SSD NVMe", "850", "PCIe 4.0"),
			entry("graphics_card", "NVIDIA RTX 4070 Super", "4500", "12GB GDDR6X"),
			entry("power_supply", "850W", "700", "80 Plus Gold, modular"),
			entry("case", "Mid Tower Vidro", "450", "ATX, 4 fans RGB"),
			entry("operating_system", "Windows 11 Home", "600", ""),
		},
	},
	BasicID: {
		description: "Uso doméstico e navegação",
		entries: []Entry{
			entry("processor", "Intel Core i3-12100", "600", "4 cores, 4.3GHz"),
			entry("motherboard", "Gigabyte H610M", "550", "Socket LGA1700, DDR4"),
			entry("ram", "8GB DDR4", "180", "3200MHz"),
			entry("storage", "480GB SSD SATA", "200", ""),
			entry("power_supply", "500W", "250", "80 Plus Bronze"),
			entry("case", "Micro ATX", "180", ""),
		},
	},
	OfficeID: {
		description: "Escritório com vídeo integrado",
		entries: []Entry{
			entry("processor", "Intel Core i5-12400", "900", "6 cores, vídeo integrado"),
			entry("motherboard", "ASRock B660M", "700", "Socket LGA1700"),
			entry("ram", "16GB DDR4", "320", "3200MHz, 2x8GB"),
			entry("storage", "512GB SSD NVMe", "280", "PCIe 3.0"),
			entry("power_supply", "500W", "280", "80 Plus Bronze"),
			entry("case", "Mini Tower", "200", "Micro ATX"),
			entry("operating_system", "Windows 11 Pro", "900", ""),
		},
	},
	WorkstationID: {
		description: "Renderização e compilação pesada",
		entries: []Entry{
			entry("processor", "AMD Ryzen 9 7950X", "3800", "16 cores, 5.7GHz"),
			entry("motherboard", "ASUS ProArt X670E", "3500", "Socket AM5"),
			entry("ram", "64GB DDR5", "1200", "5600MHz, 2x32GB"),
			entry("ram", "64GB DDR5", "1200", "5600MHz, 2x32GB"),
			entry("storage", "2TB SSD NVMe", "850", "PCIe 4.0, sistema"),
			entry("storage", "4TB HDD", "600", "7200RPM, dados"),
			entry("graphics_card", "NVIDIA RTX 4080 Super", "7500", "16GB GDDR6X"),
			entry("power_supply", "1000W", "1100", "80 Plus Platinum"),
			entry("case", "Full Tower", "800", "E-ATX"),
			entry("operating_system", "Ubuntu 24.04 LTS", "0", "Gratuito"),
		},
	},
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Preset returns a copy of the preset's entries in kit order
func Preset(id string) ([]Entry, error) {
	p, ok := catalog[normalize(id)]
	if !ok {
		return nil, &UnknownPresetError{ID: id}
	}
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out, nil
}

// MustPreset is Preset for ids known at compile time
func MustPreset(id string) []Entry {
	entries, err := Preset(id)
	if err != nil {
		panic(err)
	}
	return entries
}

// Gamer returns the gamer preset
func Gamer() []Entry {
	return MustPreset(GamerID)
}

// Basic returns the basic preset
func Basic() []Entry {
	return MustPreset(BasicID)
}

// Names returns the preset ids, sorted
func Names() []string {
	names := make([]string, 0, len(catalog))
	for id := range catalog {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a preset
func Describe(id string) (string, error) {
	p, ok := catalog[normalize(id)]
	if !ok {
		return "", &UnknownPresetError{ID: id}
	}
	return p.description, nil
}

// Total sums the prices of entries
func Total(entries []Entry) mathx.Decimal {
	total := mathx.Zero()
	for _, e := range entries {
		total = total.Add(e.Price)
	}
	return total
}
