// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     build
// Description: Part categories, aliases and required/singleton rules
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package build

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/core/i18n"
)

// Category is a part slot of a build. Declaration order is display order.
type Category int

const (
	Processor Category = iota
	Motherboard
	RAM
	Storage
	GraphicsCard
	PowerSupply
	Case
	OperatingSystem
)

var categoryKeys = [...]string{
	Processor:       "processor",
	Motherboard:     "motherboard",
	RAM:             "ram",
	Storage:         "storage",
	GraphicsCard:    "graphics_card",
	PowerSupply:     "power_supply",
	Case:            "case",
	OperatingSystem: "operating_system",
}

var categoryAliases = map[string]Category{
	"cpu":    Processor,
	"memory": RAM,
	"gpu":    GraphicsCard,
	"psu":    PowerSupply,
	"os":     OperatingSystem,
}

// Categories returns every category in display order
func Categories() []Category {
	out := make([]Category, len(categoryKeys))
	for i := range categoryKeys {
		out[i] = Category(i)
	}
	return out
}

// RequiredCategories returns the categories a minimal build must populate
func RequiredCategories() []Category {
	var out []Category
	for _, c := range Categories() {
		if c.Required() {
			out = append(out, c)
		}
	}
	return out
}

// Valid reports whether c is a declared category
func (c Category) Valid() bool {
	return c >= Processor && c <= OperatingSystem
}

// String returns the stable key, e.g. "graphics_card"
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

// Singleton reports whether the category holds at most one part
func (c Category) Singleton() bool {
	switch c {
	case RAM, Storage, GraphicsCard:
		return false
	default:
		return c.Valid()
	}
}

// Required reports whether a valid build must populate the category
func (c Category) Required() bool {
	switch c {
	case Processor, Motherboard, RAM, Storage, PowerSupply, Case:
		return true
	default:
		return false
	}
}

// Label returns the localized display name
func (c Category) Label(tr i18n.Translator) string {
	return tr.T("category." + c.String())
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, unknownCategory(c.String())
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory accepts a category key or one of the aliases cpu, memory,
// gpu, psu and os, case-insensitively
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return 0, unknownCategory(s)
}

func unknownCategory(name string) error {
	return mdwerror.New("unknown part category").
		WithCode(mdwerror.CodeUnknownCategory).
		WithOperation("build.ParseCategory").
		WithDetail("category", name)
}
