// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     family
// Description: Vendor families producing matching parts
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

// Package family produces vendor-specific bundles of labeled parts.
package family

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// Component kinds
const (
	KindProcessor   = "processor"
	KindMotherboard = "motherboard"
	KindMemory      = "memory"
)

// Component is a labeled part produced by a Factory
type Component struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

func (c Component) String() string {
	return c.Label
}

// Factory creates the parts of one vendor family
type Factory interface {
	Family() string
	CreateProcessor() Component
	CreateMotherboard() Component
	CreateMemory() Component
}

// IntelFactory builds Intel platform parts
type IntelFactory struct{}

func (IntelFactory) Family() string { return "Intel" }

func (IntelFactory) CreateProcessor() Component {
	return Component{Kind: KindProcessor, Label: "Intel Core i7-13700K"}
}

func (IntelFactory) CreateMotherboard() Component {
	return Component{Kind: KindMotherboard, Label: "ASUS Z790 (LGA1700)"}
}

func (IntelFactory) CreateMemory() Component {
	return Component{Kind: KindMemory, Label: "32GB DDR5 6000MHz"}
}

// AMDFactory builds AMD platform parts
type AMDFactory struct{}

func (AMDFactory) Family() string { return "AMD" }

func (AMDFactory) CreateProcessor() Component {
	return Component{Kind: KindProcessor, Label: "AMD Ryzen 7 7700X"}
}

func (AMDFactory) CreateMotherboard() Component {
	return Component{Kind: KindMotherboard, Label: "MSI B650 (AM5)"}
}

func (AMDFactory) CreateMemory() Component {
	return Component{Kind: KindMemory, Label: "32GB DDR5 5600MHz EXPO"}
}

var factories = map[string]Factory{
	"intel": IntelFactory{},
	"amd":   AMDFactory{},
}

// Select returns the factory for a vendor token such as "intel" or "AMD"
func Select(token string) (Factory, error) {
	f, ok := factories[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return nil, mdwerror.New("unknown vendor family").
			WithCode(mdwerror.CodeUnknownFamily).
			WithOperation("family.Select").
			WithDetail("token", token).
			WithDetail("known", strings.Join(Tokens(), ","))
	}
	return f, nil
}

// Tokens returns the accepted vendor tokens, sorted
func Tokens() []string {
	tokens := make([]string, 0, len(factories))
	for t := range factories {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Computer is the bundle a Factory produced
type Computer struct {
	Family      string    `json:"family"`
	Processor   Component `json:"processor"`
	Motherboard Component `json:"motherboard"`
	Memory      Component `json:"memory"`
}

// Assemble asks the factory for each part
func Assemble(f Factory) Computer {
	return Computer{
		Family:      f.Family(),
		Processor:   f.CreateProcessor(),
		Motherboard: f.CreateMotherboard(),
		Memory:      f.CreateMemory(),
	}
}

// Components returns the parts in display order
func (c Computer) Components() []Component {
	return []Component{c.Processor, c.Motherboard, c.Memory}
}

// DisplaySpecs renders a short multi-line report
func (c Computer) DisplaySpecs() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s computer\n", c.Family)
	for _, comp := range c.Components() {
		fmt.Fprintf(&sb, "  %-12s %s\n", comp.Kind+":", comp.Label)
	}
	return strings.TrimRight(sb.String(), "\n")
}
