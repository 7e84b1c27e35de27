// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     checker
// Description: Flat configuration record and its validator chain
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

// Package checker wires the five required-part rules of a computer build
// into validation chains.
package checker

import (
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/core/i18n"
	"github.com/msto63/pcbuild/foundation/core/validation"
	"github.com/msto63/pcbuild/internal/locales"
)

// Rule names
const (
	RuleProcessor   = "processor"
	RuleRAM         = "ram"
	RuleStorage     = "storage"
	RulePowerSupply = "power_supply"
	RuleCase        = "case"
)

// Specs is the flat configuration a chain validates
type Specs struct {
	Processor       string `mapstructure:"processor" json:"processor,omitempty"`
	Motherboard     string `mapstructure:"motherboard" json:"motherboard,omitempty"`
	RAMGB           int    `mapstructure:"ramGB" json:"ramGB,omitempty"`
	StorageGB       int    `mapstructure:"storageGB" json:"storageGB,omitempty"`
	GraphicsCard    string `mapstructure:"graphicsCard" json:"graphicsCard,omitempty"`
	PowerSupplyW    int    `mapstructure:"powerSupplyW" json:"powerSupplyW,omitempty"`
	Case            string `mapstructure:"case" json:"case,omitempty"`
	OperatingSystem string `mapstructure:"operatingSystem" json:"operatingSystem,omitempty"`
}

// Chain is a wired sequence of Specs rules
type Chain = validation.Link[Specs]

// DefaultOrder returns the rule names in their conventional order
func DefaultOrder() []string {
	return []string{RuleProcessor, RuleRAM, RuleStorage, RulePowerSupply, RuleCase}
}

// IsKnown reports whether name is a rule name
func IsKnown(name string) bool {
	_, ok := ruleIndex(name)
	return ok
}

func ruleIndex(name string) (int, bool) {
	for i, n := range DefaultOrder() {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Rules returns the rule table in default order with messages from tr.
// A nil tr uses the default locale.
func Rules(tr i18n.Translator) []validation.Rule[Specs] {
	if tr == nil {
		tr = locales.Shared()
	}
	return []validation.Rule[Specs]{
		validation.RequiredText(RuleProcessor, "processor", tr.T("rules.processor"),
			func(s Specs) string { return s.Processor }),
		validation.RequiredPositive(RuleRAM, "ramGB", tr.T("rules.ram"),
			func(s Specs) int { return s.RAMGB }),
		validation.RequiredPositive(RuleStorage, "storageGB", tr.T("rules.storage"),
			func(s Specs) int { return s.StorageGB }),
		validation.RequiredPositive(RulePowerSupply, "powerSupplyW", tr.T("rules.power_supply"),
			func(s Specs) int { return s.PowerSupplyW }),
		validation.RequiredText(RuleCase, "case", tr.T("rules.case"),
			func(s Specs) string { return s.Case }),
	}
}

// Validator returns a fresh, unwired link for the named rule
func Validator(name string, tr i18n.Translator) (*Chain, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	i, ok := ruleIndex(normalized)
	if !ok {
		return nil, mdwerror.New("unknown validation rule").
			WithCode(mdwerror.CodeUnknownRule).
			WithOperation("checker.Validator").
			WithDetail("rule", name).
			WithDetail("known", strings.Join(DefaultOrder(), ","))
	}
	return validation.NewLink(Rules(tr)[i]), nil
}

// NewChain wires the named rules head to tail. Without names the default
// order is used. Each rule may appear once.
func NewChain(tr i18n.Translator, names ...string) (*Chain, error) {
	if len(names) == 0 {
		names = DefaultOrder()
	}

	seen := make(map[string]bool, len(names))
	links := make([]*Chain, 0, len(names))
	for _, name := range names {
		link, err := Validator(name, tr)
		if err != nil {
			return nil, err
		}
		key := link.Rule().Name
		if seen[key] {
			return nil, mdwerror.New("validation rule listed twice").
				WithCode(mdwerror.CodeDuplicateRule).
				WithOperation("checker.NewChain").
				WithDetail("rule", key)
		}
		seen[key] = true
		links = append(links, link)
	}

	return validation.Join(links...)
}

// Validate runs the default chain over specs
func Validate(specs Specs, tr i18n.Translator) []string {
	chain, err := NewChain(tr)
	if err != nil {
		// the default order is always valid
		panic(err)
	}
	return chain.Validate(specs)
}
