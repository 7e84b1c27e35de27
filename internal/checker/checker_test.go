// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     checker
// Description: Tests for rule order, subsets and chain wiring
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package checker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/core/validation"
	"github.com/msto63/pcbuild/internal/locales"
)

func complete() Specs {
	return Specs{
		Processor:    "Intel i7",
		RAMGB:        16,
		StorageGB:    512,
		PowerSupplyW: 650,
		Case:         "Mid Tower",
	}
}

// without zeroes the field checked by rule
func without(s Specs, rule string) Specs {
	switch rule {
	case RuleProcessor:
		s.Processor = ""
	case RuleRAM:
		s.RAMGB = 0
	case RuleStorage:
		s.StorageGB = 0
	case RulePowerSupply:
		s.PowerSupplyW = 0
	case RuleCase:
		s.Case = ""
	}
	return s
}

func TestCompleteSpecsHaveNoErrors(t *testing.T) {
	chain, err := NewChain(nil)
	require.NoError(t, err)

	errs := chain.Validate(complete())
	assert.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestOneMissingFieldYieldsOneError(t *testing.T) {
	tr := locales.Shared()
	rules := Rules(tr)

	for i, name := range DefaultOrder() {
		t.Run(name, func(t *testing.T) {
			chain, err := NewChain(tr)
			require.NoError(t, err)

			errs := chain.Validate(without(complete(), name))
			require.Len(t, errs, 1)
			assert.Equal(t, rules[i].Message, errs[0])
		})
	}
}

func TestErrorPositionFollowsChainOrder(t *testing.T) {
	tr, err := locales.New("en")
	require.NoError(t, err)

	order := []string{RuleCase, RuleStorage, RuleProcessor, RulePowerSupply, RuleRAM}
	chain, err := NewChain(tr, order...)
	require.NoError(t, err)
	assert.Equal(t, order, chain.Names())

	errs := chain.Validate(Specs{})
	assert.Equal(t, []string{
		"Case was not selected.",
		"Storage size was not provided.",
		"Processor was not selected.",
		"Power supply wattage was not provided.",
		"RAM size was not provided.",
	}, errs)
}

func TestMissingCountMatchesErrorCount(t *testing.T) {
	names := DefaultOrder()
	chain, err := NewChain(nil)
	require.NoError(t, err)

	// every subset of the five fields
	for mask := 0; mask < 1<<len(names); mask++ {
		specs := complete()
		missing := 0
		for i, name := range names {
			if mask&(1<<i) != 0 {
				specs = without(specs, name)
				missing++
			}
		}
		assert.Len(t, chain.Validate(specs), missing, "mask %05b", mask)
	}
}

func TestNegativeAndBlankValuesFail(t *testing.T) {
	chain, err := NewChain(nil)
	require.NoError(t, err)

	specs := Specs{Processor: "   ", RAMGB: -4, StorageGB: 256, PowerSupplyW: 400, Case: "ATX"}
	errs := chain.Validate(specs)
	assert.Len(t, errs, 2)
}

func TestValidateIsIdempotent(t *testing.T) {
	chain, err := NewChain(nil)
	require.NoError(t, err)

	specs := Specs{Processor: "Intel i7", RAMGB: 4, StorageGB: 256, PowerSupplyW: 400}
	first := chain.Validate(specs)
	second := chain.Validate(specs)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Gabinete não foi selecionado."}, first)
	assert.Equal(t, "Intel i7", specs.Processor)
}

func TestCheckReportsFields(t *testing.T) {
	chain, err := NewChain(nil)
	require.NoError(t, err)

	result := chain.Check(Specs{Processor: "x", RAMGB: 8})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"storageGB", "powerSupplyW", "case"}, result.Fields())
	assert.Equal(t, validation.CodeRange, result.Errors[0].Code)
	assert.Equal(t, validation.CodeRequired, result.Errors[2].Code)
}

func TestNewChainUnknownRule(t *testing.T) {
	_, err := NewChain(nil, RuleProcessor, "gpu")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownRule))
}

func TestNewChainDuplicateRule(t *testing.T) {
	_, err := NewChain(nil, RuleRAM, "RAM")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDuplicateRule))
}

func TestValidatorIsFresh(t *testing.T) {
	a, err := Validator(RuleRAM, nil)
	require.NoError(t, err)
	b, err := Validator(RuleRAM, nil)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Nil(t, a.Next())
	assert.Equal(t, 1, a.Len())
}

func TestFluentWiringMatchesNewChain(t *testing.T) {
	links := make([]*Chain, 0, 5)
	for _, name := range DefaultOrder() {
		link, err := Validator(name, nil)
		require.NoError(t, err)
		links = append(links, link)
	}
	links[0].SetNext(links[1]).SetNext(links[2]).SetNext(links[3]).SetNext(links[4])
	require.NoError(t, links[0].Err())

	chain, err := NewChain(nil)
	require.NoError(t, err)
	assert.Equal(t, chain.Validate(Specs{}), links[0].Validate(Specs{}))
}

func TestCycleIsRefused(t *testing.T) {
	cpu, _ := Validator(RuleProcessor, nil)
	ram, _ := Validator(RuleRAM, nil)
	storage, _ := Validator(RuleStorage, nil)

	cpu.SetNext(ram).SetNext(storage)
	storage.SetNext(cpu)

	require.Error(t, storage.Err())
	assert.True(t, errors.Is(storage.Err(), validation.ErrChainCycle))
	assert.Nil(t, storage.Next())
	assert.Len(t, cpu.Validate(Specs{}), 3)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("power_supply"))
	assert.False(t, IsKnown("psu"))
}

func TestValidateHelper(t *testing.T) {
	assert.Len(t, Validate(Specs{}, nil), 5)
	assert.Empty(t, Validate(complete(), nil))
}
