// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     build
// Description: Composite computer build with categorized, priced parts
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

// Package build implements the composite computer build: categorized,
// priced parts added one by one or through preset kits, with exact totals,
// a required-category check and a printable summary.
package build

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/core/i18n"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/internal/locales"
	"github.com/msto63/pcbuild/pkg/core/logging"
)

// Build accumulates parts. Singleton categories keep the last part added;
// the other categories keep every part in insertion order.
// A Build is safe for concurrent use.
type Build struct {
	mu           sync.RWMutex
	id           string
	slots        map[Category][]Part
	currency     mathx.Currency
	currencyCode string
	tr           i18n.Translator
	logger       *logging.Logger
}

// Option configures a Build
type Option func(*Build)

// WithLogger sets the logger used for debug output
func WithLogger(logger *logging.Logger) Option {
	return func(b *Build) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTranslator sets the translator for labels and validation messages
func WithTranslator(tr i18n.Translator) Option {
	return func(b *Build) {
		if tr != nil {
			b.tr = tr
		}
	}
}

// WithCurrency sets the display currency by ISO code. Unknown codes keep BRL
// and are reported through the build's logger.
func WithCurrency(code string) Option {
	return func(b *Build) {
		b.currencyCode = code
	}
}

// WithID overrides the generated build id
func WithID(id string) Option {
	return func(b *Build) {
		if id != "" {
			b.id = id
		}
	}
}

// New creates an empty build
func New(opts ...Option) *Build {
	b := &Build{
		id:       uuid.NewString(),
		slots:    make(map[Category][]Part),
		currency: mathx.BRL,
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.tr == nil {
		b.tr = locales.Shared()
	}
	b.logger = b.logger.With("build_id", b.id)

	if b.currencyCode != "" {
		if c, ok := mathx.GetCurrency(b.currencyCode); ok {
			b.currency = c
		} else {
			b.logger.Warn("unknown currency, keeping default",
				"currency", b.currencyCode, "default", b.currency.Code)
		}
	}
	return b
}

// ID returns the build id
func (b *Build) ID() string {
	return b.id
}

// Currency returns the display currency
func (b *Build) Currency() mathx.Currency {
	return b.currency
}

// AddPart adds a part. A singleton category's previous part is replaced.
// Invalid parts leave the build unchanged.
func (b *Build) AddPart(category Category, name string, price mathx.Decimal, description string) error {
	part, err := NewPart(category, name, price, description)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.insert(part)
	return nil
}

// insert stores a validated part. Callers hold the write lock.
func (b *Build) insert(part Part) {
	if part.Category.Singleton() {
		if old := b.slots[part.Category]; len(old) > 0 {
			b.logger.Debug("part replaced",
				"category", part.Category.String(),
				"old", old[0].Name,
				"new", part.Name)
		}
		b.slots[part.Category] = []Part{part}
	} else {
		b.slots[part.Category] = append(b.slots[part.Category], part)
	}
	b.logger.Debug("part added",
		"category", part.Category.String(),
		"name", part.Name,
		"price", part.Price.String())
}

// AddProcessor adds or replaces the processor
func (b *Build) AddProcessor(name string, price mathx.Decimal, description string) error {
	return b.AddPart(Processor, name, price, description)
}

// AddMotherboard adds or replaces the motherboard
func (b *Build) AddMotherboard(name string, price mathx.Decimal, description string) error {
	return b.AddPart(Motherboard, name, price, description)
}

// AddMemory appends a memory module
func (b *Build) AddMemory(name string, price mathx.Decimal, description string) error {
	return b.AddPart(RAM, name, price, description)
}

// AddStorage appends a storage device
func (b *Build) AddStorage(name string, price mathx.Decimal, description string) error {
	return b.AddPart(Storage, name, price, description)
}

// AddGraphicsCard appends a graphics card
func (b *Build) AddGraphicsCard(name string, price mathx.Decimal, description string) error {
	return b.AddPart(GraphicsCard, name, price, description)
}

// AddPowerSupply adds or replaces the power supply
func (b *Build) AddPowerSupply(name string, price mathx.Decimal, description string) error {
	return b.AddPart(PowerSupply, name, price, description)
}

// AddCase adds or replaces the case
func (b *Build) AddCase(name string, price mathx.Decimal, description string) error {
	return b.AddPart(Case, name, price, description)
}

// AddOperatingSystem adds or replaces the operating system
func (b *Build) AddOperatingSystem(name string, price mathx.Decimal, description string) error {
	return b.AddPart(OperatingSystem, name, price, description)
}

// AddKit adds every entry in kit order with the same replace/append rules as
// AddPart. All entries are checked first; if one is invalid nothing is added.
func (b *Build) AddKit(entries []kits.Entry) error {
	parts := make([]Part, 0, len(entries))
	for i, e := range entries {
		category, err := ParseCategory(e.Category)
		if err != nil {
			return kitEntryError(err, i, e)
		}
		part, err := NewPart(category, e.Name, e.Price, e.Description)
		if err != nil {
			return kitEntryError(err, i, e)
		}
		parts = append(parts, part)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, part := range parts {
		b.insert(part)
	}
	b.logger.Debug("kit applied", "entries", len(parts))
	return nil
}

func kitEntryError(err error, index int, e kits.Entry) error {
	return mdwerror.Wrap(err, fmt.Sprintf("kit entry %d rejected", index)).
		WithOperation("build.AddKit").
		WithDetail("entry", index).
		WithDetail("name", e.Name)
}

// Parts returns a copy of the parts held in category, in insertion order
func (b *Build) Parts(category Category) []Part {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Part(nil), b.slots[category]...)
}

// Part returns the first part of category
func (b *Build) Part(category Category) (Part, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if parts := b.slots[category]; len(parts) > 0 {
		return parts[0], true
	}
	return Part{}, false
}

// Count returns the number of parts held
func (b *Build) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, parts := range b.slots {
		n += len(parts)
	}
	return n
}

// Total returns the exact sum of every part's price
func (b *Build) Total() mathx.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.total()
}

func (b *Build) total() mathx.Decimal {
	total := mathx.Zero()
	for _, c := range Categories() {
		for _, p := range b.slots[c] {
			total = total.Add(p.Price)
		}
	}
	return total
}

// Report is the outcome of Validate
type Report struct {
	Valid   bool       `json:"valid" yaml:"valid"`
	Errors  []string   `json:"errors" yaml:"errors"`
	Missing []Category `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Validate reports one error per empty required category, in display order
func (b *Build) Validate() Report {
	b.mu.RLock()
	defer b.mu.RUnlock()

	report := Report{Errors: []string{}}
	for _, c := range RequiredCategories() {
		if len(b.slots[c]) > 0 {
			continue
		}
		report.Missing = append(report.Missing, c)
		report.Errors = append(report.Errors,
			b.tr.T("build.missing", map[string]interface{}{"category": c.Label(b.tr)}))
	}
	report.Valid = len(report.Errors) == 0
	return report
}
