package build

import (
	"fmt"
	"strings"

	"github.com/msto63/pcbuild/foundation/utils/mathx"
)

// Section lists the parts of one category
type Section struct {
	Category Category `json:"category" yaml:"category"`
	Label    string   `json:"label" yaml:"label"`
	Parts    []Part   `json:"parts" yaml:"parts"`
}

// Summary is a read-only snapshot of a build
type Summary struct {
	BuildID    string         `json:"buildId" yaml:"buildId"`
	Title      string         `json:"title" yaml:"title"`
	Currency   mathx.Currency `json:"-" yaml:"-"`
	Sections   []Section      `json:"sections" yaml:"sections"`
	Total      mathx.Decimal  `json:"total" yaml:"total"`
	TotalLabel string         `json:"-" yaml:"-"`
	EmptyLabel string         `json:"-" yaml:"-"`
	CountLabel string         `json:"-" yaml:"-"`
}

// Summary returns the non-empty categories in display order with the total
func (b *Build) Summary() Summary {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Summary{
		BuildID:    b.id,
		Title:      b.tr.T("build.title"),
		Currency:   b.currency,
		Sections:   []Section{},
		Total:      b.total(),
		TotalLabel: b.tr.T("build.total"),
		EmptyLabel: b.tr.T("build.empty"),
	}
	for _, c := range Categories() {
		parts := b.slots[c]
		if len(parts) == 0 {
			continue
		}
		s.Sections = append(s.Sections, Section{
			Category: c,
			Label:    c.Label(b.tr),
			Parts:    append([]Part(nil), parts...),
		})
	}
	s.CountLabel = b.tr.Plural("build.parts", s.Count(), nil)
	return s
}

// Heading returns the title followed by the part count, e.g.
// "Build Summary (7 parts)". An empty summary has the bare title.
func (s Summary) Heading() string {
	if len(s.Sections) == 0 || s.CountLabel == "" {
		return s.Title
	}
	return s.Title + " (" + s.CountLabel + ")"
}

// Count returns the number of parts in the summary
func (s Summary) Count() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Parts)
	}
	return n
}

// Price formats an amount in the summary's currency
func (s Summary) Price(amount mathx.Decimal) string {
	return mathx.NewMoney(amount, s.Currency).Format()
}

// Line renders one part as "label: name - price (description)"
func (s Summary) Line(label string, p Part) string {
	line := fmt.Sprintf("%s: %s - %s", label, p.Name, s.Price(p.Price))
	if p.Description != "" {
		line += " (" + p.Description + ")"
	}
	return line
}

// String renders one line per part followed by the total line
func (s Summary) String() string {
	var sb strings.Builder
	if len(s.Sections) == 0 && s.EmptyLabel != "" {
		sb.WriteString(s.EmptyLabel)
		sb.WriteByte('\n')
	}
	for _, sec := range s.Sections {
		for _, p := range sec.Parts {
			sb.WriteString(s.Line(sec.Label, p))
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "%s: %s", s.TotalLabel, s.Price(s.Total))
	return sb.String()
}
