// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of summaries, reports and catalogs
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

// Package render turns build summaries, validation results and family
// reports into terminal text, styled with lipgloss or plain.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pcbuild/foundation/core/i18n"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/checker"
	"github.com/msto63/pcbuild/internal/family"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/internal/locales"
)

// Renderer formats domain values for the terminal
type Renderer struct {
	tr    i18n.Translator
	plain bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithPlain disables styling; output is stable text suitable for pipes and tests
func WithPlain(plain bool) Option {
	return func(r *Renderer) {
		r.plain = plain
	}
}

// WithTranslator sets the translator for headings
func WithTranslator(tr i18n.Translator) Option {
	return func(r *Renderer) {
		if tr != nil {
			r.tr = tr
		}
	}
}

// New creates a Renderer. Without a translator the default locale is used.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.tr == nil {
		r.tr = locales.Shared()
	}
	return r
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Summary renders a build summary: a heading with the part count, one line
// per part and the total
func (r *Renderer) Summary(s build.Summary) string {
	if r.plain {
		return s.Heading() + "\n" + s.String()
	}

	var lines []string
	lines = append(lines, r.style(TitleStyle, s.Heading()))
	if len(s.Sections) == 0 {
		lines = append(lines, r.style(DescriptionStyle, s.EmptyLabel))
	}
	for _, sec := range s.Sections {
		for _, p := range sec.Parts {
			line := r.style(LabelStyle, sec.Label+":") + " " + p.Name + " - " + r.style(PriceStyle, s.Price(p.Price))
			if p.Description != "" {
				line += " " + r.style(DescriptionStyle, "("+p.Description+")")
			}
			lines = append(lines, line)
		}
	}
	lines = append(lines, r.style(TotalStyle, fmt.Sprintf("%s: %s", s.TotalLabel, s.Price(s.Total))))
	return BoxStyle.Render(strings.Join(lines, "\n"))
}

// Report renders a build validation report
func (r *Renderer) Report(rep build.Report) string {
	if rep.Valid {
		return r.style(OKStyle, "✅ "+r.tr.T("build.valid"))
	}
	return r.errorList("❌ "+r.tr.T("build.invalid")+":", rep.Errors)
}

// ChainErrors renders the messages returned by a validator chain
func (r *Renderer) ChainErrors(errs []string) string {
	if len(errs) == 0 {
		return r.style(OKStyle, "✅ "+r.tr.T("chain.valid"))
	}
	return r.errorList("❌ "+r.tr.T("chain.invalid"), errs)
}

func (r *Renderer) errorList(heading string, errs []string) string {
	lines := []string{r.style(ErrorStyle, heading)}
	for _, e := range errs {
		lines = append(lines, "- "+e)
	}
	return strings.Join(lines, "\n")
}

// Specs renders a flat configuration, one field per line. Empty fields are
// shown as "-".
func (r *Renderer) Specs(s checker.Specs) string {
	rows := [][2]string{
		{"processor", s.Processor},
		{"motherboard", s.Motherboard},
		{"ramGB", number(s.RAMGB)},
		{"storageGB", number(s.StorageGB)},
		{"graphicsCard", s.GraphicsCard},
		{"powerSupplyW", number(s.PowerSupplyW)},
		{"case", s.Case},
		{"operatingSystem", s.OperatingSystem},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		if r.plain {
			lines = append(lines, fmt.Sprintf("%-16s %s", row[0]+":", value))
			continue
		}
		lines = append(lines, r.style(LabelStyle, row[0]+":")+" "+value)
	}
	return strings.Join(lines, "\n")
}

func number(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

// Family renders the parts a vendor factory produced
func (r *Renderer) Family(c family.Computer) string {
	lines := []string{r.style(TitleStyle, r.tr.T("family.title", map[string]interface{}{"family": c.Family}))}
	for _, comp := range c.Components() {
		if r.plain {
			lines = append(lines, fmt.Sprintf("  %-12s %s", comp.Kind+":", comp.Label))
			continue
		}
		lines = append(lines, "  "+r.style(LabelStyle, comp.Kind+":")+" "+comp.Label)
	}
	return strings.Join(lines, "\n")
}

// KitList renders the preset ids with their descriptions and totals
func (r *Renderer) KitList(currency mathx.Currency) string {
	var lines []string
	for _, id := range kits.Names() {
		desc, _ := kits.Describe(id)
		total := mathx.NewMoney(kits.Total(kits.MustPreset(id)), currency).Format()
		if r.plain {
			lines = append(lines, fmt.Sprintf("%-12s %-36s %s", id, desc, total))
			continue
		}
		lines = append(lines, r.style(TitleStyle, fmt.Sprintf("%-12s", id))+" "+
			r.style(DescriptionStyle, fmt.Sprintf("%-36s", desc))+" "+r.style(PriceStyle, total))
	}
	return strings.Join(lines, "\n")
}
