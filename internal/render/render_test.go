package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/checker"
	"github.com/msto63/pcbuild/internal/family"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/internal/locales"
)

func plain() *Renderer {
	return New(WithPlain(true))
}

func TestSummaryPlain(t *testing.T) {
	b := build.New()
	require.NoError(t, b.AddProcessor("AMD Ryzen 7 5800X", mathx.MustNewDecimal("1500"), "3.8-4.7GHz, 8 cores"))
	require.NoError(t, b.AddCase("Mid Tower", mathx.MustNewDecimal("250"), ""))

	out := plain().Summary(b.Summary())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Resumo da Configuração (2 componentes)", lines[0])
	assert.Equal(t, "Processador: AMD Ryzen 7 5800X - R$ 1500.00 (3.8-4.7GHz, 8 cores)", lines[1])
	assert.Equal(t, "Gabinete: Mid Tower - R$ 250.00", lines[2])
	assert.Equal(t, "Preço Total: R$ 1750.00", lines[3])
}

func TestSummaryStyledKeepsContent(t *testing.T) {
	b := build.New()
	require.NoError(t, b.AddKit(kits.Gamer()))

	out := New().Summary(b.Summary())
	assert.Contains(t, out, "Resumo da Configuração (8 componentes)")
	assert.Contains(t, out, "R$ 11800.00")
	for _, e := range kits.Gamer() {
		assert.Contains(t, out, e.Name)
	}
}

func TestSummaryHeadingCount(t *testing.T) {
	tr, err := locales.New("en")
	require.NoError(t, err)
	r := New(WithPlain(true), WithTranslator(tr))

	b := build.New(build.WithTranslator(tr))
	assert.Equal(t, "Build Summary\nNo parts added.\nTotal Price: R$ 0.00", r.Summary(b.Summary()))

	require.NoError(t, b.AddMemory("16GB DDR4", mathx.MustNewDecimal("400"), ""))
	assert.True(t, strings.HasPrefix(r.Summary(b.Summary()), "Build Summary (1 part)\n"))

	require.NoError(t, b.AddMemory("16GB DDR4", mathx.MustNewDecimal("400"), ""))
	assert.True(t, strings.HasPrefix(r.Summary(b.Summary()), "Build Summary (2 parts)\n"))
}

func TestReport(t *testing.T) {
	r := plain()

	out := r.Report(build.New().Validate())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "❌ Erros encontrados:", lines[0])
	assert.Equal(t, "- Processador é obrigatório e não foi adicionado.", lines[1])

	b := build.New()
	require.NoError(t, b.AddKit(kits.Gamer()))
	assert.Equal(t, "✅ Configuração válida", r.Report(b.Validate()))
}

func TestChainErrors(t *testing.T) {
	r := plain()
	assert.Equal(t, "✅ Computador válido! Pode montar sem medo!", r.ChainErrors(nil))

	out := r.ChainErrors([]string{"Gabinete não foi selecionado."})
	assert.Equal(t, "❌ Erros na configuração do computador:\n- Gabinete não foi selecionado.", out)
}

func TestEnglish(t *testing.T) {
	tr, err := locales.New("en")
	require.NoError(t, err)
	r := New(WithPlain(true), WithTranslator(tr))

	assert.Equal(t, "✅ Valid computer! Safe to assemble.", r.ChainErrors(nil))
	assert.True(t, strings.HasPrefix(r.Family(family.Assemble(family.AMDFactory{})), "AMD computer\n"))
}

func TestSpecs(t *testing.T) {
	out := plain().Specs(checker.Specs{Processor: "Intel i7", RAMGB: 16})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "processor:       Intel i7", lines[0])
	assert.Equal(t, "ramGB:           16", lines[2])
	assert.Equal(t, "storageGB:       -", lines[3])
}

func TestFamily(t *testing.T) {
	c := family.Assemble(family.IntelFactory{})
	out := plain().Family(c)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+len(c.Components()))
	assert.Equal(t, "Computador Intel", lines[0])
	assert.Contains(t, lines[1], c.Processor.Label)
}

func TestKitList(t *testing.T) {
	out := plain().KitList(mathx.BRL)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(kits.Names()))
	for i, id := range kits.Names() {
		assert.True(t, strings.HasPrefix(lines[i], id))
	}
	assert.Contains(t, out, "R$ 11800.00")
	assert.Contains(t, out, "R$ 1960.00")
}
