package build

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"processor", Processor},
		{"CPU", Processor},
		{"motherboard", Motherboard},
		{"ram", RAM},
		{"memory", RAM},
		{"storage", Storage},
		{"graphics_card", GraphicsCard},
		{"graphics-card", GraphicsCard},
		{"gpu", GraphicsCard},
		{"power_supply", PowerSupply},
		{"psu", PowerSupply},
		{" Case ", Case},
		{"operating_system", OperatingSystem},
		{"os", OperatingSystem},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCategory("monitor")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownCategory))
}

func TestCategoryProperties(t *testing.T) {
	singleton := map[Category]bool{
		Processor: true, Motherboard: true, RAM: false, Storage: false,
		GraphicsCard: false, PowerSupply: true, Case: true, OperatingSystem: true,
	}
	required := map[Category]bool{
		Processor: true, Motherboard: true, RAM: true, Storage: true,
		GraphicsCard: false, PowerSupply: true, Case: true, OperatingSystem: false,
	}

	require.Len(t, Categories(), 8)
	for _, c := range Categories() {
		assert.Equal(t, singleton[c], c.Singleton(), c.String())
		assert.Equal(t, required[c], c.Required(), c.String())
	}
	assert.Equal(t, []Category{Processor, Motherboard, RAM, Storage, PowerSupply, Case}, RequiredCategories())
}

func TestInvalidCategory(t *testing.T) {
	bad := Category(42)
	assert.False(t, bad.Valid())
	assert.False(t, bad.Singleton())
	assert.Equal(t, "category(42)", bad.String())

	_, err := bad.MarshalText()
	assert.Error(t, err)
}

func TestCategoryText(t *testing.T) {
	out, err := json.Marshal(map[string]Category{"c": GraphicsCard})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"graphics_card"}`, string(out))

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("psu")))
	assert.Equal(t, PowerSupply, c)
	assert.Error(t, c.UnmarshalText([]byte("fan")))
}

func TestNewPart(t *testing.T) {
	p, err := NewPart(Case, "  Mid Tower ", mathx.MustNewDecimal("250"), " ATX ")
	require.NoError(t, err)
	assert.Equal(t, "Mid Tower", p.Name)
	assert.Equal(t, "ATX", p.Description)

	free, err := NewPart(OperatingSystem, "Linux", mathx.Zero(), "")
	require.NoError(t, err)
	assert.True(t, free.Price.IsZero())

	tests := []struct {
		name     string
		category Category
		partName string
		price    string
		code     mdwerror.Code
	}{
		{"blank name", RAM, "  ", "10", mdwerror.CodeInvalidPart},
		{"negative price", RAM, "8GB", "-0.01", mdwerror.CodeInvalidPart},
		{"bad category", Category(-1), "x", "1", mdwerror.CodeUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPart(tt.category, tt.partName, mathx.MustNewDecimal(tt.price), "")
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, tt.code), err.Error())
		})
	}
}
