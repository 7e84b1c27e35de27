package build

import (
	"strings"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
	"github.com/msto63/pcbuild/foundation/utils/mathx"
)

// Part is an immutable priced component
type Part struct {
	Category    Category      `json:"category" yaml:"category"`
	Name        string        `json:"name" yaml:"name"`
	Price       mathx.Decimal `json:"price" yaml:"price"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewPart validates and creates a part. Names are trimmed; a blank name or a
// negative price fails with INVALID_PART.
func NewPart(category Category, name string, price mathx.Decimal, description string) (Part, error) {
	if !category.Valid() {
		return Part{}, unknownCategory(category.String())
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Part{}, mdwerror.New("part name must not be blank").
			WithCode(mdwerror.CodeInvalidPart).
			WithOperation("build.NewPart").
			WithDetail("category", category.String()).
			WithDetail("field", "name")
	}
	if price.IsNegative() {
		return Part{}, mdwerror.Newf("part price must not be negative: %s", price).
			WithCode(mdwerror.CodeInvalidPart).
			WithOperation("build.NewPart").
			WithDetail("category", category.String()).
			WithDetail("field", "price").
			WithDetail("name", name)
	}

	return Part{
		Category:    category,
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(description),
	}, nil
}
