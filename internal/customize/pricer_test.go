package customize_test

import (
	"testing"

	"github.com/nikolayk812/ceramics-cart/internal/customize"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestPricer_CalculatePrice(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.Selection
		want      string
	}{
		{
			name:      "mug medium minimal matte x3",
			selection: domain.Selection{ProductType: "mug", Size: "medium", Design: "minimal", Glaze: "matte", Quantity: 3},
			want:      "74.97",
		},
		{
			name:      "vase xl mandala crackle x1",
			selection: domain.Selection{ProductType: "vase", Size: "xl", Design: "mandala", Glaze: "crackle", Quantity: 1},
			want:      "94",
		},
		{
			name:      "plate large floral glossy x2",
			selection: domain.Selection{ProductType: "plate", Size: "large", Design: "floral", Glaze: "glossy", Quantity: 2},
			want:      "108.3",
		},
		{
			name:      "bowl small custom metallic x10",
			selection: domain.Selection{ProductType: "bowl", Size: "small", Design: "custom", Glaze: "metallic", Quantity: 10},
			want:      "511.92",
		},
		{
			name:      "color does not affect price",
			selection: domain.Selection{ProductType: "mug", Color: "sage", Size: "medium", Design: "minimal", Glaze: "matte", Quantity: 1},
			want:      "24.99",
		},
		{
			name:      "missing product type: zero",
			selection: domain.Selection{Size: "medium", Design: "minimal", Glaze: "matte", Quantity: 1},
			want:      "0",
		},
		{
			name:      "missing size: zero",
			selection: domain.Selection{ProductType: "mug", Design: "minimal", Glaze: "matte", Quantity: 1},
			want:      "0",
		},
		{
			name:      "missing design: zero",
			selection: domain.Selection{ProductType: "mug", Size: "medium", Glaze: "matte", Quantity: 1},
			want:      "0",
		},
		{
			name:      "missing glaze: zero",
			selection: domain.Selection{ProductType: "mug", Size: "medium", Design: "minimal", Quantity: 1},
			want:      "0",
		},
		{
			name:      "unknown product type: zero",
			selection: domain.Selection{ProductType: "teapot", Size: "medium", Design: "minimal", Glaze: "matte", Quantity: 1},
			want:      "0",
		},
	}

	pricer := customize.NewPricer(customize.DefaultCatalog())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricer.CalculatePrice(tt.selection)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Amount),
				"want %s, got %s", tt.want, got.Amount)
			assert.Equal(t, currency.USD, got.Currency)
		})
	}
}

func TestPricer_BuildLineItem(t *testing.T) {
	pricer := customize.NewPricer(customize.DefaultCatalog(),
		customize.WithIDGenerator(func() string { return "custom-fixed" }))

	sel := domain.Selection{
		ProductType: "plate",
		Color:       "beige",
		Size:        "large",
		Design:      "floral",
		Glaze:       "glossy",
		Quantity:    2,
		Note:        "for grandma",
	}

	got := pricer.BuildLineItem(sel)

	assert.Equal(t, "custom-fixed", got.ID)
	assert.Equal(t, "custom-plate", got.ProductID)
	assert.Equal(t, "Custom Plate", got.Name)
	assert.Equal(t, 2, got.Quantity)
	assert.True(t, decimal.RequireFromString("54.15").Equal(got.UnitPrice.Amount), "got %s", got.UnitPrice.Amount)
	assert.Equal(t, map[string]string{
		customize.KeyProductType: "plate",
		customize.KeyColor:       "Beige",
		customize.KeySize:        "Large",
		customize.KeyDesign:      "Floral",
		customize.KeyGlaze:       "Glossy",
		customize.KeyNote:        "for grandma",
	}, got.Customization)

	// unit price times quantity gives back the batch price
	assert.True(t, pricer.CalculatePrice(sel).Amount.Equal(got.Subtotal().Amount))
}

func TestPricer_BuildLineItemUniqueIDs(t *testing.T) {
	pricer := customize.NewPricer(customize.DefaultCatalog())
	sel := domain.Selection{ProductType: "mug", Color: "ash", Size: "small", Quantity: 1}

	seen := make(map[string]bool)
	for range 100 {
		item := pricer.BuildLineItem(sel)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		assert.Contains(t, item.ID, "custom-")
		seen[item.ID] = true
	}
}

func TestPricer_BuildLineItemUnpricedSelection(t *testing.T) {
	pricer := customize.NewPricer(customize.DefaultCatalog())

	got := pricer.BuildLineItem(domain.Selection{ProductType: "bowl", Color: "warm", Size: "medium", Quantity: 4})

	assert.True(t, got.UnitPrice.IsZero())
	assert.Equal(t, "", got.Customization[customize.KeyDesign])
	assert.NotContains(t, got.Customization, customize.KeyNote)
}
