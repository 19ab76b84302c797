package customize

import (
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCatalog returns the options offered when no catalog is configured.
func DefaultCatalog() domain.Catalog {
	d := decimal.RequireFromString

	return domain.Catalog{
		Currency: currency.USD,
		ProductTypes: []domain.ProductType{
			{ID: "mug", Name: "Mug", BasePrice: d("24.99")},
			{ID: "plate", Name: "Plate", BasePrice: d("35.50")},
			{ID: "vase", Name: "Vase", BasePrice: d("45.00")},
			{ID: "bowl", Name: "Bowl", BasePrice: d("28.99")},
		},
		Colors: []domain.Color{
			{ID: "sage", Name: "Sage Green", Hex: "#A6C3AD"},
			{ID: "ash", Name: "Ash", Hex: "#B9CCAE"},
			{ID: "tea", Name: "Tea Green", Hex: "#CCD5AE"},
			{ID: "beige", Name: "Beige", Hex: "#E9EDC9"},
			{ID: "warm", Name: "Warm", Hex: "#FAEDCD"},
			{ID: "buff", Name: "Ochre", Hex: "#D3A373"},
		},
		Sizes: []domain.Size{
			{ID: "small", Name: "Small", Multiplier: d("0.8")},
			{ID: "medium", Name: "Medium", Multiplier: d("1.0")},
			{ID: "large", Name: "Large", Multiplier: d("1.3")},
			{ID: "xl", Name: "Extra Large", Multiplier: d("1.6")},
		},
		Designs: []domain.Design{
			{ID: "minimal", Name: "Minimal", Surcharge: d("0")},
			{ID: "floral", Name: "Floral", Surcharge: d("5")},
			{ID: "geometric", Name: "Geometric", Surcharge: d("8")},
			{ID: "mandala", Name: "Mandala", Surcharge: d("12")},
			{ID: "custom", Name: "Custom Design", Surcharge: d("20")},
		},
		Glazes: []domain.Glaze{
			{ID: "matte", Name: "Matte", Surcharge: d("0")},
			{ID: "glossy", Name: "Glossy", Surcharge: d("3")},
			{ID: "metallic", Name: "Metallic", Surcharge: d("8")},
			{ID: "crackle", Name: "Crackle", Surcharge: d("10")},
		},
	}
}
