package listing_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/nikolayk812/ceramics-cart/internal/listing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func product(id, name, description, category, price string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       domain.Money{Amount: decimal.RequireFromString(price), Currency: currency.USD},
	}
}

var products = []domain.Product{
	product("1", "Vase Terra", "tall hand thrown vase", "vases", "45"),
	product("2", "bowl Luna", "deep ramen bowl", "bowls", "28.99"),
	product("3", "Mug Aurora", "speckled glaze mug", "mugs", "24.99"),
	product("4", "Plate Sol", "dinner plate with glaze", "plates", "35.5"),
}

func ids(products []domain.Product) string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(p.ID)
	}
	return b.String()
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   listing.Query
		wantIDs string
	}{
		{
			name:    "no query: sorted by name, case insensitive",
			query:   listing.Query{},
			wantIDs: "2341",
		},
		{
			name:    "search matches description",
			query:   listing.Query{Search: "GLAZE"},
			wantIDs: "34",
		},
		{
			name:    "search matches name",
			query:   listing.Query{Search: " luna "},
			wantIDs: "2",
		},
		{
			name:    "category all",
			query:   listing.Query{Category: listing.AllCategories, Sort: listing.SortPriceLow},
			wantIDs: "3241",
		},
		{
			name:    "category filter with price high",
			query:   listing.Query{Category: "mugs", Sort: listing.SortPriceHigh},
			wantIDs: "3",
		},
		{
			name:    "price high",
			query:   listing.Query{Sort: listing.SortPriceHigh},
			wantIDs: "1423",
		},
		{
			name:    "nothing matches",
			query:   listing.Query{Search: "teapot"},
			wantIDs: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listing.Filter(products, tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}

	assert.Equal(t, "1234", ids(products), "input must not be reordered")
}

func TestLineItemFor(t *testing.T) {
	p := products[1]

	first := listing.LineItemFor(p)
	second := listing.LineItemFor(p)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.ID, "2-"))
	assert.Equal(t, "2", first.ProductID)
	assert.Equal(t, "bowl Luna", first.Name)
	assert.Equal(t, 1, first.Quantity)
	assert.True(t, p.Price.Amount.Equal(first.UnitPrice.Amount))
}

func TestLineItemFor_Fallbacks(t *testing.T) {
	got := listing.LineItemFor(domain.Product{Price: domain.ZeroMoney(currency.EUR)})

	assert.True(t, strings.HasPrefix(got.ProductID, "temp-"))
	assert.True(t, strings.HasPrefix(got.ID, got.ProductID+"-"))
	assert.Equal(t, "Product", got.Name)
	assert.Equal(t, currency.EUR, got.UnitPrice.Currency)
	assert.True(t, decimal.RequireFromString("29.99").Equal(got.UnitPrice.Amount))
}
