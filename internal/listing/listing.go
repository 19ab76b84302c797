// Package listing filters and sorts catalog products and turns them into cart items.
package listing

import (
	"cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortName      SortOrder = "name"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
)

// AllCategories matches every product, as does an empty category.
const AllCategories = "all"

var fallbackPrice = decimal.RequireFromString("29.99")

type Query struct {
	Search   string
	Category string
	Sort     SortOrder
}

// Filter returns the products matching q, sorted by q.Sort. The input is not modified.
func Filter(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, search) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceLow:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case SortPriceHigh:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	default:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	return result
}

func matchesSearch(p domain.Product, search string) bool {
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// LineItemFor builds a single-piece cart item for p. Every call yields a new
// item id, so adding the same product twice produces two lines.
func LineItemFor(p domain.Product) domain.LineItem {
	productID := p.ID
	if productID == "" {
		productID = "temp-" + uuid.NewString()
	}

	name := p.Name
	if name == "" {
		name = "Product"
	}

	price := p.Price
	if price.Amount.IsZero() {
		price.Amount = fallbackPrice
	}

	return domain.LineItem{
		ID:        productID + "-" + uuid.NewString(),
		ProductID: productID,
		Name:      name,
		UnitPrice: price,
		Quantity:  1,
	}
}
