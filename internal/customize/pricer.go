package customize

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// Customization record keys.
const (
	KeyProductType = "productType"
	KeyColor       = "color"
	KeySize        = "size"
	KeyDesign      = "design"
	KeyGlaze       = "glaze"
	KeyNote        = "note"
)

const idPrefix = "custom-"

// Pricer derives prices and cart line items from a selection. It has no state
// besides its catalog and is safe for concurrent use.
type Pricer struct {
	catalog domain.Catalog
	newID   func() string
}

type PricerOption func(*Pricer)

func WithIDGenerator(fn func() string) PricerOption {
	return func(p *Pricer) {
		p.newID = fn
	}
}

func NewPricer(catalog domain.Catalog, opts ...PricerOption) *Pricer {
	p := &Pricer{
		catalog: catalog,
		newID: func() string {
			return idPrefix + uuid.NewString()
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pricer) Catalog() domain.Catalog {
	return p.catalog
}

// CalculatePrice returns the batch price:
// (base × size multiplier + design + glaze) × quantity.
// It is zero while product type, size, design or glaze is unresolved.
func (p *Pricer) CalculatePrice(sel domain.Selection) domain.Money {
	zero := domain.ZeroMoney(p.catalog.Currency)

	productType, ok := p.catalog.ProductType(sel.ProductType)
	if !ok {
		return zero
	}
	size, ok := p.catalog.Size(sel.Size)
	if !ok {
		return zero
	}
	design, ok := p.catalog.Design(sel.Design)
	if !ok {
		return zero
	}
	glaze, ok := p.catalog.Glaze(sel.Glaze)
	if !ok {
		return zero
	}

	unit := productType.BasePrice.Mul(size.Multiplier).
		Add(design.Surcharge).
		Add(glaze.Surcharge)

	return domain.Money{
		Amount:   unit.Mul(decimal.NewFromInt(int64(sel.Quantity))),
		Currency: p.catalog.Currency,
	}
}

// BuildLineItem turns a selection into a cart item priced per unit.
// Product type, color and size must be resolved; the caller checks that.
func (p *Pricer) BuildLineItem(sel domain.Selection) domain.LineItem {
	price := p.CalculatePrice(sel)
	if sel.Quantity > 0 {
		price.Amount = price.Amount.Div(decimal.NewFromInt(int64(sel.Quantity)))
	}

	productType, _ := p.catalog.ProductType(sel.ProductType)
	color, _ := p.catalog.Color(sel.Color)
	size, _ := p.catalog.Size(sel.Size)
	design, _ := p.catalog.Design(sel.Design)
	glaze, _ := p.catalog.Glaze(sel.Glaze)

	customization := map[string]string{
		KeyProductType: sel.ProductType,
		KeyColor:       color.Name,
		KeySize:        size.Name,
		KeyDesign:      design.Name,
		KeyGlaze:       glaze.Name,
	}
	if sel.Note != "" {
		customization[KeyNote] = sel.Note
	}

	return domain.LineItem{
		ID:            p.newID(),
		ProductID:     idPrefix + sel.ProductType,
		Name:          "Custom " + productType.Name,
		UnitPrice:     price,
		Quantity:      sel.Quantity,
		Customization: customization,
	}
}
