package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ProductType struct {
	ID        string
	Name      string
	BasePrice decimal.Decimal
}

type Color struct {
	ID   string
	Name string
	Hex  string
}

type Size struct {
	ID         string
	Name       string
	Multiplier decimal.Decimal
}

// Design and Glaze add a flat surcharge per piece.
type Design struct {
	ID        string
	Name      string
	Surcharge decimal.Decimal
}

type Glaze struct {
	ID        string
	Name      string
	Surcharge decimal.Decimal
}

// Catalog is the set of options offered by the customizer, priced in Currency.
type Catalog struct {
	Currency     currency.Unit
	ProductTypes []ProductType
	Colors       []Color
	Sizes        []Size
	Designs      []Design
	Glazes       []Glaze
}

func (c Catalog) ProductType(id string) (ProductType, bool) {
	return find(c.ProductTypes, id, func(p ProductType) string { return p.ID })
}

func (c Catalog) Color(id string) (Color, bool) {
	return find(c.Colors, id, func(v Color) string { return v.ID })
}

func (c Catalog) Size(id string) (Size, bool) {
	return find(c.Sizes, id, func(v Size) string { return v.ID })
}

func (c Catalog) Design(id string) (Design, bool) {
	return find(c.Designs, id, func(v Design) string { return v.ID })
}

func (c Catalog) Glaze(id string) (Glaze, bool) {
	return find(c.Glazes, id, func(v Glaze) string { return v.ID })
}

func find[T any](options []T, id string, key func(T) string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}

	for _, o := range options {
		if key(o) == id {
			return o, true
		}
	}

	return zero, false
}
