package domain

import "github.com/shopspring/decimal"

type Cart struct {
	Items []LineItem
}

// LineItem is one cart entry: Quantity pieces of a product at a fixed unit price.
type LineItem struct {
	ID        string
	ProductID string
	Name      string
	UnitPrice Money
	Quantity  int

	// attribute name -> display value, nil for plain catalog products
	Customization map[string]string
}

func (i LineItem) Subtotal() Money {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
