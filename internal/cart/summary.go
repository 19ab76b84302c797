package cart

import (
	"errors"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrEmptyCart = errors.New("cart is empty")

var (
	freeShippingOver = decimal.NewFromInt(50)
	shippingFee      = decimal.RequireFromString("9.99")
	taxRate          = decimal.RequireFromString("0.1")
)

type Summary struct {
	Subtotal domain.Money
	Shipping domain.Money
	Tax      domain.Money
	Total    domain.Money
}

// Summarize adds shipping and tax to a cart subtotal.
// Shipping is free strictly above 50.
func Summarize(subtotal domain.Money) Summary {
	shipping := domain.Money{Amount: shippingFee, Currency: subtotal.Currency}
	if subtotal.Amount.GreaterThan(freeShippingOver) {
		shipping = domain.ZeroMoney(subtotal.Currency)
	}

	tax := subtotal.Mul(taxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func (s *Store) Summary() Summary {
	return Summarize(s.Total())
}

// Checkout returns what would be ordered. It does not clear the cart.
func (s *Store) Checkout() (domain.Cart, Summary, error) {
	c := s.Cart()
	if len(c.Items) == 0 {
		return domain.Cart{}, Summary{}, ErrEmptyCart
	}

	return c, Summarize(totalOf(c.Items, s.currency)), nil
}

// SetQuantity is the cart page quantity control: zero or less removes the item.
func SetQuantity(s *Store, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.UpdateQuantity(id, quantity)
}

func totalOf(items []domain.LineItem, cur currency.Unit) domain.Money {
	total := domain.ZeroMoney(cur)
	for _, item := range items {
		total.Amount = total.Amount.Add(item.Subtotal().Amount)
	}

	return total
}
