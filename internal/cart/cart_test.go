package cart_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func item(id string, price string, quantity int) domain.LineItem {
	return domain.LineItem{
		ID:        id,
		ProductID: "product-" + id,
		Name:      "item " + id,
		UnitPrice: domain.Money{Amount: decimal.RequireFromString(price), Currency: currency.USD},
		Quantity:  quantity,
	}
}

func randomLineItem() domain.LineItem {
	return domain.LineItem{
		ID:        uuid.NewString(),
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		UnitPrice: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Currency: currency.USD,
		},
		Quantity: gofakeit.IntRange(1, 10),
	}
}

func assertMoney(t *testing.T, want string, got domain.Money) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(want).Equal(got.Amount),
		"want %s, got %s", want, got.Amount)
}

func assertItems(t *testing.T, expected, actual []domain.LineItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.EquateEmpty(),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
