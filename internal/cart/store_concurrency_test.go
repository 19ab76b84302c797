package cart_test

import (
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/nikolayk812/ceramics-cart/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"
)

func TestStore_ConcurrentMutations(t *testing.T) {
	store := cart.NewStore(currency.USD)

	var notified atomic.Int64
	store.Subscribe(func() {
		notified.Add(1)
		_ = store.Count()
	})

	const (
		workers = 16
		perWork = 50
	)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for i := range perWork {
				store.AddItem(item("shared", "1", 1))
				store.AddItem(item(strconv.Itoa(w)+"-"+strconv.Itoa(i), "2", 1))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, workers*perWork*2, store.Count())
	assert.Len(t, store.Items(), workers*perWork+1)
	assert.Equal(t, int64(workers*perWork*2), notified.Load())
	assertMoney(t, strconv.Itoa(workers*perWork*3), store.Total())
}
