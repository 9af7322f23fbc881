package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	t.Run("empty cart is a no-op", func(t *testing.T) {
		a := newTestApp(t)
		before := a.Inventory()

		_, err := a.Checkout()
		assert.ErrorIs(t, err, ErrCartEmpty)
		assert.Empty(t, a.Transactions())
		assert.Equal(t, before, a.Inventory())
	})

	t.Run("reference sale", func(t *testing.T) {
		// product {stock:2, price:10000, cost:7000}, added twice
		a := newTestApp(t)
		_, err := a.UpdateProduct(1, ProductInput{Name: "Nước Ngọt Coca", Price: 10000, Cost: 7000, Stock: 2, Unit: "Lon", Category: "Đồ uống"})
		require.NoError(t, err)

		require.NoError(t, a.AddToCart(1))
		require.NoError(t, a.AddToCart(1))

		tx, err := a.Checkout()
		require.NoError(t, err)
		assert.Equal(t, int64(20000), tx.Total)
		assert.Equal(t, int64(6000), tx.Profit)

		assert.Empty(t, a.Cart().Lines)
		require.Len(t, a.Transactions(), 1)

		for _, p := range a.Inventory() {
			if p.ID == 1 {
				assert.Equal(t, int64(0), p.Stock)
			}
		}

		// a third add now fails: the product is sold out
		err = a.AddToCart(1)
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.Empty(t, a.Cart().Lines)
	})

	t.Run("stock and log move together", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.AddToCart(1))
		require.NoError(t, a.AddToCart(4))
		require.NoError(t, a.AddToCart(4))

		stockBefore := map[int64]int64{}
		for _, p := range a.Inventory() {
			stockBefore[p.ID] = p.Stock
		}

		tx, err := a.Checkout()
		require.NoError(t, err)
		require.Len(t, a.Transactions(), 1)
		assert.Equal(t, tx.ID, a.Transactions()[0].ID)

		for _, p := range a.Inventory() {
			want := stockBefore[p.ID]
			for _, l := range tx.Items {
				if l.ID == p.ID {
					want -= l.Qty
				}
			}
			assert.Equal(t, want, p.Stock, "product %d", p.ID)
		}
	})

	t.Run("deleted product skips its decrement", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.AddToCart(1))
		require.NoError(t, a.AddToCart(2))
		require.NoError(t, a.DeleteProduct(1))

		tx, err := a.Checkout()
		require.NoError(t, err)

		// the sale still records both lines at snapshot prices
		require.Len(t, tx.Items, 2)
		assert.Equal(t, int64(16000), tx.Total)

		for _, p := range a.Inventory() {
			if p.ID == 2 {
				assert.Equal(t, int64(19), p.Stock)
			}
		}
	})

	t.Run("transaction ids strictly increase on a frozen clock", func(t *testing.T) {
		frozen := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
		a := New(Options{PIN: "1234", Now: func() time.Time { return frozen }})

		require.NoError(t, a.AddToCart(4))
		tx1, err := a.Checkout()
		require.NoError(t, err)

		require.NoError(t, a.AddToCart(4))
		tx2, err := a.Checkout()
		require.NoError(t, err)

		assert.Greater(t, tx2.ID, tx1.ID)
	})

	t.Run("transaction items are a copy", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.AddToCart(1))
		tx, err := a.Checkout()
		require.NoError(t, err)

		tx.Items[0].Qty = 99
		assert.Equal(t, int64(1), a.Transactions()[0].Items[0].Qty)
	})

	t.Run("log accessors never alias the log", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.AddToCart(1))
		_, err := a.Checkout()
		require.NoError(t, err)

		a.Transactions()[0].Items[0].Qty = 99
		assert.Equal(t, int64(1), a.Transactions()[0].Items[0].Qty)

		a.Report().Recent[0].Items[0].Qty = 99
		assert.Equal(t, int64(1), a.Transactions()[0].Items[0].Qty)

		snap := a.Snapshot()
		snap.Transactions[0].Items[0].Qty = 99
		assert.Equal(t, int64(1), a.Transactions()[0].Items[0].Qty)
	})
}
