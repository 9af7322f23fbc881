package pos

import "taphoa/models"

// CartView is what the cart endpoints return: the lines plus the
// derived subtotal and item count.
type CartView struct {
	Lines     []models.CartLine `json:"lines"`
	Subtotal  int64             `json:"subtotal"`
	ItemCount int64             `json:"item_count"`
}

// AddToCart puts one unit of the product in the cart. A product already
// in the cart gets its quantity bumped, but never past the current
// stock. The line snapshots the product as it is right now.
func (a *App) AddToCart(productID int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.findProduct(productID)
	if p == nil {
		return ErrProductNotFound
	}
	if p.Stock <= 0 {
		return ErrOutOfStock
	}

	for i := range a.cart {
		if a.cart[i].ID == productID {
			if a.cart[i].Qty >= p.Stock {
				return ErrStockLimit
			}
			a.cart[i].Qty++
			return nil
		}
	}

	a.cart = append(a.cart, models.CartLine{Product: *p, Qty: 1})
	return nil
}

// UpdateQty adjusts a line by delta. Dropping to zero or below removes
// the line; exceeding the product's live stock (not the snapshot's) is
// rejected. A bad index is a caller bug, not a user condition.
func (a *App) UpdateQty(index int, delta int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.cart) {
		return ErrLineIndex
	}

	line := &a.cart[index]
	newQty := line.Qty + delta

	if newQty <= 0 {
		a.cart = append(a.cart[:index], a.cart[index+1:]...)
		return nil
	}

	// Increases are bounded by live stock. A deleted product has no
	// stock left to sell, so its line can only shrink.
	if newQty > line.Qty {
		p := a.findProduct(line.ID)
		if p == nil || newQty > p.Stock {
			return ErrStockLimit
		}
	}

	line.Qty = newQty
	return nil
}

// ClearCart empties the cart unconditionally.
func (a *App) ClearCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = nil
}

// Cart returns a copy of the current cart with subtotal and item count.
func (a *App) Cart() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartViewLocked()
}

func (a *App) cartViewLocked() CartView {
	view := CartView{Lines: make([]models.CartLine, len(a.cart))}
	copy(view.Lines, a.cart)
	for _, l := range a.cart {
		view.Subtotal += l.LineTotal()
		view.ItemCount += l.Qty
	}
	return view
}
