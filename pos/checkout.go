package pos

import (
	"time"

	"taphoa/models"
)

// Checkout turns the cart into a transaction: totals are computed from
// the line snapshots (prices captured at add time), the record is
// appended to the log, stock is decremented per line, and the cart is
// cleared, all in one critical section, so the log and the stock can
// never disagree.
//
// A line whose product was deleted while it sat in the cart still sells
// at its snapshot price; only the stock decrement is skipped. Best
// effort beats refusing the whole sale.
func (a *App) Checkout() (models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.cart) == 0 {
		return models.Transaction{}, ErrCartEmpty
	}

	var total, profit int64
	items := make([]models.CartLine, len(a.cart))
	copy(items, a.cart)
	for _, l := range items {
		total += l.LineTotal()
		profit += l.LineProfit()
	}

	tx := models.Transaction{
		ID:     a.nextID(),
		Date:   a.now().Format(time.RFC3339),
		Items:  items,
		Total:  total,
		Profit: profit,
	}

	// The log keeps its own copy of the line items so the returned
	// record cannot alias (and later rewrite) the appended entry.
	logged := tx
	logged.Items = make([]models.CartLine, len(items))
	copy(logged.Items, items)
	a.transactions = append(a.transactions, logged)

	for _, l := range items {
		if p := a.findProduct(l.ID); p != nil {
			p.Stock -= l.Qty
		}
	}

	a.cart = nil
	a.persist()
	return tx, nil
}

// Transactions returns a deep copy of the full transaction log.
func (a *App) Transactions() []models.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneTransactions(a.transactions)
}
