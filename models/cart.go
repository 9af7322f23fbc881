package models

// CartLine is one entry in the cart: a snapshot of the product taken at
// add time plus the chosen quantity. Price changes after the add do not
// touch existing lines. Lines are never persisted.
type CartLine struct {
	Product
	Qty int64 `json:"qty"`
}

// LineTotal is price times quantity for this line.
func (l CartLine) LineTotal() int64 {
	return l.Price * l.Qty
}

// LineProfit is (price - cost) times quantity for this line.
func (l CartLine) LineProfit() int64 {
	return (l.Price - l.Cost) * l.Qty
}
