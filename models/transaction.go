package models

// Transaction is an immutable record of a completed sale. ID is derived
// from the millisecond clock and strictly increasing, so sorting by ID
// descending gives most-recent-first. Items is a copy of the cart lines
// at checkout time.
type Transaction struct {
	ID     int64      `json:"id"`
	Date   string     `json:"date"`
	Items  []CartLine `json:"items"`
	Total  int64      `json:"total"`
	Profit int64      `json:"profit"`
}
