package models

// Snapshot is the full persisted state: the catalog and the transaction
// log. The cart and the admin gate are session-local and never
// persisted.
type Snapshot struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
}
