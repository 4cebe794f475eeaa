package invoice

import "time"

type Invoice struct {
	InvoiceID   int64     `json:"invoice_id"`
	UserID      int64     `json:"user_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// InvoiceLine is an immutable snapshot of a product's attributes at
// confirmation time, so later catalog edits or deletes do not alter
// historical sales.
type InvoiceLine struct {
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Weight   float64 `json:"weight"`
	Unit     string  `json:"unit"`
	Quantity int64   `json:"quantity"`
}
