package event

const (
	InvoiceConfirmedEventName EventName = "invoice.confirmed"
)

// InvoiceConfirmedEvent is published after a cart has been folded into a
// permanent invoice.
type InvoiceConfirmedEvent struct {
	InvoiceID  int64
	Cashier    string
	LineCount  int
	TotalPrice int64
}

func (e *InvoiceConfirmedEvent) GetEventName() EventName {
	return InvoiceConfirmedEventName
}
