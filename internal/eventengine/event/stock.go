package event

const (
	StockDepletedEventName EventName = "stock.depleted"
)

// StockDepletedEvent is published when a cart scan takes a product's
// tracked quantity down to zero.
type StockDepletedEvent struct {
	ProductID int64
	Name      string
}

func (e *StockDepletedEvent) GetEventName() EventName {
	return StockDepletedEventName
}
