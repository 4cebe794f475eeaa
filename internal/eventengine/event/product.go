package event

const (
	ProductCreatedEventName EventName = "product.created"
	ProductDeletedEventName EventName = "product.deleted"
)

// ProductCreatedEvent is published after a product and its stock tracking
// row have been committed.
type ProductCreatedEvent struct {
	ProductID int64
	Name      string
	Price     int64
	Unit      string
}

func (e *ProductCreatedEvent) GetEventName() EventName {
	return ProductCreatedEventName
}

type ProductDeletedEvent struct {
	ProductID int64
}

func (e *ProductDeletedEvent) GetEventName() EventName {
	return ProductDeletedEventName
}
