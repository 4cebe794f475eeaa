package inventory

import (
	"context"
)

type storer interface {
	incrementOne(ctx context.Context, productID int64, quantity int64) error
	findByProductID(ctx context.Context, productID int64) (*Stock, error)
}

type service struct {
	store storer
}

func NewService(inventoryStore storer) *service {
	return &service{
		store: inventoryStore,
	}
}

// AddStock increments a product's tracked quantity.
func (s *service) AddStock(ctx context.Context, productID int64, quantity int64) error {
	return s.store.incrementOne(ctx, productID, quantity)
}

// GetStock returns the stock tracking row for a product.
func (s *service) GetStock(ctx context.Context, productID int64) (*Stock, error) {
	return s.store.findByProductID(ctx, productID)
}
