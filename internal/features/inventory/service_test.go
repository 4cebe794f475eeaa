package inventory

import (
	"context"
	"testing"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	incrementedProductID int64
	incrementedQuantity  int64
	incrementErr         error

	stock   *Stock
	findErr error
}

func (f *fakeStore) incrementOne(_ context.Context, productID int64, quantity int64) error {
	f.incrementedProductID = productID
	f.incrementedQuantity = quantity
	return f.incrementErr
}

func (f *fakeStore) findByProductID(_ context.Context, productID int64) (*Stock, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	return f.stock, nil
}

func TestAddStock_forwardsProductAndQuantity(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.AddStock(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), store.incrementedProductID)
	assert.Equal(t, int64(10), store.incrementedQuantity)
}

func TestAddStock_missingTrackingRow(t *testing.T) {
	store := &fakeStore{incrementErr: servererrors.ErrStockNotFound}
	svc := NewService(store)

	err := svc.AddStock(context.Background(), 42, 10)
	assert.ErrorIs(t, err, servererrors.ErrStockNotFound)
}

func TestGetStock(t *testing.T) {
	store := &fakeStore{
		stock: &Stock{ProductID: 2, Quantity: 7},
	}
	svc := NewService(store)

	stock, err := svc.GetStock(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stock.ProductID)
	assert.Equal(t, int64(7), stock.Quantity)
}

func TestGetStock_missingTrackingRow(t *testing.T) {
	store := &fakeStore{findErr: servererrors.ErrStockNotFound}
	svc := NewService(store)

	_, err := svc.GetStock(context.Background(), 42)
	assert.ErrorIs(t, err, servererrors.ErrStockNotFound)
}
