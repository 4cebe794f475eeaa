package inventory

import (
	"context"
	"testing"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/stretchr/testify/assert"
)

type fakeStockReader struct {
	gotProductID int64
	readCalls    int

	stock *Stock
	err   error
}

func (f *fakeStockReader) GetStock(_ context.Context, productID int64) (*Stock, error) {
	f.gotProductID = productID
	f.readCalls++

	if f.err != nil {
		return nil, f.err
	}

	return f.stock, nil
}

func TestProductCreatedEventHandler_readsTrackedRow(t *testing.T) {
	reader := &fakeStockReader{
		stock: &Stock{ProductID: 2, Quantity: 0},
	}

	he := &handlerEvents{
		HandlerEventsConfig: &HandlerEventsConfig{
			Inventory: reader,
		},
	}

	he.productCreatedEventHandler(&event.ProductCreatedEvent{
		ProductID: 2,
		Name:      "Rice",
	})

	assert.Equal(t, 1, reader.readCalls)
	assert.Equal(t, int64(2), reader.gotProductID)
}

func TestProductCreatedEventHandler_missingRowDoesNotPanic(t *testing.T) {
	reader := &fakeStockReader{err: servererrors.ErrStockNotFound}

	he := &handlerEvents{
		HandlerEventsConfig: &HandlerEventsConfig{
			Inventory: reader,
		},
	}

	he.productCreatedEventHandler(&event.ProductCreatedEvent{
		ProductID: 42,
		Name:      "Ghost",
	})

	assert.Equal(t, 1, reader.readCalls)
}
