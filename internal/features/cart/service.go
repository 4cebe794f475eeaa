package cart

import (
	"context"
	"log"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

type storer interface {
	addEntry(ctx context.Context, userID int64, productID int64) (*scanResult, error)
	findEntries(ctx context.Context, userID int64) ([]*CartProductDTO, error)
}

type service struct {
	store       storer
	eventEngine eventengine.Publisher
}

func NewService(store storer, eventEngine eventengine.Publisher) *service {
	return &service{
		store:       store,
		eventEngine: eventEngine,
	}
}

// scanProduct appends one scan to the user's open cart, taking one unit of
// stock with it. Taking the last unit announces the depletion.
func (s *service) scanProduct(ctx context.Context, userID int64, productID int64) error {
	result, err := s.store.addEntry(ctx, userID, productID)
	if err != nil {
		return err
	}

	if result.Remaining == 0 {
		err = s.eventEngine.Publish(
			&event.Event{
				Name: event.StockDepletedEventName,
				Payload: &event.StockDepletedEvent{
					ProductID: result.ProductID,
					Name:      result.ProductName,
				},
			},
		)
		if err != nil {
			log.Println("failed to publish stock depleted event:", err)
		}
	}

	return nil
}

// viewCart returns the open cart's entries in scan order.
func (s *service) viewCart(ctx context.Context, userID int64) ([]*CartProductDTO, error) {
	return s.store.findEntries(ctx, userID)
}
