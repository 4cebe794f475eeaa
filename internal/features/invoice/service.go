package invoice

import (
	"context"
	"log"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

type storer interface {
	confirmOne(ctx context.Context, userID int64, confirmedAt time.Time) (*Invoice, []*InvoiceLine, error)
	findLinesInRange(ctx context.Context, from, toExclusive time.Time) ([]*InvoiceLine, error)
}

type service struct {
	store       storer
	eventEngine eventengine.Publisher
	now         func() time.Time
}

func NewService(store storer, eventEngine eventengine.Publisher) *service {
	return &service{
		store:       store,
		eventEngine: eventEngine,
		now:         time.Now,
	}
}

// confirmPurchase converts the user's open cart into a permanent invoice and
// announces the completed sale.
func (s *service) confirmPurchase(ctx context.Context, userID int64, cashier string) error {
	confirmed, lines, err := s.store.confirmOne(
		ctx,
		userID,
		s.now().UTC(),
	)
	if err != nil {
		return err
	}

	var totalPrice int64
	for _, line := range lines {
		totalPrice += line.Quantity * line.Price
	}

	err = s.eventEngine.Publish(
		&event.Event{
			Name: event.InvoiceConfirmedEventName,
			Payload: &event.InvoiceConfirmedEvent{
				InvoiceID:  confirmed.InvoiceID,
				Cashier:    cashier,
				LineCount:  len(lines),
				TotalPrice: totalPrice,
			},
		},
	)
	if err != nil {
		log.Println("failed to publish invoice confirmed event:", err)
	}

	return nil
}

// salesReport folds every invoice line confirmed within the inclusive date
// range into per-product totals and a grand total.
func (s *service) salesReport(ctx context.Context, from, to time.Time) (*ReportData, error) {
	lines, err := s.store.findLinesInRange(
		ctx,
		from,
		to.AddDate(0, 0, 1), // inclusive upper bound
	)
	if err != nil {
		return nil, err
	}

	accumulator := NewReportAccumulator()
	for _, line := range lines {
		accumulator.AddLine(line)
	}

	return &ReportData{
		Date: DateRange{
			From: from.Format(time.DateOnly),
			To:   to.Format(time.DateOnly),
		},
		TotalProfits: accumulator.TotalProfits(),
		Products:     accumulator.Products(),
	}, nil
}
