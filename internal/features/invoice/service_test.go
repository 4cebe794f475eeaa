package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	confirmUserID      int64
	confirmConfirmedAt time.Time
	confirmInvoice     *Invoice
	confirmLines       []*InvoiceLine
	confirmErr         error

	linesFrom        time.Time
	linesToExclusive time.Time
	lines            []*InvoiceLine
	linesErr         error
}

func (f *fakeStore) confirmOne(_ context.Context, userID int64, confirmedAt time.Time) (*Invoice, []*InvoiceLine, error) {
	f.confirmUserID = userID
	f.confirmConfirmedAt = confirmedAt

	if f.confirmErr != nil {
		return nil, nil, f.confirmErr
	}

	return f.confirmInvoice, f.confirmLines, nil
}

func (f *fakeStore) findLinesInRange(_ context.Context, from, toExclusive time.Time) ([]*InvoiceLine, error) {
	f.linesFrom = from
	f.linesToExclusive = toExclusive

	if f.linesErr != nil {
		return nil, f.linesErr
	}

	return f.lines, nil
}

type fakePublisher struct {
	published []*event.Event
}

func (f *fakePublisher) Publish(ev *event.Event) error {
	f.published = append(f.published, ev)
	return nil
}

func TestConfirmPurchase_publishesSaleSummary(t *testing.T) {
	store := &fakeStore{
		confirmInvoice: &Invoice{InvoiceID: 7, UserID: 3},
		confirmLines: []*InvoiceLine{
			{Name: "Rice", Price: 21500, Quantity: 3},
			{Name: "Salt", Price: 3000, Quantity: 2},
		},
	}
	publisher := &fakePublisher{}

	svc := NewService(store, publisher)

	err := svc.confirmPurchase(context.Background(), 3, "cashier1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), store.confirmUserID)
	assert.Equal(t, time.UTC, store.confirmConfirmedAt.Location())

	require.Len(t, publisher.published, 1)
	require.Equal(t, event.InvoiceConfirmedEventName, publisher.published[0].Name)

	payload, ok := publisher.published[0].Payload.(*event.InvoiceConfirmedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(7), payload.InvoiceID)
	assert.Equal(t, "cashier1", payload.Cashier)
	assert.Equal(t, 2, payload.LineCount)
	assert.Equal(t, int64(3*21500+2*3000), payload.TotalPrice)
}

func TestConfirmPurchase_noOpenCart(t *testing.T) {
	store := &fakeStore{
		confirmErr: servererrors.ErrNoOpenCart,
	}
	publisher := &fakePublisher{}

	svc := NewService(store, publisher)

	err := svc.confirmPurchase(context.Background(), 3, "cashier1")
	assert.ErrorIs(t, err, servererrors.ErrNoOpenCart)
	assert.Empty(t, publisher.published)
}

func TestSalesReport_foldsLinesOverInclusiveRange(t *testing.T) {
	store := &fakeStore{
		lines: []*InvoiceLine{
			{Name: "Rice", Price: 21500, Quantity: 3},
			{Name: "Rice", Price: 21500, Quantity: 1},
			{Name: "Salt", Price: 3000, Quantity: 2},
		},
	}

	svc := NewService(store, &fakePublisher{})

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	report, err := svc.salesReport(context.Background(), from, to)
	require.NoError(t, err)

	// the upper bound is pushed one day forward so the "to" date itself is
	// included.
	assert.Equal(t, from, store.linesFrom)
	assert.Equal(t, to.AddDate(0, 0, 1), store.linesToExclusive)

	assert.Equal(t, "2024-05-01", report.Date.From)
	assert.Equal(t, "2024-05-31", report.Date.To)
	assert.Equal(t, int64(4*21500+2*3000), report.TotalProfits)

	require.Len(t, report.Products, 2)
	assert.Equal(t, int64(4), report.Products["Rice"].Quantity)
	assert.Equal(t, int64(4*21500), report.Products["Rice"].TotalPrice)
	assert.Equal(t, int64(2), report.Products["Salt"].Quantity)
	assert.Equal(t, int64(6000), report.Products["Salt"].TotalPrice)
}

func TestSalesReport_noInvoicesInRange(t *testing.T) {
	store := &fakeStore{
		linesErr: servererrors.ErrNoInvoicesInRange,
	}

	svc := NewService(store, &fakePublisher{})

	_, err := svc.salesReport(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, servererrors.ErrNoInvoicesInRange)
}

func TestConfirmPurchase_emptyCartStillConfirms(t *testing.T) {
	store := &fakeStore{
		confirmInvoice: &Invoice{InvoiceID: 9, UserID: 4},
		confirmLines:   []*InvoiceLine{},
	}
	publisher := &fakePublisher{}

	svc := NewService(store, publisher)

	err := svc.confirmPurchase(context.Background(), 4, "cashier2")
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	payload := publisher.published[0].Payload.(*event.InvoiceConfirmedEvent)
	assert.Equal(t, 0, payload.LineCount)
	assert.Equal(t, int64(0), payload.TotalPrice)
}
