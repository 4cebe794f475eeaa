package invoice

import (
	"log"
	"sync"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_events.invoice"

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.SubscribeRegisterPublisher
	AddressChSize uint16
}

// handlerEvents is the sales audit trail: it listens for confirmed invoices
// and logs each completed sale.
type handlerEvents struct {
	*HandlerEventsConfig
	addressCh chan any
}

func NewHandlerEvents(cfg *HandlerEventsConfig) *handlerEvents {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil {
		log.Fatalf(
			"either 'DoneCh', 'InternalSrvWG' or 'EventEngine' is nil in '%s'",
			subscriberName,
		)
	}

	he := &handlerEvents{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.addSubscriptions()

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvents) listen() {
	defer h.InternalSrvWG.Done()

	log.Printf("%s is listening...\n", subscriberName)

	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.InvoiceConfirmedEvent:
			h.invoiceConfirmedEventHandler(ne)

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

func (h *handlerEvents) invoiceConfirmedEventHandler(newEvent *event.InvoiceConfirmedEvent) {
	log.Printf(
		"invoice %d confirmed by '%s': %d line(s), total %d\n",
		newEvent.InvoiceID,
		newEvent.Cashier,
		newEvent.LineCount,
		newEvent.TotalPrice,
	)
}

func (h *handlerEvents) addSubscriptions() {
	subscribeToEventNames := [1]event.EventName{
		event.InvoiceConfirmedEventName,
	}

	var err error
	for _, v := range subscribeToEventNames {
		err = h.EventEngine.Subscribe(
			v,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			log.Fatalf(
				"error in subscriber '%s'\nerror subscribing to events: %v\n",
				subscriberName,
				err,
			)
		}
	}
}
