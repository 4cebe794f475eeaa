package inventory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_events.inventory"

type stockReader interface {
	GetStock(ctx context.Context, productID int64) (*Stock, error)
}

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.SubscribeRegisterPublisher
	Inventory     stockReader
	AddressChSize uint16
}

type handlerEvents struct {
	*HandlerEventsConfig
	addressCh chan any
}

func NewHandlerEvents(cfg *HandlerEventsConfig) *handlerEvents {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Inventory == nil {
		log.Fatalf(
			"either 'DoneCh', 'InternalSrvWG', 'EventEngine' or 'Inventory' is nil in '%s'",
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
		case *event.ProductCreatedEvent:
			h.productCreatedEventHandler(ne)

		case *event.ProductDeletedEvent:
			h.productDeletedEventHandler(ne)

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

func (h *handlerEvents) productCreatedEventHandler(newEvent *event.ProductCreatedEvent) {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		(5 * time.Second),
	)
	defer cancel()

	stock, err := h.Inventory.GetStock(ctx, newEvent.ProductID)
	if err != nil {
		log.Printf(
			"stock tracking row missing for new product '%s' (id %d): %v\n",
			newEvent.Name,
			newEvent.ProductID,
			err,
		)
		return
	}

	log.Printf(
		"stock tracking started for product '%s' (id %d) at quantity %d\n",
		newEvent.Name,
		newEvent.ProductID,
		stock.Quantity,
	)
}

func (h *handlerEvents) productDeletedEventHandler(newEvent *event.ProductDeletedEvent) {
	log.Printf(
		"stock tracking stopped for deleted product id %d\n",
		newEvent.ProductID,
	)
}

func (h *handlerEvents) addSubscriptions() {
	subscribeToEventNames := [2]event.EventName{
		event.ProductCreatedEventName,
		event.ProductDeletedEventName,
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
