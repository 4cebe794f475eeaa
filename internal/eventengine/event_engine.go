package eventengine

import (
	"fmt"
	"log"
	"sync"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
}

type eventEngine struct {
	*EventEngineConfig
	eventEngineCh chan *event.Event                // what the engine listens to for published events.
	events        map[event.EventName]*subscribers // registered events and who subscribed to each.
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil {
		log.Fatalln("'eventEngineConfig' can not be nil")
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil {
		log.Fatalln("either DoneCh or InternalSrvWG is nil")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 20),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	log.Println("event engine is listening...")

	for { // read until the e.DoneCh is signalled.
		select {
		case <-e.DoneCh:
			log.Println("event engine is shutting down")
			close(e.eventEngineCh)

			// drain what was published before the shutdown signal.
			for ev := range e.eventEngineCh {
				e.broadcast(ev)
			}

			e.shutdownSubscribersAddressCh()
			return

		case ev, isOpened := <-e.eventEngineCh:
			if !isOpened {
				log.Println("eventEngineCh is closed")
				return
			}

			e.broadcast(ev)
		}
	}
}

func (e *eventEngine) broadcast(ev *event.Event) {
	subs, exists := e.events[ev.Name]
	if !exists {
		log.Printf(
			"event %v not found. check your event handler\n",
			ev.Name,
		)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			log.Printf(
				"subscriber '%v's' addressCh is nil. check this event handler to make sure it has been initialized\n",
				subs.names[i],
			)
			continue
		}

		addressCh <- ev.Payload
	}
}

// RegisterEvents adds all events a publisher can publish to, to the engine.
//
// IMPORTANT: Register an event before you try to publish or subscribe to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			log.Println("event already exists:", eventName)
			continue
		}

		e.events[eventName] = &subscribers{}
	}

	log.Println("registering events:", eventNames)
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event '%v' not found. make sure the publishing service called 'RegisterEvents' with this event name first",
			toEventName,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(ev *event.Event) error {
	if _, exists := e.events[ev.Name]; !exists {
		return fmt.Errorf(
			"event %v not found. check the publishing service to make sure it called 'RegisterEvents()'",
			ev.Name,
		)
	}

	e.eventEngineCh <- ev

	return nil
}

func (e *eventEngine) shutdownSubscribersAddressCh() {
	log.Println("shutting subscriber addressChs down")

	// a subscriber may register the same addressCh under several event
	// names, so dedupe before closing.
	seen := make(map[chan<- any]struct{})
	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			if addressCh == nil {
				continue
			}

			if _, alreadyClosed := seen[addressCh]; alreadyClosed {
				continue
			}
			seen[addressCh] = struct{}{}

			close(addressCh)
		}
	}
}
