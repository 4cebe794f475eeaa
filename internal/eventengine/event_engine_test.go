package eventengine

import (
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
)

func Test_eventEngine(t *testing.T) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var err error
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers, 20),
		eventEngineCh: make(chan *event.Event, 1),
	}

	testEvent := event.Event{
		Name: "test.event.engine.event.name",
	}
	engine.RegisterEvents(testEvent.Name)

	// register a subscriber1 for an event.
	subscriberAddressCh1 := make(chan any, 2)
	err = engine.Subscribe(
		testEvent.Name,
		&event.Subscriber{
			Name:      "test_subscriber_name.1",
			AddressCh: subscriberAddressCh1,
		},
	)
	if err != nil {
		close(subscriberAddressCh1)
		t.Error(err)
		return
	}

	// register a subscriber2 for an event.
	subscriberAddressCh2 := make(chan any, 2)
	err = engine.Subscribe(
		testEvent.Name,
		&event.Subscriber{
			Name:      "test_subscriber_name.2",
			AddressCh: subscriberAddressCh2,
		},
	)
	if err != nil {
		close(subscriberAddressCh2)
		t.Error(err)
		return
	}

	internalSrvWG.Add(1)
	go engine.listen()

	const wantEvents = 5

	// event handler1
	received1 := 0
	internalSrvWG.Add(1)
	go func() {
		defer internalSrvWG.Done()
		for range subscriberAddressCh1 {
			received1++
		}
		log.Println("done reading from subscriber 1 events")
	}()

	// event handler2
	received2 := 0
	internalSrvWG.Add(1)
	go func() {
		defer internalSrvWG.Done()
		for range subscriberAddressCh2 {
			received2++
		}
		log.Println("done reading from subscriber 2 events")
	}()

	// event publisher || main routine
	for i := 0; i < wantEvents; i++ {
		err = engine.Publish(
			&event.Event{
				Name: testEvent.Name,
				Payload: fmt.Sprintf(
					"test payload: %d",
					i+1,
				),
			},
		)
		if err != nil {
			t.Error(err)
		}
	}
	log.Println("done writing events")

	close(doneCh)
	internalSrvWG.Wait()

	if received1 != wantEvents {
		t.Errorf("subscriber 1 received %d events, want %d", received1, wantEvents)
	}
	if received2 != wantEvents {
		t.Errorf("subscriber 2 received %d events, want %d", received2, wantEvents)
	}
}

// A subscriber listening on one channel for several event names must not
// make shutdown close that channel more than once.
func Test_eventEngine_sharedAddressChShutdown(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers, 2),
		eventEngineCh: make(chan *event.Event, 1),
	}

	eventNames := []event.EventName{
		"test.shared.first",
		"test.shared.second",
	}
	engine.RegisterEvents(eventNames...)

	sharedAddressCh := make(chan any, 2)
	for _, name := range eventNames {
		err := engine.Subscribe(
			name,
			&event.Subscriber{
				Name:      "test_subscriber_shared",
				AddressCh: sharedAddressCh,
			},
		)
		if err != nil {
			t.Fatal(err)
		}
	}

	internalSrvWG.Add(1)
	go engine.listen()

	received := 0
	internalSrvWG.Add(1)
	go func() {
		defer internalSrvWG.Done()
		for range sharedAddressCh {
			received++
		}
	}()

	for _, name := range eventNames {
		err := engine.Publish(
			&event.Event{
				Name:    name,
				Payload: "test payload",
			},
		)
		if err != nil {
			t.Error(err)
		}
	}

	close(doneCh)
	internalSrvWG.Wait() // panics here without the close dedupe

	if received != len(eventNames) {
		t.Errorf("shared subscriber received %d events, want %d", received, len(eventNames))
	}
}

func Test_eventEngine_unknownEvent(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers, 1),
		eventEngineCh: make(chan *event.Event, 1),
	}

	err := engine.Publish(
		&event.Event{
			Name: "never.registered",
		},
	)
	if err == nil {
		t.Error("expected an error publishing an unregistered event")
	}

	err = engine.Subscribe(
		"never.registered",
		&event.Subscriber{
			Name:      "test_subscriber",
			AddressCh: make(chan any, 1),
		},
	)
	if err == nil {
		t.Error("expected an error subscribing to an unregistered event")
	}
}
