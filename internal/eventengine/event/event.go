package event

type SubscriberName string
type EventName string

type Event struct {
	Name    EventName
	Payload any
}

type Subscriber struct {
	Name      SubscriberName // identifies the subscriber in logs.
	AddressCh chan<- any     // channel the engine delivers payloads to.
}
