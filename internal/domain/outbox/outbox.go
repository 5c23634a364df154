package outbox

import "context"

// Event is a named domain event.
type Event interface {
	EventName() string
}

// Handler reacts to a published event.
type Handler func(ctx context.Context, e Event) error

// Publisher delivers events to whoever subscribed to their name.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Subscriber registers a handler for an event name.
type Subscriber interface {
	Subscribe(eventName string, h Handler)
}
