// Package events provides the in-process event bus the domain modules use to
// talk to each other without importing one another.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event. The name keys handler
// registration; the timestamp records when the event happened, not when a
// handler saw it.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the occurrence timestamp so event structs only declare
// their payload fields.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events. A handler registered for an event name receives
// every event published under that name.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to subscribed handlers.
type Bus interface {
	// Publish dispatches asynchronously; handler errors are logged and
	// never reach the publisher.
	Publish(ctx context.Context, event Event)

	// PublishSync runs every handler inline and returns their combined
	// errors. Used where the publisher must know delivery succeeded.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler under the name the event's EventName
	// returns.
	Subscribe(eventName string, handler Handler)
}
