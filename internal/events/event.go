// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"flowledger_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Payments Domain Events
// =============================================================================

// PaymentStatusUpdated is published whenever a payment status record is
// written to the status store, whether by the webhook or by the expiry worker.
type PaymentStatusUpdated struct {
	BaseEvent
	OrderReference string `json:"orderReference"`
	Status         string `json:"status"`
	AmountCents    *int64 `json:"amountCents,omitempty"`
	Currency       string `json:"currency,omitempty"`
}

func (e PaymentStatusUpdated) EventName() string { return "payments.status_updated" }
