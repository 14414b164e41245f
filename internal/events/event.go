package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	BookingCreated    = "booking.created"
	BookingCheckedIn  = "booking.checked_in"
	BookingCheckedOut = "booking.checked_out"
	InvoiceCreated    = "invoice.created"
	PaymentAdded      = "payment.added"
	GuestCreated      = "guest.created"
)

// Event is the JSON envelope published after a successful write.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       map[string]any `json:"data"`
}

func New(eventType, requestID string, data map[string]any) Event {
	if data == nil {
		data = map[string]any{}
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		RequestID:  requestID,
		Data:       data,
	}
}

// Publisher delivers events to subscribers outside this process.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
