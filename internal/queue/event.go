// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingEvent is published whenever a booking is created or changes status.
// It carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary store.
type BookingEvent struct {
	Kind       string  `json:"kind"`   // "table" or "room"
	Action     string  `json:"action"` // "created" or "status_changed"
	BookingID  string  `json:"booking_id"`
	UserID     string  `json:"user_id"`
	GuestName  string  `json:"guest_name"`
	Status     string  `json:"status"`
	Detail     string  `json:"detail"` // date/time for tables, stay range for rooms
	TotalPrice float64 `json:"total_price,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// Actions for BookingEvent.
const (
	ActionCreated       = "created"
	ActionStatusChanged = "status_changed"
)
