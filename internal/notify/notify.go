// Package notify sends transactional email through the hotel's provider.
// The provider is chosen once at startup: with credentials present the
// gateway talks to EmailJS, without them it degrades to a pure log statement
// so every environment can run the full booking flow.
package notify

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/metrics"
)

// Template identifies which notification is being sent.  The provider maps
// all of them onto a single configured EmailJS template; the kind mostly
// drives the parameter set and shows up in logs and metrics.
type Template string

const (
	TemplateTableBooking Template = "table-booking-status"
	TemplateRoomBooking  Template = "room-booking-status"
	TemplateTestProbe    Template = "test-probe"
)

// Message is one outbound notification.
type Message struct {
	To       string
	Subject  string
	Template Template
	Params   map[string]any
}

// Provider delivers a single message.  Kind labels the variant for logs and
// metrics ("emailjs" or "log").
type Provider interface {
	Send(ctx context.Context, msg Message) error
	Kind() string
}

// Gateway is the single send-notification interface the services depend on.
type Gateway struct {
	provider Provider
}

func NewGateway(p Provider) *Gateway { return &Gateway{provider: p} }

// Notify delivers msg through the configured provider.  A provider error is
// returned to the immediate caller; callers that must not fail (the booking
// flow) catch and log it.
func (g *Gateway) Notify(ctx context.Context, msg Message) error {
	if err := g.provider.Send(ctx, msg); err != nil {
		metrics.IncNotification(g.provider.Kind(), "failed")
		return err
	}
	metrics.IncNotification(g.provider.Kind(), "sent")
	return nil
}

// ProbeResult reports the outcome of a connectivity test in a form the admin
// console renders directly.
type ProbeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TestProbe sends a fixed-content test message to the given address (or the
// default test recipient when empty) and reports the outcome.  It is a
// diagnostic for the email setup, not part of the booking flow.
func (g *Gateway) TestProbe(ctx context.Context, to string) ProbeResult {
	if to == "" {
		to = "test@example.com"
	}
	msg := Message{
		To:       to,
		Subject:  "EmailJS Test - " + HotelName,
		Template: TemplateTestProbe,
		Params: map[string]any{
			"guest_name":    "Test User",
			"booking_id":    "TEST-123",
			"hotel_name":    HotelName,
			"contact_email": "test@himalayancrown.com",
			"contact_phone": "+91 123 456 7890",
		},
	}
	if err := g.Notify(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("email test probe failed")
		return ProbeResult{Success: false, Message: "Email test failed: " + err.Error()}
	}
	return ProbeResult{Success: true, Message: "Test email sent to " + to + ". Check your inbox and spam folder!"}
}
