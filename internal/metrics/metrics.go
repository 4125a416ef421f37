// Package metrics exposes Prometheus counters for the booking and
// notification flows.  The fire-and-forget email contract means delivery
// outcomes are only ever visible here and in logs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_crown",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by kind (table or room).",
		},
		[]string{"kind"},
	)

	bookingStatusChanged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_crown",
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status updates by kind and new status.",
		},
		[]string{"kind", "status"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_crown",
			Name:      "notification_total",
			Help:      "Count of notification attempts by provider and result.",
		},
		[]string{"provider", "result"},
	)
)

// Register registers all collectors (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingStatusChanged, notifications)
	})
}

func IncBookingCreated(kind string) {
	bookingCreated.WithLabelValues(kind).Inc()
}

func IncBookingStatusChanged(kind, status string) {
	bookingStatusChanged.WithLabelValues(kind, status).Inc()
}

func IncNotification(provider, result string) {
	notifications.WithLabelValues(provider, result).Inc()
}
