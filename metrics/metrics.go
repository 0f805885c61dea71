package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the booking flow, exposed on /metrics
var (
	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_confirmed_total",
		Help: "Total number of confirmed bookings",
	})

	DraftsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_drafts_saved_total",
		Help: "Total number of pending drafts saved at the login gate",
	})

	DraftsResumed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_drafts_resumed_total",
		Help: "Total number of pending drafts restored after login",
	})

	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_validation_failures_total",
		Help: "Total number of submits blocked by validation",
	})

	CatalogLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_catalog_load_failures_total",
		Help: "Total number of failed catalog loads",
	})

	ExportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booking_exports_generated_total",
		Help: "Total number of booking confirmations exported",
	})
)
