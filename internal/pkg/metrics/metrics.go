package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the booking engine. Registered on the default registry,
// exposed via /metrics.
var (
	BookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_bookings_total",
		Help: "Number of successfully committed reservations.",
	})

	CancellationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_cancellations_total",
		Help: "Number of committed cancellations, by initiator.",
	}, []string{"initiator"})

	SlotConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_slot_conflicts_total",
		Help: "Number of booking attempts rejected at commit time due to a slot conflict.",
	})

	PointsCreditedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_points_credited_total",
		Help: "Total points credited through charges and admin grants.",
	})
)
