package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the person module.
// Tracks creation/deletion counts, command durations and event dispatch health.
type Metrics struct {
	PersonsCreated    prometheus.Counter
	PersonsDeleted    prometheus.Counter
	OperationDuration *prometheus.HistogramVec
	EventsDispatched  prometheus.Counter
	DispatchFailures  prometheus.Counter
}

// New creates a Metrics instance with all person module metrics registered.
func New() *Metrics {
	return &Metrics{
		PersonsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "connectsphere_persons_created_total",
			Help: "Total number of persons created",
		}),
		PersonsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "connectsphere_persons_deleted_total",
			Help: "Total number of persons soft-deleted",
		}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "connectsphere_person_operation_duration_seconds",
			Help:    "Duration of person service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation", "outcome"}),
		EventsDispatched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "connectsphere_person_events_dispatched_total",
			Help: "Total number of domain events handed to the dispatcher",
		}),
		DispatchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "connectsphere_person_event_dispatch_failures_total",
			Help: "Total number of domain event dispatch failures",
		}),
	}
}

// ObserveOperation records the duration and outcome of one service operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.OperationDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}
