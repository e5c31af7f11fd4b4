package metrics

import (
	"context"
	"net/http"

	"tender_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the tender workflow.
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	events       *prometheus.CounterVec
	overpayments prometheus.Counter
}

var _ interfaces.IWorkflowMetrics = (*Metrics)(nil)

// New registers the collectors on a dedicated registry, so tests can build
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tender_workflow_operations_total",
			Help: "Workflow operations by action and outcome (success or error class)",
		}, []string{"action", "outcome"}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tender_workflow_events_total",
			Help: "Committed workflow events by type",
		}, []string{"type"}),
		overpayments: f.NewCounter(prometheus.CounterOpts{
			Name: "tender_payment_overpayments_total",
			Help: "Payments that pushed a work's gross total above its estimated cost",
		}),
	}
}

func (m *Metrics) ObserveOutcome(action, outcome string) {
	m.operations.WithLabelValues(action, outcome).Inc()
}

// RecordEvent is an event bus subscriber.
func (m *Metrics) RecordEvent(_ context.Context, e interfaces.Event) error {
	m.events.WithLabelValues(string(e.Type)).Inc()
	if e.Type == interfaces.EventOverpaymentDetected {
		m.overpayments.Inc()
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
