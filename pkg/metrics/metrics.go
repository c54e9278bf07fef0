// Package metrics defines the Prometheus collectors for the plugin.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors. A single instance is created at
// startup and threaded through the components that record measurements.
type Metrics struct {
	// Bus / publisher
	PublishedTotal    *prometheus.CounterVec
	PublishRetryTotal *prometheus.CounterVec
	DeadLetterTotal   *prometheus.CounterVec
	DroppedTotal      *prometheus.CounterVec
	PublishQueueDepth prometheus.Gauge

	// Dispatch
	DispatchTotal      *prometheus.CounterVec
	DispatchDuration   *prometheus.HistogramVec
	DuplicateHitsTotal *prometheus.CounterVec

	// Domain
	LifecycleTransitionsTotal *prometheus.CounterVec
	FSMTransitionsTotal       *prometheus.CounterVec
	FSMRejectedTotal          *prometheus.CounterVec
	QualityDecayTotal         prometheus.Counter
}

// New registers all collectors with the given registerer and returns the
// Metrics handle. Pass prometheus.DefaultRegisterer in production and a
// fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PublishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_bus_published_total",
			Help: "Messages successfully appended to the bus, by topic.",
		}, []string{"topic"}),
		PublishRetryTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_bus_publish_retry_total",
			Help: "Publish attempts that failed and were retried, by topic.",
		}, []string{"topic"}),
		DeadLetterTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_bus_dead_letter_total",
			Help: "Messages routed to a dead-letter topic, by original topic and reason.",
		}, []string{"topic", "reason"}),
		DroppedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_bus_dropped_total",
			Help: "Messages dropped after the dead-letter append itself failed, by topic.",
		}, []string{"topic"}),
		PublishQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "omniintelligence_bus_publish_queue_depth",
			Help: "Current depth of the in-memory publish queue.",
		}),
		DispatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_dispatch_total",
			Help: "Handler invocations, by handler name and result (ok, retried, failed, skipped).",
		}, []string{"handler", "result"}),
		DispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "omniintelligence_dispatch_duration_seconds",
			Help:    "Handler invocation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		DuplicateHitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_idempotency_duplicate_hits_total",
			Help: "Deliveries skipped because the (event, handler) pair was already processed.",
		}, []string{"handler"}),
		LifecycleTransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_pattern_lifecycle_transitions_total",
			Help: "Pattern lifecycle transitions, by from and to status.",
		}, []string{"from", "to"}),
		FSMTransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_fsm_transitions_total",
			Help: "Applied state machine transitions, by machine kind.",
		}, []string{"fsm_kind"}),
		FSMRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "omniintelligence_fsm_rejected_total",
			Help: "Events rejected by a state machine because no transition was defined.",
		}, []string{"fsm_kind"}),
		QualityDecayTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "omniintelligence_pattern_quality_decay_total",
			Help: "Quality score decrements applied for confirmed violations.",
		}),
	}
}

// NewNop returns a Metrics handle backed by a throwaway registry.
// Useful for tests and components that do not need observability wired.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
