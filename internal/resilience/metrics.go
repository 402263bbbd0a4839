package resilience

import "github.com/prometheus/client_golang/prometheus"

// Breaker telemetry is keyed by target, the logical name of the guarded
// outbound dependency (for this service, the resource API).
var (
	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "outbound_breaker_state",
			Help: "Breaker state per outbound dependency: 0=closed, 1=open, 2=half-open.",
		},
		[]string{"target"},
	)
	BreakerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_breaker_transitions_total",
			Help: "Breaker state transitions per outbound dependency.",
		},
		[]string{"target", "from", "to"},
	)
	BreakerOpenedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_breaker_opened_total",
			Help: "Times the breaker opened against an outbound dependency.",
		},
		[]string{"target"},
	)
)

func init() {
	prometheus.MustRegister(BreakerState, BreakerTransitions, BreakerOpenedTotal)
}
