package obs

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// TrolleyPricingTotal counts trolley pricing requests by backend and outcome.
	TrolleyPricingTotal *prometheus.CounterVec
	// SortRequestsTotal counts product sort requests by option and outcome.
	SortRequestsTotal *prometheus.CounterVec
	// ResourceRequestsTotal counts outbound resource API calls by operation and outcome.
	ResourceRequestsTotal *prometheus.CounterVec
	// ResourceRequestLatency records resource API call latency in milliseconds.
	ResourceRequestLatency *prometheus.HistogramVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		TrolleyPricingTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trolley_pricing_total",
			Help:      "Count of trolley pricing requests by backend and result.",
		}, []string{"backend", "result"})
		SortRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_requests_total",
			Help:      "Count of product sort requests by option and result.",
		}, []string{"option", "result"})
		ResourceRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resource_requests_total",
			Help:      "Count of outbound resource API requests by operation and result.",
		}, []string{"operation", "result"})
		ResourceRequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resource_request_duration_ms",
			Help:      "Latency of outbound resource API requests in milliseconds.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"operation"})

		mustRegisterCollector(reg, TrolleyPricingTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				TrolleyPricingTotal = v
			}
		})
		mustRegisterCollector(reg, SortRequestsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SortRequestsTotal = v
			}
		})
		mustRegisterCollector(reg, ResourceRequestsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ResourceRequestsTotal = v
			}
		})
		mustRegisterCollector(reg, ResourceRequestLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				ResourceRequestLatency = v
			}
		})
	})
}

// RecordTrolleyPricing increments the pricing counter when metrics are registered.
func RecordTrolleyPricing(backend, result string) {
	if TrolleyPricingTotal == nil {
		return
	}
	TrolleyPricingTotal.WithLabelValues(backend, result).Inc()
}

// RecordSortRequest increments the sort counter when metrics are registered.
func RecordSortRequest(option, result string) {
	if SortRequestsTotal == nil {
		return
	}
	SortRequestsTotal.WithLabelValues(option, result).Inc()
}

// RecordResourceRequest tracks the outcome and latency of an outbound resource call.
func RecordResourceRequest(operation, result string, elapsed time.Duration) {
	if ResourceRequestsTotal != nil {
		ResourceRequestsTotal.WithLabelValues(operation, result).Inc()
	}
	if ResourceRequestLatency != nil {
		ResourceRequestLatency.WithLabelValues(operation).Observe(DurationMillis(elapsed))
	}
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
