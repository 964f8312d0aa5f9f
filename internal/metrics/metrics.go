// Package metrics exposes Prometheus counters for share generation.
package metrics

import (
	"time"

	"pulse-share/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// generationsTotal counts completed generations by the path that produced them.
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "share_generations_total",
			Help: "Total number of share generations by source",
		},
		[]string{"content_type", "source"},
	)

	// remoteFailuresTotal counts remote attempts that fell back to local generation.
	remoteFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "share_remote_failures_total",
			Help: "Total number of remote generation failures by reason",
		},
		[]string{"reason"},
	)

	remoteDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "share_remote_duration_seconds",
			Help:    "Remote generation call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// circuitBreakerState tracks the remote breaker: 0=closed, 1=half-open, 2=open.
	circuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "share_remote_circuit_breaker_state",
			Help: "Current state of the remote generator circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

func init() {
	prometheus.MustRegister(generationsTotal, remoteFailuresTotal, remoteDuration, circuitBreakerState)
}

// RecordGeneration counts one generation served from source.
func RecordGeneration(ct domain.ContentType, source domain.Source) {
	label := string(ct)
	if !ct.Known() {
		label = "unknown"
	}
	generationsTotal.WithLabelValues(label, string(source)).Inc()
}

// RecordRemoteFailure counts one remote failure.
func RecordRemoteFailure(reason string) {
	remoteFailuresTotal.WithLabelValues(reason).Inc()
}

// ObserveRemoteDuration records how long a remote call took.
func ObserveRemoteDuration(d time.Duration) {
	remoteDuration.Observe(d.Seconds())
}

// RecordCircuitBreakerState updates the breaker gauge.
func RecordCircuitBreakerState(name string, state int) {
	circuitBreakerState.WithLabelValues(name).Set(float64(state))
}
