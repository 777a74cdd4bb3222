package validation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors of the orchestrator.
type Metrics struct {
	passes        *prometheus.CounterVec
	nonConforming *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dspvalidate",
			Name:      "validation_passes_total",
			Help:      "SHACL validation passes run, by pass.",
		}, []string{"pass"}),
		nonConforming: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dspvalidate",
			Name:      "validation_nonconforming_total",
			Help:      "SHACL validation passes whose report did not conform, by pass.",
		}, []string{"pass"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dspvalidate",
			Name:      "validation_failures_total",
			Help:      "SHACL validation passes that failed with an error, by pass.",
		}, []string{"pass"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dspvalidate",
			Name:      "validation_pass_duration_seconds",
			Help:      "Duration of SHACL validation passes, by pass.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"pass"}),
	}
	if reg != nil {
		reg.MustRegister(m.passes, m.nonConforming, m.failures, m.duration)
	}
	return m
}
