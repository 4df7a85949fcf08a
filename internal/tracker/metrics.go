package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Submissions *prometheus.CounterVec
	Latency     prometheus.Histogram
}

// NewMetrics registers tracker metrics with reg. A nil registerer creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mep_tracker_submissions_total",
			Help: "Submission tracking attempts by outcome",
		}, []string{"outcome"}),
		Latency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mep_tracker_webhook_latency_seconds",
			Help:    "Latency of calls to the tracking webhook",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) observe(outcome Outcome) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) observeLatency(seconds float64) {
	if m == nil {
		return
	}
	m.Latency.Observe(seconds)
}
