package directory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the loaded snapshot and reload outcomes.
type Metrics struct {
	Countries       prometheus.Gauge
	Representatives prometheus.Gauge
	Reloads         *prometheus.CounterVec
}

// NewMetrics registers directory metrics with reg. A nil registerer creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Countries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mep_directory_countries",
			Help: "Number of countries in the loaded directory snapshot",
		}),
		Representatives: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mep_directory_representatives",
			Help: "Number of representatives in the loaded directory snapshot",
		}),
		Reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mep_directory_reloads_total",
			Help: "Directory reload attempts by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeSnapshot(dir Directory) {
	if m == nil {
		return
	}
	m.Countries.Set(float64(len(dir)))
	m.Representatives.Set(float64(dir.Size()))
}

func (m *Metrics) incrementReload(result string) {
	if m == nil {
		return
	}
	m.Reloads.WithLabelValues(result).Inc()
}
