package loader

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the loader collectors
type Metrics struct {
	loads         *prometheus.CounterVec
	tokensLoaded  prometheus.Counter
	tokenFailures prometheus.Counter
	loadDuration  prometheus.Histogram
}

// NewMetrics creates the loader collectors and registers them when reg is not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greeting_cards",
			Subsystem: "loader",
			Name:      "loads_total",
			Help:      "Collection loads by result.",
		}, []string{"result"}),
		tokensLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "greeting_cards",
			Subsystem: "loader",
			Name:      "tokens_loaded_total",
			Help:      "Tokens assembled into a loaded window.",
		}),
		tokenFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "greeting_cards",
			Subsystem: "loader",
			Name:      "token_failures_total",
			Help:      "Tokens dropped from a window because a read failed or metadata was absent.",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "greeting_cards",
			Subsystem: "loader",
			Name:      "load_duration_seconds",
			Help:      "Duration of collection loads.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(m.loads, m.tokensLoaded, m.tokenFailures, m.loadDuration)
	}

	return m
}

func (m *Metrics) observeLoad(result string, loaded, failed int, seconds float64) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(result).Inc()
	m.tokensLoaded.Add(float64(loaded))
	m.tokenFailures.Add(float64(failed))
	m.loadDuration.Observe(seconds)
}
