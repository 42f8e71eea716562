package lib

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// input paths, used as the "path" label
const (
	PathEditor   = "editor"
	PathBlocking = "blocking"
)

// Metrics counts acquisitions. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Acquisitions *prometheus.CounterVec
	Signals      *prometheus.CounterVec
	Downgrades   prometheus.Counter
}

// NewMetrics registers the input counters with reg; a nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Acquisitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inputdog",
			Name:      "acquisitions_total",
			Help:      "Inputs successfully read, by input path.",
		}, []string{"path"}),
		Signals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inputdog",
			Name:      "signals_total",
			Help:      "Reads ended by end-of-input or interrupt, by input path.",
		}, []string{"path"}),
		Downgrades: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "inputdog",
			Name:      "editor_downgrades_total",
			Help:      "Times the enhanced editor failed and was discarded.",
		}),
	}
}

func (m *Metrics) Acquired(path string) {
	if m == nil {
		return
	}
	m.Acquisitions.WithLabelValues(path).Inc()
}

func (m *Metrics) Signaled(path string) {
	if m == nil {
		return
	}
	m.Signals.WithLabelValues(path).Inc()
}

func (m *Metrics) Downgraded() {
	if m == nil {
		return
	}
	m.Downgrades.Inc()
}
