package lruk

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aglyzov/go-pds/internal/metrics"
)

// Metrics receives replacer events.
type Metrics interface {
	AccessRecorded()
	Evicted()
	EvictableFrames(n int)
}

type noopMetrics struct{}

func (noopMetrics) AccessRecorded()     {}
func (noopMetrics) Evicted()            {}
func (noopMetrics) EvictableFrames(int) {}

// PrometheusMetrics exports replacer events as prometheus collectors.
type PrometheusMetrics struct {
	accesses  prometheus.Counter
	evictions prometheus.Counter
	evictable prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		accesses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pds",
			Subsystem: "lruk",
			Name:      "accesses_total",
			Help:      "number of recorded frame accesses",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pds",
			Subsystem: "lruk",
			Name:      "evictions_total",
			Help:      "number of evicted frames",
		}),
		evictable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pds",
			Subsystem: "lruk",
			Name:      "evictable_frames",
			Help:      "number of frames currently evictable",
		}),
	}

	var err error

	if m.accesses, err = metrics.Register(reg, "accesses counter", m.accesses); err != nil {
		return nil, err
	}
	if m.evictions, err = metrics.Register(reg, "evictions counter", m.evictions); err != nil {
		return nil, err
	}
	if m.evictable, err = metrics.Register(reg, "evictable gauge", m.evictable); err != nil {
		return nil, err
	}

	return m, nil
}

// AccessRecorded implements Metrics.
func (m *PrometheusMetrics) AccessRecorded() {
	m.accesses.Inc()
}

// Evicted implements Metrics.
func (m *PrometheusMetrics) Evicted() {
	m.evictions.Inc()
}

// EvictableFrames implements Metrics.
func (m *PrometheusMetrics) EvictableFrames(n int) {
	m.evictable.Set(float64(n))
}
