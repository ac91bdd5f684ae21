package triestore

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aglyzov/go-pds/internal/metrics"
)

// Metrics receives store events.
type Metrics interface {
	VersionPublished(op string)
}

type noopMetrics struct{}

func (noopMetrics) VersionPublished(string) {}

// PrometheusMetrics counts published versions per operation.
type PrometheusMetrics struct {
	published *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pds",
		Subsystem: "triestore",
		Name:      "versions_published_total",
		Help:      "number of trie versions published, by operation",
	}, []string{"op"})

	published, err := metrics.Register(reg, "versions counter", published)
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{published: published}, nil
}

// VersionPublished implements Metrics.
func (m *PrometheusMetrics) VersionPublished(op string) {
	m.published.WithLabelValues(op).Inc()
}
