package serve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments shared by the delivery
// handlers. Create one per process and pass it to every handler that
// should report; registering a second set of instruments on the same
// registry panics in promauto.
type Metrics struct {
	requests  *prometheus.CounterVec
	inFlight  prometheus.Gauge
	duration  prometheus.Histogram
	fragments prometheus.Counter
	bytes     prometheus.Counter
}

// NewMetrics registers the dirty_* instruments with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dirty",
			Name:      "requests_total",
			Help:      "Pages served by path and status",
		}, []string{"path", "status"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "dirty",
			Name:      "in_flight_requests",
			Help:      "Requests currently being streamed",
		}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dirty",
			Name:      "render_seconds",
			Help:      "Time from request start to the last fragment written",
			Buckets:   prometheus.DefBuckets,
		}),

		fragments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dirty",
			Name:      "fragments_total",
			Help:      "Markup fragments written to clients",
		}),

		bytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dirty",
			Name:      "bytes_total",
			Help:      "Body bytes written to clients",
		}),
	}
}
