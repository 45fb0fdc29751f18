package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are the session-level collectors. A nil *metrics records
// nothing.
type metrics struct {
	active  prometheus.Gauge
	total   prometheus.Counter
	events  *prometheus.CounterVec
	batches prometheus.Counter
	ops     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)
	return &metrics{
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "sessions_active",
			Help:      "Open websocket sessions.",
		}),
		total: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "sessions_total",
			Help:      "Websocket sessions opened.",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "client_events_total",
			Help:      "Client messages received, by result.",
		}, []string{"result"}),
		batches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "batches_sent_total",
			Help:      "Op batches written to clients.",
		}),
		ops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "ops_sent_total",
			Help:      "Host ops written to clients.",
		}),
	}
}

func (m *metrics) sessionOpened() {
	if m != nil {
		m.active.Inc()
		m.total.Inc()
	}
}

func (m *metrics) sessionClosed() {
	if m != nil {
		m.active.Dec()
	}
}

func (m *metrics) event(result string) {
	if m != nil {
		m.events.WithLabelValues(result).Inc()
	}
}

func (m *metrics) batch(ops int) {
	if m != nil {
		m.batches.Inc()
		m.ops.Add(float64(ops))
	}
}
