package fiber

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vfiber/pkg/host"
)

// MetricsConfig configures the engine metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string

	// Subsystem is placed between namespace and name.
	Subsystem string

	// Buckets are the commit duration histogram buckets.
	Buckets []float64

	// Registry receives the collectors. Defaults to
	// prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = ns }
}

// WithSubsystem sets the metric subsystem.
func WithSubsystem(sub string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = sub }
}

// WithBuckets sets the commit duration buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the registerer the collectors are registered with.
func WithRegistry(reg prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = reg }
}

// Metrics holds the engine collectors. One Metrics may be shared by many
// engines.
type Metrics struct {
	units          prometheus.Counter
	slices         prometheus.Counter
	yields         prometheus.Counter
	commits        prometheus.Counter
	discarded      prometheus.Counter
	hostOps        *prometheus.CounterVec
	commitDuration prometheus.Histogram
}

// NewMetrics creates and registers the engine collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "vfiber",
		Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Metrics{
		units:     counter("units_total", "Units of work performed."),
		slices:    counter("slices_total", "Work loop slices that found work."),
		yields:    counter("yields_total", "Slices that yielded with work remaining."),
		commits:   counter("commits_total", "Render passes committed."),
		discarded: counter("discarded_passes_total", "In-flight render passes replaced before commit."),
		hostOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "host_ops_total",
			Help:      "Host mutations applied, by operation.",
		}, []string{"op"}),
		commitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "commit_duration_seconds",
			Help:      "Time spent in the commit phase.",
			Buckets:   cfg.Buckets,
		}),
	}
}

func (m *Metrics) addUnits(n int) {
	if m != nil && n > 0 {
		m.units.Add(float64(n))
	}
}

func (m *Metrics) slice() {
	if m != nil {
		m.slices.Inc()
	}
}

func (m *Metrics) yield() {
	if m != nil {
		m.yields.Inc()
	}
}

func (m *Metrics) discard() {
	if m != nil {
		m.discarded.Inc()
	}
}

func (m *Metrics) commit(d time.Duration) {
	if m != nil {
		m.commits.Inc()
		m.commitDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) instrument(a host.Adapter) host.Adapter {
	return &instrumentedAdapter{next: a, ops: m.hostOps}
}

// instrumentedAdapter counts successful host mutations.
type instrumentedAdapter struct {
	next host.Adapter
	ops  *prometheus.CounterVec
}

func (a *instrumentedAdapter) count(op string, err error) error {
	if err == nil {
		a.ops.WithLabelValues(op).Inc()
	}
	return err
}

func (a *instrumentedAdapter) CreateElement(tag string) (host.Node, error) {
	n, err := a.next.CreateElement(tag)
	return n, a.count("create_element", err)
}

func (a *instrumentedAdapter) CreateText(text string) (host.Node, error) {
	n, err := a.next.CreateText(text)
	return n, a.count("create_text", err)
}

func (a *instrumentedAdapter) SetProperty(node host.Node, name string, value any) error {
	return a.count("set_property", a.next.SetProperty(node, name, value))
}

func (a *instrumentedAdapter) RemoveProperty(node host.Node, name string) error {
	return a.count("remove_property", a.next.RemoveProperty(node, name))
}

func (a *instrumentedAdapter) AddListener(node host.Node, event string, handler any) error {
	return a.count("add_listener", a.next.AddListener(node, event, handler))
}

func (a *instrumentedAdapter) RemoveListener(node host.Node, event string, handler any) error {
	return a.count("remove_listener", a.next.RemoveListener(node, event, handler))
}

func (a *instrumentedAdapter) AppendChild(parent, child host.Node) error {
	return a.count("append_child", a.next.AppendChild(parent, child))
}

func (a *instrumentedAdapter) InsertBefore(parent, child, before host.Node) error {
	return a.count("insert_before", a.next.InsertBefore(parent, child, before))
}

func (a *instrumentedAdapter) RemoveChild(parent, child host.Node) error {
	return a.count("remove_child", a.next.RemoveChild(parent, child))
}
