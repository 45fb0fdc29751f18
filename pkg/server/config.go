package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/sched"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address for ListenAndServe.
	Addr string

	// Root builds the element each new session renders.
	Root func() *vdom.Element

	// FrameBudget is the time each session's idle callbacks may spend.
	FrameBudget time.Duration

	// ReadTimeout closes a session that sends nothing for this long.
	// Zero disables it.
	ReadTimeout time.Duration

	// WriteTimeout bounds each batch write.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// MetricsPath is where metrics are served. Empty disables the route.
	MetricsPath string

	// Gatherer is served at MetricsPath. Defaults to
	// prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Registerer receives the server collectors. Nil disables them.
	Registerer prometheus.Registerer

	// EngineMetrics is shared by every session engine. Nil disables engine
	// metrics.
	EngineMetrics *fiber.Metrics

	// Namespace prefixes the server metric names.
	Namespace string

	// CheckOrigin validates the websocket Origin header. Defaults to
	// allowing every origin.
	CheckOrigin func(r *http.Request) bool

	// Logger is the server logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8080",
		FrameBudget:     sched.DefaultFrameBudget,
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MetricsPath:     "/metrics",
		Namespace:       "vfiber",
		CheckOrigin:     func(*http.Request) bool { return true },
	}
}

func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Addr == "" {
		out.Addr = d.Addr
	}
	if out.FrameBudget <= 0 {
		out.FrameBudget = d.FrameBudget
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.Namespace == "" {
		out.Namespace = d.Namespace
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = d.CheckOrigin
	}
	if out.Gatherer == nil {
		out.Gatherer = prometheus.DefaultGatherer
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Root == nil {
		out.Root = func() *vdom.Element { return nil }
	}
	return &out
}
