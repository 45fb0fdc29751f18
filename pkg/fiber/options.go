package fiber

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records engine activity and host mutations in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracer sets the tracer used for work and commit spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithCommitHook registers fn to run after every commit with the new
// current root.
func WithCommitHook(fn func(root *Fiber)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.commitHooks = append(e.commitHooks, fn)
		}
	}
}

// WithErrorHandler sets the function that receives errors from passes run
// by scheduler callbacks. The default logs them at error level.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Engine) {
		e.onError = fn
	}
}
