package fiber

import (
	"context"
	"log/slog"
	"reflect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/sched"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

const tracerName = "vfiber"

// Stats counts engine activity since creation.
type Stats struct {
	Units     int // units of work performed
	Slices    int // WorkLoop calls that found work
	Yields    int // slices that ended with units remaining
	Commits   int // completed passes
	Discarded int // in-flight passes replaced by a newer one
}

// Engine reconciles one render root against a host.
type Engine struct {
	adapter host.Adapter
	sched   sched.IdleScheduler
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	onError func(error)

	commitHooks []func(root *Fiber)

	currentRoot *Fiber
	wipRoot     *Fiber
	nextUnit    *Fiber
	deletions   []*Fiber

	// scheduled is set while an idle callback is outstanding.
	scheduled bool
	// committing is set while commitRoot mutates the host.
	committing bool
	// rerender is set when a setter runs before the first commit or
	// during one.
	rerender bool

	stats Stats
}

// New creates an engine that mutates hosts through adapter and runs its
// work in idle callbacks from s. With a nil scheduler no callbacks are
// requested and work only advances through WorkLoop or Flush.
func New(adapter host.Adapter, s sched.IdleScheduler, opts ...Option) *Engine {
	e := &Engine{
		adapter: adapter,
		sched:   s,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics != nil {
		e.adapter = e.metrics.instrument(adapter)
	}
	if e.onError == nil {
		e.onError = func(err error) {
			e.logger.Error("render pass failed", "error", err)
		}
	}
	return e
}

// Render starts a pass that renders el into container. A nil el clears the
// container. Rendering into the container of the committed root diffs
// against it; any other container starts from scratch.
func (e *Engine) Render(el *vdom.Element, container host.Node) error {
	if container == nil {
		return errors.New(errors.CodeNoContainer)
	}

	var alternate *Fiber
	if e.currentRoot != nil && sameNode(e.currentRoot.hostNode, container) {
		alternate = e.currentRoot
	}

	children := []*vdom.Element{}
	if el != nil {
		children = append(children, el)
	}
	e.startPass(&Fiber{
		kind:      vdom.KindHost,
		hostNode:  container,
		props:     vdom.Props{vdom.ChildrenKey: children},
		alternate: alternate,
	})
	return nil
}

// Current returns the committed root fiber, or nil before the first commit.
func (e *Engine) Current() *Fiber { return e.currentRoot }

// Pending reports whether a pass is in flight.
func (e *Engine) Pending() bool { return e.wipRoot != nil }

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats { return e.stats }

// WorkLoop performs units of work until d reports less than
// sched.YieldThreshold remaining, then returns. When the last unit of the
// pass is done it commits. An adapter error abandons the pass.
func (e *Engine) WorkLoop(d sched.Deadline) error {
	if e.wipRoot == nil {
		return nil
	}
	e.stats.Slices++
	e.metrics.slice()

	_, span := e.tracer.Start(context.Background(), "vfiber.work")
	defer span.End()

	units := 0
	for e.nextUnit != nil {
		root := e.wipRoot
		next, err := e.performUnitOfWork(e.nextUnit)
		units++
		if err != nil {
			e.countUnits(units)
			e.abandon()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		// A setter called during the unit may have started a new pass.
		if e.wipRoot == root {
			e.nextUnit = next
		}
		if d.TimeRemaining() < sched.YieldThreshold {
			break
		}
	}
	e.countUnits(units)
	span.SetAttributes(
		attribute.Int("units", units),
		attribute.Bool("yielded", e.nextUnit != nil),
	)

	if e.nextUnit != nil {
		e.stats.Yields++
		e.metrics.yield()
		e.logger.Debug("render pass yielded", "units", units)
		return nil
	}
	return e.commitRoot()
}

// Flush runs pending work to completion, including passes started by
// commit.
func (e *Engine) Flush() error {
	for e.wipRoot != nil {
		if err := e.WorkLoop(sched.Unlimited{}); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) countUnits(n int) {
	e.stats.Units += n
	e.metrics.addUnits(n)
}

func (e *Engine) startPass(root *Fiber) {
	if e.wipRoot != nil {
		e.stats.Discarded++
		e.metrics.discard()
		e.logger.Debug("discarding in-flight render pass")
	}
	e.wipRoot = root
	e.nextUnit = root
	e.deletions = nil
	e.logger.Debug("render pass started", "initial", root.alternate == nil)
	e.requestWork()
}

// scheduleUpdate starts a pass that re-renders the committed tree.
func (e *Engine) scheduleUpdate() {
	if e.currentRoot == nil || e.committing {
		e.rerender = true
		return
	}
	e.startPass(&Fiber{
		kind:      vdom.KindHost,
		hostNode:  e.currentRoot.hostNode,
		props:     e.currentRoot.props,
		alternate: e.currentRoot,
	})
}

func (e *Engine) abandon() {
	e.wipRoot = nil
	e.nextUnit = nil
	e.deletions = nil
}

func (e *Engine) requestWork() {
	if e.scheduled || e.sched == nil {
		return
	}
	e.scheduled = true
	e.sched.RequestIdleCallback(e.idle)
}

func (e *Engine) idle(d sched.Deadline) {
	e.scheduled = false
	if err := e.WorkLoop(d); err != nil {
		e.onError(err)
	}
	if e.wipRoot != nil {
		e.requestWork()
	}
}

// sameNode compares host nodes without panicking on uncomparable types.
func sameNode(a, b host.Node) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta == nil {
		return true
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
