package sched

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// DefaultFrameBudget is the idle slice handed to callbacks when none is
// configured.
const DefaultFrameBudget = 8 * time.Millisecond

// Loop runs tasks and idle callbacks on a single goroutine. Tasks sent with
// Dispatch always run before the next idle callback, so input is never
// starved by a long render.
type Loop struct {
	frame  time.Duration
	logger *slog.Logger

	tasks chan func()
	wake  chan struct{}
	done  chan struct{}

	mu   sync.Mutex
	idle []IdleCallback
}

var _ IdleScheduler = (*Loop)(nil)

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for recovered panics.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithQueueSize sets how many dispatched tasks may wait before Dispatch
// blocks.
func WithQueueSize(n int) LoopOption {
	return func(l *Loop) {
		l.tasks = make(chan func(), n)
	}
}

// NewLoop creates a loop whose idle callbacks get frame of wall-clock time.
func NewLoop(frame time.Duration, opts ...LoopOption) *Loop {
	if frame <= 0 {
		frame = DefaultFrameBudget
	}
	l := &Loop{
		frame:  frame,
		logger: slog.Default(),
		tasks:  make(chan func(), 64),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestIdleCallback implements IdleScheduler. It may be called from any
// goroutine.
func (l *Loop) RequestIdleCallback(cb IdleCallback) {
	l.mu.Lock()
	l.idle = append(l.idle, cb)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Dispatch queues fn to run on the loop goroutine. It reports false if the
// loop has stopped.
func (l *Loop) Dispatch(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run processes tasks and idle callbacks until ctx is cancelled or a
// callback panics. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case fn := <-l.tasks:
			if err := l.run(fn); err != nil {
				return err
			}
			continue
		default:
		}

		if cb := l.popIdle(); cb != nil {
			deadline := NewFrameDeadline(l.frame)
			if err := l.run(func() { cb(deadline) }); err != nil {
				return err
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			if err := l.run(fn); err != nil {
				return err
			}
		case <-l.wake:
		}
	}
}

func (l *Loop) popIdle() IdleCallback {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.idle) == 0 {
		return nil
	}
	cb := l.idle[0]
	l.idle[0] = nil
	l.idle = l.idle[1:]
	return cb
}

func (l *Loop) run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("loop callback panicked", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("sched: loop callback panicked: %v", r)
		}
	}()
	fn()
	return nil
}
