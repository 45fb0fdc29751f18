package sched

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUnitBudget(t *testing.T) {
	tests := []struct {
		units     int
		wantUnits int
	}{
		{units: 1, wantUnits: 1},
		{units: 3, wantUnits: 3},
		{units: 0, wantUnits: 1},
		{units: -2, wantUnits: 1},
	}
	for _, tt := range tests {
		b := &UnitBudget{Units: tt.units}
		done := 0
		for {
			done++
			if b.TimeRemaining() < YieldThreshold {
				break
			}
		}
		if done != tt.wantUnits {
			t.Errorf("UnitBudget{%d}: performed %d units, want %d", tt.units, done, tt.wantUnits)
		}
	}
}

func TestFrameDeadline(t *testing.T) {
	now := time.Unix(100, 0)
	d := &FrameDeadline{End: now.Add(5 * time.Millisecond), now: func() time.Time { return now }}

	if got := d.TimeRemaining(); got != 5*time.Millisecond {
		t.Errorf("TimeRemaining() = %v, want 5ms", got)
	}
	now = now.Add(10 * time.Millisecond)
	if got := d.TimeRemaining(); got != 0 {
		t.Errorf("TimeRemaining() after end = %v, want 0", got)
	}

	if NewFrameDeadline(time.Hour).TimeRemaining() <= 0 {
		t.Error("fresh frame deadline should have time left")
	}
	if (Unlimited{}).TimeRemaining() < time.Hour {
		t.Error("Unlimited should never run out")
	}
}

func TestManual(t *testing.T) {
	m := NewManual()
	if m.RunSlice(1) {
		t.Fatal("RunSlice on an empty queue should report false")
	}

	var budgets []int
	var requeue IdleCallback
	requeue = func(d Deadline) {
		budgets = append(budgets, d.(*UnitBudget).Units)
		if len(budgets) < 3 {
			m.RequestIdleCallback(requeue)
		}
	}
	m.RequestIdleCallback(requeue)
	if m.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", m.Pending())
	}

	if n := m.Drain(4); n != 3 {
		t.Errorf("Drain() ran %d slices, want 3", n)
	}
	if m.Slices() != 3 {
		t.Errorf("Slices() = %d, want 3", m.Slices())
	}
	for i, b := range budgets {
		if b != 4 {
			t.Errorf("slice %d budget = %d, want 4", i, b)
		}
	}
	if m.Pending() != 0 {
		t.Error("queue should be empty after Drain")
	}
}

func TestLoopRunsTasksAndIdleCallbacks(t *testing.T) {
	l := NewLoop(10*time.Millisecond, WithLogger(quietLogger()), WithQueueSize(4))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	order := make(chan string, 4)
	l.Dispatch(func() {
		order <- "task"
		l.RequestIdleCallback(func(d Deadline) {
			if d.TimeRemaining() <= 0 {
				order <- "no-time"
				return
			}
			order <- "idle"
		})
	})

	for _, want := range []string{"task", "idle"} {
		select {
		case got := <-order:
			if got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if l.Dispatch(func() {}) {
		t.Error("Dispatch after stop should report false")
	}
}

func TestLoopIdleRequestedBeforeRun(t *testing.T) {
	l := NewLoop(0, WithLogger(quietLogger()))
	ran := make(chan struct{})
	l.RequestIdleCallback(func(Deadline) { close(ran) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("idle callback requested before Run never ran")
	}
}

func TestLoopRecoversPanics(t *testing.T) {
	l := NewLoop(time.Millisecond, WithLogger(quietLogger()))
	l.Dispatch(func() { panic("kaboom") })

	err := l.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("Run() = %v, want panic error", err)
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done should be closed after Run returns")
	}
}
