package sched

import "time"

// YieldThreshold is the remaining time below which a worker should stop
// taking new units and yield.
const YieldThreshold = time.Millisecond

// Deadline reports how much time remains in the current slice.
type Deadline interface {
	TimeRemaining() time.Duration
}

// IdleCallback runs during host idle time.
type IdleCallback func(d Deadline)

// IdleScheduler registers callbacks to run during host idle time. Each
// request runs at most once.
type IdleScheduler interface {
	RequestIdleCallback(cb IdleCallback)
}

// UnitBudget is a Deadline that grants a fixed number of work units instead
// of wall-clock time. Every TimeRemaining call consumes one unit, so a worker
// that checks the deadline once per unit performs exactly Units units before
// it sees less than YieldThreshold remaining.
type UnitBudget struct {
	Units int
}

// TimeRemaining implements Deadline.
func (b *UnitBudget) TimeRemaining() time.Duration {
	b.Units--
	if b.Units <= 0 {
		b.Units = 0
		return 0
	}
	return time.Duration(b.Units) * YieldThreshold
}

// Unlimited is a Deadline that never runs out.
type Unlimited struct{}

// TimeRemaining implements Deadline.
func (Unlimited) TimeRemaining() time.Duration {
	return time.Duration(1<<63 - 1)
}

// FrameDeadline is a wall-clock Deadline ending at End.
type FrameDeadline struct {
	End time.Time
	now func() time.Time
}

// NewFrameDeadline returns a deadline budget from now.
func NewFrameDeadline(budget time.Duration) *FrameDeadline {
	return &FrameDeadline{End: time.Now().Add(budget), now: time.Now}
}

// TimeRemaining implements Deadline.
func (f *FrameDeadline) TimeRemaining() time.Duration {
	now := time.Now
	if f.now != nil {
		now = f.now
	}
	if d := f.End.Sub(now()); d > 0 {
		return d
	}
	return 0
}
