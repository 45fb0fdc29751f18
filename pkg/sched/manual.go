package sched

// Manual is a deterministic IdleScheduler. Callbacks queue up until RunSlice
// or Drain runs them. It is not safe for concurrent use.
type Manual struct {
	queue  []IdleCallback
	slices int
}

var _ IdleScheduler = (*Manual)(nil)

// NewManual creates an empty Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// RequestIdleCallback implements IdleScheduler.
func (m *Manual) RequestIdleCallback(cb IdleCallback) {
	m.queue = append(m.queue, cb)
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// Slices returns how many callbacks have run.
func (m *Manual) Slices() int {
	return m.slices
}

// RunSlice runs the oldest queued callback with a budget of units work
// units. It reports false when nothing was queued.
func (m *Manual) RunSlice(units int) bool {
	if len(m.queue) == 0 {
		return false
	}
	cb := m.queue[0]
	m.queue[0] = nil
	m.queue = m.queue[1:]
	m.slices++
	cb(&UnitBudget{Units: units})
	return true
}

// Drain runs slices until no callback is queued and returns how many ran.
// Callbacks requested while draining are run too.
func (m *Manual) Drain(units int) int {
	n := 0
	for m.RunSlice(units) {
		n++
	}
	return n
}
