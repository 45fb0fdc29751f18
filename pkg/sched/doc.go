// Package sched provides the cooperative scheduling primitive the fiber
// engine yields to.
//
// The engine never blocks. It asks an IdleScheduler to call it back when
// the host has spare time, performs units of work until the Deadline it was
// handed runs out, and asks again. Two schedulers are provided:
//
//   - Manual runs callbacks only when told to, handing each one a fixed
//     budget of work units. It is deterministic and used by tests and the
//     CLI demo.
//   - Loop is a single goroutine that runs dispatched tasks and idle
//     callbacks with a wall-clock frame budget. All engine access happens on
//     that goroutine; other goroutines hand work over with Dispatch.
package sched
