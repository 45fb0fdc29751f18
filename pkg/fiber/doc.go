// Package fiber is the vfiber reconciler.
//
// An Engine owns one render root. Render starts a pass: a work-in-progress
// fiber tree is built one unit at a time, each unit rendering one fiber
// (calling a function component or creating a host node) and diffing its
// children by position against the fibers of the last committed tree. Units
// run inside idle callbacks requested from a sched.IdleScheduler; the engine
// yields whenever the callback's deadline runs out and resumes on the next
// callback. When no unit remains, the commit phase applies every collected
// effect to the host in one synchronous walk and the work-in-progress tree
// becomes current.
//
// # Fibers and effects
//
// Each Fiber mirrors one position in the rendered tree. During a pass it
// links to the fiber at the same position in the committed tree (its
// alternate) and carries an effect: placement for new host nodes, update
// for reused ones, deletion for committed fibers that no longer have a
// counterpart. Deleted fibers are tracked in a separate list because they
// are not part of the work-in-progress tree.
//
// # Hooks
//
// Function components receive a vdom.Scope. UseState reads the slot at the
// same position in the alternate fiber, applies queued updates and returns
// the state plus a setter. Calling the setter starts a new pass from the
// committed root. Hooks are matched by call order, so a component must call
// them unconditionally and in the same order on every render.
//
// UseLifecycle registers Mount, Update and Unmount callbacks. Unmount runs
// while the deleted subtree is still attached; Mount and Update run once the
// host is fully mutated. Render(nil, container) unmounts everything.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Every call, including setters
// returned by UseState, must happen on the goroutine that runs the
// scheduler's callbacks (see sched.Loop.Dispatch).
package fiber
