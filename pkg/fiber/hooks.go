package fiber

import (
	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

type hook struct {
	state any
	queue []func(prev any) any
}

// renderScope is the vdom.Scope handed to a component for one render.
type renderScope struct {
	engine *Engine
	fiber  *Fiber
	index  int
	active bool
}

// UseSlot returns the state of the next hook slot and a function that
// queues an update to it.
func (s *renderScope) UseSlot(initial any) (any, func(update func(prev any) any)) {
	if s == nil || !s.active {
		panic(errors.New(errors.CodeHookOutsideRender))
	}

	h := &hook{state: initial}
	if alt := s.fiber.alternate; alt != nil && s.index < len(alt.hooks) {
		old := alt.hooks[s.index]
		h.state = old.state
		for _, update := range old.queue {
			h.state = update(h.state)
		}
	}
	s.fiber.hooks = append(s.fiber.hooks, h)
	s.index++

	e := s.engine
	enqueue := func(update func(prev any) any) {
		h.queue = append(h.queue, update)
		e.scheduleUpdate()
	}
	return h.state, enqueue
}

// UseState returns the component's state for this hook position and a
// setter. The setter takes an updater that maps the previous state to the
// next; updaters queued between renders apply in order.
func UseState[T any](s vdom.Scope, initial T) (T, func(update func(prev T) T)) {
	if s == nil {
		panic(errors.New(errors.CodeHookOutsideRender))
	}
	raw, enqueue := s.UseSlot(initial)
	state, _ := raw.(T)
	set := func(update func(prev T) T) {
		enqueue(func(prev any) any {
			p, _ := prev.(T)
			return update(p)
		})
	}
	return state, set
}

// Lifecycle holds the callbacks a component registers with UseLifecycle.
// Mount runs after the commit that first attached the component, Update
// after every later commit that re-rendered it. Unmount runs before the
// host nodes of a deleted component are removed. Setters called from any of
// them start one pass once the commit is done.
type Lifecycle struct {
	Mount   func()
	Update  func()
	Unmount func()
}

// UseLifecycle registers lifecycle callbacks for the rendering component.
// The last call in a render wins.
func UseLifecycle(s vdom.Scope, l Lifecycle) {
	rs, ok := s.(*renderScope)
	if !ok || rs == nil || !rs.active {
		panic(errors.New(errors.CodeHookOutsideRender))
	}
	rs.fiber.lifecycle = &l
}

// Set returns an updater that replaces the state with v.
func Set[T any](v T) func(T) T {
	return func(T) T { return v }
}
