package fiber

import (
	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

// EffectTag classifies the host mutation a fiber requires at commit.
type EffectTag uint8

const (
	EffectNone EffectTag = iota
	EffectPlacement
	EffectUpdate
	EffectDeletion
)

// String returns the string representation of the EffectTag.
func (t EffectTag) String() string {
	switch t {
	case EffectPlacement:
		return "PLACEMENT"
	case EffectUpdate:
		return "UPDATE"
	case EffectDeletion:
		return "DELETION"
	default:
		return "NONE"
	}
}

// Fiber is one position in the rendered tree.
//
// parent, child and sibling navigate the tree; child and sibling own the
// fibers they point at. alternate points at the fiber holding the same
// position in the committed tree while a pass is in flight and is cleared
// once the fiber is committed.
type Fiber struct {
	typ   vdom.Type
	kind  vdom.Kind
	tag   string
	comp  vdom.Component
	raw   any
	props vdom.Props

	hostNode host.Node

	parent    *Fiber
	child     *Fiber
	sibling   *Fiber
	alternate *Fiber

	effect    EffectTag
	hooks     []*hook
	lifecycle *Lifecycle
}

func newFiber(el *vdom.Element, parent *Fiber) *Fiber {
	return &Fiber{
		typ:    el.Type(),
		kind:   el.Kind,
		tag:    el.Tag,
		comp:   el.Comp,
		raw:    el.Raw,
		props:  el.Props,
		parent: parent,
	}
}

func (f *Fiber) sameType(el *vdom.Element) bool {
	return el != nil && f.typ == el.Type()
}

// Kind returns the fiber's element kind.
func (f *Fiber) Kind() vdom.Kind { return f.kind }

// Tag returns the host tag, empty for components, text and the root.
func (f *Fiber) Tag() string { return f.tag }

// Props returns the props of the element that produced the fiber.
func (f *Fiber) Props() vdom.Props { return f.props }

// HostNode returns the host node owned by the fiber, if any.
func (f *Fiber) HostNode() host.Node { return f.hostNode }

// Parent returns the parent fiber.
func (f *Fiber) Parent() *Fiber { return f.parent }

// Child returns the first child fiber.
func (f *Fiber) Child() *Fiber { return f.child }

// Sibling returns the next sibling fiber.
func (f *Fiber) Sibling() *Fiber { return f.sibling }

// Alternate returns the committed counterpart during a pass.
func (f *Fiber) Alternate() *Fiber { return f.alternate }

// Effect returns the effect computed for the fiber in its pass.
func (f *Fiber) Effect() EffectTag { return f.effect }

// HookCount returns the number of hook slots the fiber used in its last
// render.
func (f *Fiber) HookCount() int { return len(f.hooks) }

// Children returns the child fibers in order.
func (f *Fiber) Children() []*Fiber {
	var out []*Fiber
	for c := f.child; c != nil; c = c.sibling {
		out = append(out, c)
	}
	return out
}

// Walk visits f and its descendants in pre-order.
func (f *Fiber) Walk(fn func(n *Fiber, depth int)) {
	n, depth := f, 0
	for n != nil {
		fn(n, depth)
		if n.child != nil {
			n = n.child
			depth++
			continue
		}
		for n != f && n.sibling == nil {
			n = n.parent
			depth--
		}
		if n == f {
			return
		}
		n = n.sibling
	}
}

// nextFiber returns the fiber after f in pre-order, staying below root.
func nextFiber(f, root *Fiber) *Fiber {
	if f.child != nil {
		return f.child
	}
	for n := f; n != nil && n != root; n = n.parent {
		if n.sibling != nil {
			return n.sibling
		}
	}
	return nil
}
