package fiber

import "github.com/vango-dev/vfiber/pkg/vdom"

// reconcileChildren builds wip's child fibers from elements, matching them
// by position against the children of wip's alternate. Matching types reuse
// the old host node and are tagged for update. Anything else becomes a
// placement, and the old fiber at that position is queued for deletion.
func (e *Engine) reconcileChildren(wip *Fiber, elements []*vdom.Element) {
	var old *Fiber
	if wip.alternate != nil {
		old = wip.alternate.child
	}
	wip.child = nil

	var prev *Fiber
	for i := 0; i < len(elements) || old != nil; i++ {
		var el *vdom.Element
		if i < len(elements) {
			el = elements[i]
		}

		var next *Fiber
		switch {
		case old != nil && old.sameType(el):
			next = newFiber(el, wip)
			next.hostNode = old.hostNode
			next.alternate = old
			next.effect = EffectUpdate
		case el != nil:
			next = newFiber(el, wip)
			next.effect = EffectPlacement
		}
		if old != nil && !old.sameType(el) {
			old.effect = EffectDeletion
			e.deletions = append(e.deletions, old)
		}

		if old != nil {
			old = old.sibling
		}
		if next == nil {
			continue
		}
		if prev == nil {
			wip.child = next
		} else {
			prev.sibling = next
		}
		prev = next
	}
}
