package fiber

import (
	"context"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

// commitRoot applies the effects of the finished pass to the host and
// promotes the work-in-progress tree to current.
func (e *Engine) commitRoot() (err error) {
	start := time.Now()
	_, span := e.tracer.Start(context.Background(), "vfiber.commit")
	e.committing = true
	defer func() {
		e.committing = false
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	root := e.wipRoot
	deletions := len(e.deletions)
	for _, f := range e.deletions {
		if err := e.commitDeletion(f); err != nil {
			e.abandon()
			return err
		}
	}

	var (
		placements, updates int
		callbacks           []func()
	)
	for f := root.child; f != nil; f = nextFiber(f, root) {
		switch f.effect {
		case EffectPlacement:
			placements++
			if f.lifecycle != nil && f.lifecycle.Mount != nil {
				callbacks = append(callbacks, f.lifecycle.Mount)
			}
		case EffectUpdate:
			updates++
			if f.lifecycle != nil && f.lifecycle.Update != nil {
				callbacks = append(callbacks, f.lifecycle.Update)
			}
		}
		if err := e.commitWork(f); err != nil {
			e.abandon()
			return err
		}
		f.alternate = nil
	}
	root.alternate = nil

	e.currentRoot = root
	e.abandon()

	// Host mutations are done; callbacks run in tree order.
	for _, fn := range callbacks {
		fn()
	}
	e.committing = false

	elapsed := time.Since(start)
	e.stats.Commits++
	e.metrics.commit(elapsed)
	span.SetAttributes(
		attribute.Int("deletions", deletions),
		attribute.Int("placements", placements),
		attribute.Int("updates", updates),
	)
	e.logger.Debug("render pass committed",
		"deletions", deletions,
		"placements", placements,
		"updates", updates,
		"duration", elapsed,
	)

	for _, fn := range e.commitHooks {
		fn(root)
	}
	if e.rerender {
		e.rerender = false
		e.scheduleUpdate()
	}
	return nil
}

func (e *Engine) commitWork(f *Fiber) error {
	if f.hostNode == nil {
		return nil
	}
	switch f.effect {
	case EffectPlacement:
		parent := hostParent(f)
		if before := hostSibling(f); before != nil {
			return hostError("insert", e.adapter.InsertBefore(parent, f.hostNode, before))
		}
		return hostError("append", e.adapter.AppendChild(parent, f.hostNode))
	case EffectUpdate:
		if f.alternate == nil {
			return nil
		}
		return e.updateProps(f.hostNode, f.alternate.props, f.props)
	}
	return nil
}

// commitDeletion runs the Unmount callbacks of a deleted subtree, parents
// first, then detaches its host nodes. Fibers without a host node are
// descended through until one is found.
func (e *Engine) commitDeletion(f *Fiber) error {
	for c := f; c != nil; c = nextFiber(c, f) {
		if c.lifecycle != nil && c.lifecycle.Unmount != nil {
			c.lifecycle.Unmount()
		}
	}

	n := f
	for n != nil && n.hostNode == nil {
		n = n.child
	}
	if n == nil {
		return nil
	}
	return hostError("remove", e.adapter.RemoveChild(hostParent(n), n.hostNode))
}

// hostParent returns the host node of the nearest ancestor that has one.
func hostParent(f *Fiber) host.Node {
	for p := f.parent; p != nil; p = p.parent {
		if p.hostNode != nil {
			return p.hostNode
		}
	}
	return nil
}

// hostSibling returns the host node that f's node must be inserted before:
// the first already-mounted host node following f under the same host
// parent. It returns nil when f's node belongs at the end.
func hostSibling(f *Fiber) host.Node {
	n := f
siblings:
	for {
		for n.sibling == nil {
			if n.parent == nil || n.parent.hostNode != nil {
				return nil
			}
			n = n.parent
		}
		n = n.sibling
		for n.hostNode == nil {
			if n.effect == EffectPlacement || n.child == nil {
				continue siblings
			}
			n = n.child
		}
		if n.effect != EffectPlacement {
			return n.hostNode
		}
	}
}

// updateProps moves node's properties and listeners from prev to next.
// Function-valued props never compare equal, so handlers are rebound on
// every update.
func (e *Engine) updateProps(node host.Node, prev, next vdom.Props) error {
	for _, key := range sortedKeys(prev) {
		if !vdom.IsEventProp(key) {
			continue
		}
		if nv, ok := next[key]; !ok || !vdom.PropsEqual(prev[key], nv) {
			if err := e.adapter.RemoveListener(node, vdom.EventName(key), prev[key]); err != nil {
				return hostError("remove listener "+key, err)
			}
		}
	}
	for _, key := range sortedKeys(prev) {
		if !isProperty(key) {
			continue
		}
		if _, ok := next[key]; !ok {
			if err := e.adapter.RemoveProperty(node, key); err != nil {
				return hostError("remove property "+key, err)
			}
		}
	}
	for _, key := range sortedKeys(next) {
		if !isProperty(key) {
			continue
		}
		if ov, ok := prev[key]; !ok || !vdom.PropsEqual(ov, next[key]) {
			if err := e.adapter.SetProperty(node, key, next[key]); err != nil {
				return hostError("set property "+key, err)
			}
		}
	}
	for _, key := range sortedKeys(next) {
		if !vdom.IsEventProp(key) {
			continue
		}
		if ov, ok := prev[key]; !ok || !vdom.PropsEqual(ov, next[key]) {
			if err := e.adapter.AddListener(node, vdom.EventName(key), next[key]); err != nil {
				return hostError("add listener "+key, err)
			}
		}
	}
	return nil
}

func isProperty(key string) bool {
	return key != vdom.ChildrenKey && !vdom.IsEventProp(key)
}

func sortedKeys(p vdom.Props) []string {
	var keys []string
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
