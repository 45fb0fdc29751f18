package fiber

import (
	"fmt"

	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

// performUnitOfWork renders f, reconciles its children and returns the
// next fiber in pre-order.
func (e *Engine) performUnitOfWork(f *Fiber) (*Fiber, error) {
	if f.kind == vdom.KindComponent {
		e.updateFunctionComponent(f)
	} else if err := e.updateHostComponent(f); err != nil {
		return nil, err
	}
	return nextFiber(f, nil), nil
}

func (e *Engine) updateFunctionComponent(f *Fiber) {
	f.hooks = nil
	f.lifecycle = nil
	out := e.renderComponent(f)
	var children []*vdom.Element
	if out != nil {
		children = []*vdom.Element{out}
	}
	e.reconcileChildren(f, children)
}

func (e *Engine) renderComponent(f *Fiber) *vdom.Element {
	scope := &renderScope{engine: e, fiber: f, active: true}
	defer func() { scope.active = false }()
	return f.comp(scope, f.props)
}

func (e *Engine) updateHostComponent(f *Fiber) error {
	if f.hostNode == nil {
		node, err := e.createHostNode(f)
		if err != nil {
			return err
		}
		f.hostNode = node
	}
	e.reconcileChildren(f, f.props.Children())
	return nil
}

func (e *Engine) createHostNode(f *Fiber) (host.Node, error) {
	switch f.kind {
	case vdom.KindText:
		node, err := e.adapter.CreateText(vdom.PropToString(f.props[vdom.NodeValueKey]))
		if err != nil {
			return nil, hostError("create text", err)
		}
		return node, nil
	case vdom.KindHost:
		node, err := e.adapter.CreateElement(f.tag)
		if err != nil {
			return nil, hostError("create "+f.tag, err)
		}
		if err := e.updateProps(node, nil, f.props); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, errors.New(errors.CodeMalformedElement).
			WithDetail(fmt.Sprintf("element type %T cannot be rendered", f.raw))
	}
}

func hostError(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(errors.CodeHostFailure).WithDetail(op).Wrap(err)
}
