// Package memhost is an in-memory host: a tiny document model that records
// every adapter call it receives. Tests use the recorded operations to
// assert exactly which host mutations a render pass performed; the CLI demo
// uses it as a headless render target.
package memhost

import (
	"fmt"

	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

// TextTag is the Tag of text nodes.
const TextTag = "#text"

// OpKind names an adapter call.
type OpKind string

const (
	OpCreate       OpKind = "create"
	OpCreateText   OpKind = "create_text"
	OpSetProp      OpKind = "set_prop"
	OpRemoveProp   OpKind = "remove_prop"
	OpAddListener  OpKind = "add_listener"
	OpRemoveListen OpKind = "remove_listener"
	OpAppend       OpKind = "append"
	OpInsert       OpKind = "insert"
	OpRemove       OpKind = "remove"
)

// Structural reports whether the op changes the shape of the node tree.
func (k OpKind) Structural() bool {
	return k == OpAppend || k == OpInsert || k == OpRemove
}

// Op is one recorded adapter call.
type Op struct {
	Kind   OpKind
	Node   *Node
	Parent *Node // for append/insert/remove
	Name   string
	Value  any
}

// String returns a compact description, e.g. "set_prop <div#3> class=b".
func (o Op) String() string {
	switch o.Kind {
	case OpSetProp:
		return fmt.Sprintf("%s %s %s=%v", o.Kind, o.Node.label(), o.Name, o.Value)
	case OpRemoveProp, OpAddListener, OpRemoveListen:
		return fmt.Sprintf("%s %s %s", o.Kind, o.Node.label(), o.Name)
	case OpAppend, OpInsert, OpRemove:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Node.label(), o.Parent.label())
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Node.label())
	}
}

// Document creates nodes and records operations.
type Document struct {
	ops    []Op
	nextID int

	// Fail, when set, is consulted before every operation; a non-nil error
	// is returned instead of performing it.
	Fail func(kind OpKind, node *Node) error
}

var _ host.Adapter = (*Document)(nil)

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// Container creates a detached element that is not recorded. Use it as the
// render target.
func (d *Document) Container(tag string) *Node {
	return d.newNode(tag)
}

// Ops returns the operations recorded since the last Reset.
func (d *Document) Ops() []Op {
	return d.ops
}

// Reset clears the recorded operations.
func (d *Document) Reset() {
	d.ops = nil
}

// Count returns how many recorded operations have one of kinds. With no
// kinds it returns the total.
func (d *Document) Count(kinds ...OpKind) int {
	if len(kinds) == 0 {
		return len(d.ops)
	}
	n := 0
	for _, op := range d.ops {
		for _, k := range kinds {
			if op.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// Fire invokes the listener bound to event on n.
func (d *Document) Fire(n *Node, event string, ev *vdom.Event) error {
	handler, ok := n.Listeners[event]
	if !ok {
		return fmt.Errorf("memhost: no %q listener on %s", event, n.label())
	}
	if ev == nil {
		ev = &vdom.Event{}
	}
	ev.Type = event
	ev.Target = n
	if !vdom.Dispatch(handler, ev) {
		return fmt.Errorf("memhost: unsupported %q handler %T", event, handler)
	}
	return nil
}

func (d *Document) newNode(tag string) *Node {
	d.nextID++
	return &Node{
		Tag:       tag,
		Props:     make(map[string]any),
		Listeners: make(map[string]any),
		id:        d.nextID,
	}
}

func (d *Document) check(kind OpKind, n *Node) error {
	if d.Fail != nil {
		return d.Fail(kind, n)
	}
	return nil
}

func (d *Document) record(op Op) {
	d.ops = append(d.ops, op)
}

// CreateElement implements host.Adapter.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	if err := d.check(OpCreate, nil); err != nil {
		return nil, err
	}
	n := d.newNode(tag)
	d.record(Op{Kind: OpCreate, Node: n})
	return n, nil
}

// CreateText implements host.Adapter.
func (d *Document) CreateText(text string) (host.Node, error) {
	if err := d.check(OpCreateText, nil); err != nil {
		return nil, err
	}
	n := d.newNode(TextTag)
	n.Text = text
	d.record(Op{Kind: OpCreateText, Node: n})
	return n, nil
}

// SetProperty implements host.Adapter.
func (d *Document) SetProperty(node host.Node, name string, value any) error {
	n, err := asNode(node)
	if err != nil {
		return err
	}
	if err := d.check(OpSetProp, n); err != nil {
		return err
	}
	if n.Tag == TextTag && name == vdom.NodeValueKey {
		n.Text = vdom.PropToString(value)
	} else {
		n.Props[name] = value
	}
	d.record(Op{Kind: OpSetProp, Node: n, Name: name, Value: value})
	return nil
}

// RemoveProperty implements host.Adapter.
func (d *Document) RemoveProperty(node host.Node, name string) error {
	n, err := asNode(node)
	if err != nil {
		return err
	}
	if err := d.check(OpRemoveProp, n); err != nil {
		return err
	}
	if n.Tag == TextTag && name == vdom.NodeValueKey {
		n.Text = ""
	}
	delete(n.Props, name)
	d.record(Op{Kind: OpRemoveProp, Node: n, Name: name})
	return nil
}

// AddListener implements host.Adapter. One listener is kept per event.
func (d *Document) AddListener(node host.Node, event string, handler any) error {
	n, err := asNode(node)
	if err != nil {
		return err
	}
	if err := d.check(OpAddListener, n); err != nil {
		return err
	}
	n.Listeners[event] = handler
	d.record(Op{Kind: OpAddListener, Node: n, Name: event})
	return nil
}

// RemoveListener implements host.Adapter.
func (d *Document) RemoveListener(node host.Node, event string, handler any) error {
	n, err := asNode(node)
	if err != nil {
		return err
	}
	if err := d.check(OpRemoveListen, n); err != nil {
		return err
	}
	delete(n.Listeners, event)
	d.record(Op{Kind: OpRemoveListen, Node: n, Name: event})
	return nil
}

// AppendChild implements host.Adapter.
func (d *Document) AppendChild(parent, child host.Node) error {
	p, c, err := asPair(parent, child)
	if err != nil {
		return err
	}
	if err := d.check(OpAppend, c); err != nil {
		return err
	}
	c.detach()
	c.Parent = p
	p.Children = append(p.Children, c)
	d.record(Op{Kind: OpAppend, Node: c, Parent: p})
	return nil
}

// InsertBefore implements host.Adapter.
func (d *Document) InsertBefore(parent, child, before host.Node) error {
	p, c, err := asPair(parent, child)
	if err != nil {
		return err
	}
	b, err := asNode(before)
	if err != nil {
		return err
	}
	if err := d.check(OpInsert, c); err != nil {
		return err
	}
	if b.Parent != p {
		return fmt.Errorf("memhost: %s is not a child of %s", b.label(), p.label())
	}
	c.detach()
	idx := p.indexOf(b)
	p.Children = append(p.Children, nil)
	copy(p.Children[idx+1:], p.Children[idx:])
	p.Children[idx] = c
	c.Parent = p
	d.record(Op{Kind: OpInsert, Node: c, Parent: p})
	return nil
}

// RemoveChild implements host.Adapter.
func (d *Document) RemoveChild(parent, child host.Node) error {
	p, c, err := asPair(parent, child)
	if err != nil {
		return err
	}
	if err := d.check(OpRemove, c); err != nil {
		return err
	}
	if c.Parent != p {
		return fmt.Errorf("memhost: %s is not a child of %s", c.label(), p.label())
	}
	c.detach()
	d.record(Op{Kind: OpRemove, Node: c, Parent: p})
	return nil
}

func asNode(h host.Node) (*Node, error) {
	n, ok := h.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("memhost: foreign node %T", h)
	}
	return n, nil
}

func asPair(parent, child host.Node) (*Node, *Node, error) {
	p, err := asNode(parent)
	if err != nil {
		return nil, nil, err
	}
	c, err := asNode(child)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}
