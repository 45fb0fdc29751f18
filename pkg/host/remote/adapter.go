package remote

import (
	"fmt"

	"github.com/vango-dev/vfiber/internal/errors"
	"github.com/vango-dev/vfiber/pkg/host"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

type node struct {
	parent    NodeID
	children  []NodeID
	listeners map[string]any
}

// Adapter encodes host mutations as ops. It is not safe for concurrent use;
// call it from the goroutine that drives the engine.
type Adapter struct {
	nodes   map[NodeID]*node
	nextID  NodeID
	pending []Op
	seq     uint64
}

var _ host.Adapter = (*Adapter)(nil)

// New creates an adapter whose only node is the root container.
func New() *Adapter {
	return &Adapter{
		nodes:  map[NodeID]*node{RootID: {listeners: map[string]any{}}},
		nextID: RootID,
	}
}

// Root returns the container node to render into.
func (a *Adapter) Root() host.Node {
	return RootID
}

// Len returns the number of live nodes, including the root.
func (a *Adapter) Len() int {
	return len(a.nodes)
}

// Pending returns the number of buffered ops.
func (a *Adapter) Pending() int {
	return len(a.pending)
}

// Flush returns the buffered ops as the next batch. It reports false when
// nothing was buffered.
func (a *Adapter) Flush() (Batch, bool) {
	if len(a.pending) == 0 {
		return Batch{}, false
	}
	a.seq++
	b := Batch{Seq: a.seq, Ops: a.pending}
	a.pending = nil
	return b, true
}

// Dispatch invokes the listener bound to ev.Event on ev.Node.
func (a *Adapter) Dispatch(ev ClientEvent) error {
	n, ok := a.nodes[ev.Node]
	if !ok {
		return errors.New(errors.CodeSessionProtocol).
			WithDetail(fmt.Sprintf("unknown node #%d", ev.Node))
	}
	handler, ok := n.listeners[ev.Event]
	if !ok {
		return errors.New(errors.CodeSessionProtocol).
			WithDetail(fmt.Sprintf("no %q listener on node #%d", ev.Event, ev.Node))
	}
	if !vdom.Dispatch(handler, &vdom.Event{Type: ev.Event, Value: ev.Value, Target: ev.Node}) {
		return errors.New(errors.CodeSessionProtocol).
			WithDetail(fmt.Sprintf("unsupported %q handler %T", ev.Event, handler))
	}
	return nil
}

func (a *Adapter) lookup(n host.Node) (NodeID, *node, error) {
	id, ok := n.(NodeID)
	if !ok {
		return 0, nil, fmt.Errorf("remote: node %v (%T) is not a NodeID", n, n)
	}
	nd, ok := a.nodes[id]
	if !ok {
		return 0, nil, fmt.Errorf("remote: unknown node #%d", id)
	}
	return id, nd, nil
}

func (a *Adapter) create(op Op) NodeID {
	a.nextID++
	op.ID = a.nextID
	a.nodes[op.ID] = &node{listeners: map[string]any{}}
	a.pending = append(a.pending, op)
	return op.ID
}

// CreateElement implements host.Adapter.
func (a *Adapter) CreateElement(tag string) (host.Node, error) {
	return a.create(Op{Op: OpCreate, Tag: tag}), nil
}

// CreateText implements host.Adapter.
func (a *Adapter) CreateText(text string) (host.Node, error) {
	return a.create(Op{Op: OpText, Text: text}), nil
}

// SetProperty implements host.Adapter. Values that have no JSON form are
// sent as their string representation.
func (a *Adapter) SetProperty(n host.Node, name string, value any) error {
	id, _, err := a.lookup(n)
	if err != nil {
		return err
	}
	a.pending = append(a.pending, Op{Op: OpSet, ID: id, Name: name, Value: wireValue(value)})
	return nil
}

// RemoveProperty implements host.Adapter.
func (a *Adapter) RemoveProperty(n host.Node, name string) error {
	id, _, err := a.lookup(n)
	if err != nil {
		return err
	}
	a.pending = append(a.pending, Op{Op: OpUnset, ID: id, Name: name})
	return nil
}

// AddListener implements host.Adapter.
func (a *Adapter) AddListener(n host.Node, event string, handler any) error {
	id, nd, err := a.lookup(n)
	if err != nil {
		return err
	}
	_, bound := nd.listeners[event]
	nd.listeners[event] = handler
	if !bound {
		a.pending = append(a.pending, Op{Op: OpListen, ID: id, Event: event})
	}
	return nil
}

// RemoveListener implements host.Adapter.
func (a *Adapter) RemoveListener(n host.Node, event string, _ any) error {
	id, nd, err := a.lookup(n)
	if err != nil {
		return err
	}
	delete(nd.listeners, event)
	a.pending = append(a.pending, Op{Op: OpUnlisten, ID: id, Event: event})
	return nil
}

// AppendChild implements host.Adapter.
func (a *Adapter) AppendChild(parent, child host.Node) error {
	pid, p, err := a.lookup(parent)
	if err != nil {
		return err
	}
	cid, _, err := a.lookup(child)
	if err != nil {
		return err
	}
	a.detach(cid)
	p.children = append(p.children, cid)
	a.nodes[cid].parent = pid
	a.pending = append(a.pending, Op{Op: OpAppend, ID: cid, Parent: pid})
	return nil
}

// InsertBefore implements host.Adapter.
func (a *Adapter) InsertBefore(parent, child, before host.Node) error {
	pid, p, err := a.lookup(parent)
	if err != nil {
		return err
	}
	cid, _, err := a.lookup(child)
	if err != nil {
		return err
	}
	bid, b, err := a.lookup(before)
	if err != nil {
		return err
	}
	if b.parent != pid {
		return fmt.Errorf("remote: node #%d is not a child of #%d", bid, pid)
	}
	a.detach(cid)
	i := indexOf(p.children, bid)
	p.children = append(p.children[:i], append([]NodeID{cid}, p.children[i:]...)...)
	a.nodes[cid].parent = pid
	a.pending = append(a.pending, Op{Op: OpInsert, ID: cid, Parent: pid, Before: bid})
	return nil
}

// RemoveChild implements host.Adapter. The removed subtree is released and
// its IDs become unknown.
func (a *Adapter) RemoveChild(parent, child host.Node) error {
	pid, _, err := a.lookup(parent)
	if err != nil {
		return err
	}
	cid, c, err := a.lookup(child)
	if err != nil {
		return err
	}
	if c.parent != pid {
		return fmt.Errorf("remote: node #%d is not a child of #%d", cid, pid)
	}
	a.detach(cid)
	a.release(cid)
	a.pending = append(a.pending, Op{Op: OpRemove, ID: cid, Parent: pid})
	return nil
}

func (a *Adapter) detach(id NodeID) {
	n := a.nodes[id]
	if n.parent == 0 {
		return
	}
	if p, ok := a.nodes[n.parent]; ok {
		if i := indexOf(p.children, id); i >= 0 {
			p.children = append(p.children[:i], p.children[i+1:]...)
		}
	}
	n.parent = 0
}

func (a *Adapter) release(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n, ok := a.nodes[cur]; ok {
			stack = append(stack, n.children...)
			delete(a.nodes, cur)
		}
	}
}

func indexOf(ids []NodeID, id NodeID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func wireValue(v any) any {
	switch v.(type) {
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	default:
		return vdom.PropToString(v)
	}
}
