// Package host defines the contract between the fiber engine and the
// environment that owns the real node tree.
//
// The engine never touches host nodes directly: it creates, mutates and
// attaches them through an Adapter. Nodes are opaque to the engine; each
// adapter decides what a Node is (a DOM handle, an in-memory struct, a
// numeric ID on a remote client).
package host

// Node is an opaque host node handle owned by an Adapter.
type Node any

// Adapter creates and mutates host nodes.
//
// Every method may fail; the engine does not retry and abandons the current
// render pass when an adapter call returns an error.
type Adapter interface {
	// CreateElement creates a detached node for a tag.
	CreateElement(tag string) (Node, error)

	// CreateText creates a detached text node.
	CreateText(text string) (Node, error)

	// SetProperty sets a named property. For text nodes the "nodeValue"
	// property holds the text.
	SetProperty(node Node, name string, value any) error

	// RemoveProperty removes a named property.
	RemoveProperty(node Node, name string) error

	// AddListener binds handler to event on node.
	AddListener(node Node, event string, handler any) error

	// RemoveListener unbinds the listener previously bound to event.
	RemoveListener(node Node, event string, handler any) error

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node) error

	// InsertBefore attaches child to parent immediately before the existing
	// child before.
	InsertBefore(parent, child, before Node) error

	// RemoveChild detaches child from parent.
	RemoveChild(parent, child Node) error
}
