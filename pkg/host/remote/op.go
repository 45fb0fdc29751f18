package remote

import (
	"fmt"
	"strings"
)

// OpKind identifies an encoded host mutation.
type OpKind string

// Op kinds.
const (
	OpCreate   OpKind = "create"   // new element node
	OpText     OpKind = "text"     // new text node
	OpSet      OpKind = "set"      // set property
	OpUnset    OpKind = "unset"    // remove property
	OpListen   OpKind = "listen"   // start forwarding an event
	OpUnlisten OpKind = "unlisten" // stop forwarding an event
	OpAppend   OpKind = "append"   // append child
	OpInsert   OpKind = "insert"   // insert child before sibling
	OpRemove   OpKind = "remove"   // detach child
)

// NodeID identifies a node on the client. Zero is never a valid ID.
type NodeID int

// RootID is the ID of the container the client mounts the tree into.
const RootID NodeID = 1

// Op is one encoded host mutation.
type Op struct {
	Op     OpKind `json:"op"`
	ID     NodeID `json:"id"`
	Parent NodeID `json:"parent,omitempty"`
	Before NodeID `json:"before,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Text   string `json:"text,omitempty"`
	Name   string `json:"name,omitempty"`
	Value  any    `json:"value,omitempty"`
	Event  string `json:"event,omitempty"`
}

// String returns a compact description of the op.
func (o Op) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d", o.Op, o.ID)
	switch o.Op {
	case OpCreate:
		fmt.Fprintf(&b, " <%s>", o.Tag)
	case OpText:
		fmt.Fprintf(&b, " %q", o.Text)
	case OpSet:
		fmt.Fprintf(&b, " %s=%v", o.Name, o.Value)
	case OpUnset:
		fmt.Fprintf(&b, " %s", o.Name)
	case OpListen, OpUnlisten:
		fmt.Fprintf(&b, " %s", o.Event)
	case OpAppend, OpRemove:
		fmt.Fprintf(&b, " parent=#%d", o.Parent)
	case OpInsert:
		fmt.Fprintf(&b, " parent=#%d before=#%d", o.Parent, o.Before)
	}
	return b.String()
}

// Batch is the set of ops produced by one flush.
type Batch struct {
	Seq uint64 `json:"seq"`
	Ops []Op   `json:"ops"`
}

// ClientEvent is a user event reported by the client.
type ClientEvent struct {
	Node  NodeID `json:"node"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}
