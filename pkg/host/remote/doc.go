// Package remote is a host adapter for a client that owns the real node
// tree on the other side of a connection.
//
// Nodes are numeric IDs. Every adapter call is encoded as an Op and
// buffered; Flush hands the buffered ops to the caller as one sequenced
// Batch, typically once per commit. The client replays the ops in order
// against its own tree and reports user events back as ClientEvents, which
// Dispatch routes to the listener bound on the server side.
//
// Ops in a batch look like:
//
//	{"op":"create","id":4,"tag":"button"}
//	{"op":"set","id":4,"name":"class","value":"primary"}
//	{"op":"listen","id":4,"event":"click"}
//	{"op":"insert","id":4,"parent":1,"before":3}
//
// Handlers never cross the wire; only event names do.
package remote
