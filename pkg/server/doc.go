// Package server streams a live vfiber render tree to websocket clients.
//
// Every websocket connection is a session. A session owns a sched.Loop, a
// remote.Adapter and a fiber.Engine rendering the configured root element;
// nothing is shared between sessions except metrics. After each commit the
// session flushes the adapter and writes the batch as one JSON text
// message:
//
//	{"seq":3,"ops":[{"op":"set","id":7,"name":"nodeValue","value":"Count: 2"}]}
//
// Clients report user events as JSON text messages:
//
//	{"node":5,"event":"click"}
//	{"node":9,"event":"input","value":"milk"}
//
// Events are dispatched on the session loop, so listeners and the state
// setters they call run on the engine's goroutine. Malformed messages and
// events for unknown nodes are logged and ignored.
//
// # Routes
//
//	GET /healthz   liveness and session count
//	GET /metrics   Prometheus metrics (path configurable)
//	GET /ws        websocket endpoint
package server
