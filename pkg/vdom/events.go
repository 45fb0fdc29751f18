package vdom

import "strings"

// EventHandler represents an event handler property.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func(), func(*Event) or func(string)
}

// Event is passed to handlers when the host fires a listener.
type Event struct {
	Type   string // "click", "input", ...
	Value  string // current value for input-like events
	Target any    // host node the listener is bound to
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On handles an arbitrary event type.
func On(name string, handler any) EventHandler { return event(strings.ToLower(name), handler) }

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// IsEventProp returns true if the key is an event handler (starts with "on").
// Case-insensitive to catch onclick, ONCLICK, onClick, OnLoad, etc.
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// EventName returns the host event type for an event property key:
// "onClick" becomes "click".
func EventName(key string) string {
	if !IsEventProp(key) {
		return ""
	}
	return strings.ToLower(key[2:])
}

// Dispatch invokes handler with ev. It reports false when the handler has an
// unsupported signature.
func Dispatch(handler any, ev *Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(*Event):
		h(ev)
	case func(string):
		h(ev.Value)
	default:
		return false
	}
	return true
}
