// Package vdom provides the element model for vfiber.
//
// An Element is an immutable description of what should exist in the host
// tree: a host tag, a function component or a text value, plus a property
// bag whose reserved "children" key holds the child elements. A new render
// pass always produces fresh elements; the fiber engine diffs them against
// the previously committed tree.
//
// # Core Types
//
// Element is the descriptor. Kind is the closed set of element types and is
// resolved once, when the element is constructed. Props holds properties,
// event handlers and children. Component is a render function that receives
// a Scope for hooks and its props.
//
// # Element API
//
// Elements are created with CreateElement or the variadic tag helpers:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P("Content"),
//	    OnClick(handler),
//	)
//
// Strings and other non-element children are wrapped as text elements.
package vdom
