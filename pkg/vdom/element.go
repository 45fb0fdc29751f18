package vdom

import (
	"fmt"
	"unsafe"
)

// Kind is the element type discriminator.
type Kind uint8

const (
	KindInvalid   Kind = iota // type was neither a tag nor a component
	KindHost                  // <div>, <button>, etc.
	KindComponent             // function component
	KindText                  // plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindComponent:
		return "Component"
	case KindText:
		return "Text"
	default:
		return "Invalid"
	}
}

// Reserved property keys.
const (
	ChildrenKey  = "children"
	NodeValueKey = "nodeValue"
)

// Props holds properties, event handlers and children.
type Props map[string]any

// Children returns the child elements stored under ChildrenKey.
func (p Props) Children() []*Element {
	children, _ := p[ChildrenKey].([]*Element)
	return children
}

// Scope is the render context handed to a function component. Hooks read
// and append slots through it; it is only valid while the component that
// received it is rendering.
type Scope interface {
	UseSlot(initial any) (state any, enqueue func(update func(prev any) any))
}

// Component is a function component.
type Component func(s Scope, props Props) *Element

// Type identifies what an element renders to. Two elements with equal Types
// may share a host node across renders.
//
// A component's identity is its function value, not its code: every
// closure returned by a factory is a distinct type, while a package-level
// function or a closure created once and reused keeps one identity.
type Type struct {
	Kind Kind
	Tag  string
	comp unsafe.Pointer
}

// Element is an immutable UI descriptor.
type Element struct {
	Kind  Kind
	Tag   string    // for KindHost
	Comp  Component // for KindComponent
	Raw   any       // original type value for KindInvalid
	Props Props

	typ Type
}

// Type returns the element's type identity.
func (e *Element) Type() Type {
	return e.typ
}

// Children returns the element's child elements.
func (e *Element) Children() []*Element {
	return e.Props.Children()
}

// Text returns the value of a text element.
func (e *Element) Text() string {
	s, _ := e.Props[NodeValueKey].(string)
	return s
}

// String returns a short description, used in logs.
func (e *Element) String() string {
	switch e.Kind {
	case KindHost:
		return "<" + e.Tag + ">"
	case KindText:
		return fmt.Sprintf("%q", e.Text())
	case KindComponent:
		return "component"
	default:
		return fmt.Sprintf("invalid(%T)", e.Raw)
	}
}

// CreateElement builds an element from a type, a property bag and children.
//
// typ is a tag name or a Component; anything else yields a KindInvalid
// element that fails once the engine tries to create its host node. props is
// shallow-copied. Children may be elements, slices of elements, nil (skipped)
// or any other value, which is wrapped as a text element.
func CreateElement(typ any, props Props, children ...any) *Element {
	el := &Element{Props: make(Props, len(props)+1)}
	for k, v := range props {
		if k != ChildrenKey {
			el.Props[k] = v
		}
	}

	switch t := typ.(type) {
	case string:
		el.Kind = KindHost
		el.Tag = t
	case Component:
		if t != nil {
			el.Kind = KindComponent
			el.Comp = t
		}
	case func(Scope, Props) *Element:
		if t != nil {
			el.Kind = KindComponent
			el.Comp = t
		}
	}
	if el.Kind == KindInvalid {
		el.Raw = typ
	}

	el.typ = Type{Kind: el.Kind, Tag: el.Tag}
	if el.Comp != nil {
		el.typ.comp = componentID(el.Comp)
	}

	el.Props[ChildrenKey] = normalizeChildren(children)
	return el
}

// componentID returns the address of the closure c refers to. A func value
// is a single pointer to its closure; the code pointer alone would make
// closures sharing a literal indistinguishable.
func componentID(c Component) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&c))
}

// Text creates a text element.
func Text(s string) *Element {
	return &Element{
		Kind:  KindText,
		Props: Props{NodeValueKey: s, ChildrenKey: []*Element(nil)},
		typ:   Type{Kind: KindText},
	}
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

func normalizeChildren(args []any) []*Element {
	children := make([]*Element, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case *Element:
			if v != nil {
				children = append(children, v)
			}
		case []*Element:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		case string:
			children = append(children, Text(v))
		default:
			children = append(children, Text(fmt.Sprint(v)))
		}
	}
	return children
}
