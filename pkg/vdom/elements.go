package vdom

// H creates a host element with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, EventHandler, Props, *Element,
// []*Element, string or any other value (rendered as text).
func H(tag string, args ...any) *Element {
	props := make(Props)
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if !v.IsEmpty() {
				props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					props[a.Key] = a.Value
				}
			}

		case EventHandler:
			if v.Event != "" {
				props[v.Event] = v.Handler
			}

		case Props:
			for k, val := range v {
				props[k] = val
			}

		default:
			children = append(children, v)
		}
	}

	return CreateElement(tag, props, children...)
}

// Container elements

// Div creates a <div> element.
func Div(args ...any) *Element { return H("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *Element { return H("span", args...) }

// Section creates a <section> element.
func Section(args ...any) *Element { return H("section", args...) }

// Main creates a <main> element.
func Main(args ...any) *Element { return H("main", args...) }

// Text content

// P creates a <p> element.
func P(args ...any) *Element { return H("p", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *Element { return H("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *Element { return H("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *Element { return H("h3", args...) }

// Lists

// Ul creates a <ul> element.
func Ul(args ...any) *Element { return H("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *Element { return H("ol", args...) }

// Li creates an <li> element.
func Li(args ...any) *Element { return H("li", args...) }

// Forms

// Button creates a <button> element.
func Button(args ...any) *Element { return H("button", args...) }

// Input creates an <input> element.
func Input(args ...any) *Element { return H("input", args...) }

// Label creates a <label> element.
func Label(args ...any) *Element { return H("label", args...) }

// Form creates a <form> element.
func Form(args ...any) *Element { return H("form", args...) }
