package vdom

import "testing"

func counter(s Scope, props Props) *Element { return Div() }

func label(s Scope, props Props) *Element { return Span() }

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHost, "Host"},
		{KindComponent, "Component"},
		{KindText, "Text"},
		{KindInvalid, "Invalid"},
		{Kind(99), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElementHost(t *testing.T) {
	props := Props{"class": "a"}
	el := CreateElement("div", props, "hello", Span())

	if el.Kind != KindHost || el.Tag != "div" {
		t.Fatalf("Kind/Tag = %v/%q, want Host/div", el.Kind, el.Tag)
	}
	if el.Props["class"] != "a" {
		t.Errorf("class = %v, want a", el.Props["class"])
	}

	children := el.Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if children[0].Kind != KindText || children[0].Text() != "hello" {
		t.Errorf("children[0] = %v, want text hello", children[0])
	}
	if children[1].Kind != KindHost || children[1].Tag != "span" {
		t.Errorf("children[1] = %v, want <span>", children[1])
	}
}

func TestCreateElementCopiesProps(t *testing.T) {
	props := Props{"class": "a"}
	el := CreateElement("div", props)
	props["class"] = "b"

	if el.Props["class"] != "a" {
		t.Error("CreateElement should shallow-copy props")
	}
	if _, ok := props[ChildrenKey]; ok {
		t.Error("CreateElement should not write children into the caller's props")
	}
}

func TestCreateElementIgnoresChildrenProp(t *testing.T) {
	el := CreateElement("div", Props{ChildrenKey: []*Element{Span()}}, P())
	children := el.Children()
	if len(children) != 1 || children[0].Tag != "p" {
		t.Errorf("children = %v, want only <p>", children)
	}
}

func TestCreateElementComponent(t *testing.T) {
	el := CreateElement(counter, Props{"start": 1})
	if el.Kind != KindComponent {
		t.Fatalf("Kind = %v, want Component", el.Kind)
	}
	if el.Comp == nil {
		t.Fatal("Comp should be set")
	}

	typed := CreateElement(Component(counter), nil)
	if typed.Kind != KindComponent {
		t.Errorf("Component-typed value: Kind = %v, want Component", typed.Kind)
	}
	if typed.Type() != el.Type() {
		t.Error("same component function should have the same Type")
	}

	other := CreateElement(label, nil)
	if other.Type() == el.Type() {
		t.Error("different component functions should have different Types")
	}
}

func labelled(text string) Component {
	return func(s Scope, props Props) *Element { return P(text) }
}

func TestComponentIdentityIsTheFunctionValue(t *testing.T) {
	var comps []Component
	for _, l := range []string{"a", "b"} {
		comps = append(comps, labelled(l))
	}

	a, b := CreateElement(comps[0], nil), CreateElement(comps[1], nil)
	if a.Type() == b.Type() {
		t.Error("closures from one factory should have different Types")
	}
	if CreateElement(comps[0], Props{"x": 1}).Type() != a.Type() {
		t.Error("the same closure should keep its Type across elements")
	}

	var plain func(Scope, Props) *Element = counter
	if CreateElement(plain, nil).Type() != CreateElement(Component(counter), nil).Type() {
		t.Error("a package-level function should have a single Type")
	}
}

func TestCreateElementInvalid(t *testing.T) {
	tests := []struct {
		name string
		typ  any
	}{
		{"int", 42},
		{"nil", nil},
		{"nil component", Component(nil)},
		{"wrong func", func() {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := CreateElement(tt.typ, nil)
			if el.Kind != KindInvalid {
				t.Errorf("Kind = %v, want Invalid", el.Kind)
			}
		})
	}
}

func TestNormalizeChildren(t *testing.T) {
	var nilElement *Element
	el := CreateElement("ul", nil,
		nil,
		nilElement,
		[]*Element{Li(), nil, Li()},
		7,
		true,
	)

	children := el.Children()
	if len(children) != 4 {
		t.Fatalf("len(children) = %d, want 4", len(children))
	}
	if children[2].Text() != "7" {
		t.Errorf("children[2] = %q, want 7", children[2].Text())
	}
	if children[3].Text() != "true" {
		t.Errorf("children[3] = %q, want true", children[3].Text())
	}
}

func TestTextElement(t *testing.T) {
	a := Text("a")
	b := Textf("count: %d", 2)

	if a.Kind != KindText {
		t.Errorf("Kind = %v, want Text", a.Kind)
	}
	if b.Text() != "count: 2" {
		t.Errorf("Text() = %q, want count: 2", b.Text())
	}
	if a.Type() != b.Type() {
		t.Error("all text elements should share a Type")
	}
	if len(a.Children()) != 0 {
		t.Error("text elements have no children")
	}
}

func TestElementTypeHost(t *testing.T) {
	if Div().Type() != Div(Class("x")).Type() {
		t.Error("elements with the same tag should share a Type")
	}
	if Div().Type() == Span().Type() {
		t.Error("different tags should not share a Type")
	}
	if Div().Type() == Text("div").Type() {
		t.Error("text and host should not share a Type")
	}
}

func TestElementString(t *testing.T) {
	tests := []struct {
		el   *Element
		want string
	}{
		{Div(), "<div>"},
		{Text("hi"), `"hi"`},
		{CreateElement(counter, nil), "component"},
		{CreateElement(3, nil), "invalid(int)"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
