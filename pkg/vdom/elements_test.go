package vdom

import "testing"

func TestH(t *testing.T) {
	clicked := false
	el := Div(
		Class("card", "wide"),
		ID("main"),
		nil,
		If(false, Title("hidden")),
		[]Attr{Data("id", "7"), Style("color: red")},
		Props{"tabindex": 0},
		OnClick(func() { clicked = true }),
		H1("Title"),
		"trailing text",
	)

	if el.Tag != "div" {
		t.Fatalf("Tag = %q, want div", el.Tag)
	}

	wantProps := map[string]any{
		"class":    "card wide",
		"id":       "main",
		"data-id":  "7",
		"style":    "color: red",
		"tabindex": 0,
	}
	for k, want := range wantProps {
		if got := el.Props[k]; got != want {
			t.Errorf("Props[%q] = %v, want %v", k, got, want)
		}
	}
	if _, ok := el.Props["title"]; ok {
		t.Error("If(false, ...) should not set a property")
	}

	handler, ok := el.Props["onclick"]
	if !ok {
		t.Fatal("onclick handler missing")
	}
	Dispatch(handler, &Event{Type: "click"})
	if !clicked {
		t.Error("onclick handler was not invoked")
	}

	children := el.Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if children[0].Tag != "h1" || children[0].Children()[0].Text() != "Title" {
		t.Errorf("children[0] = %v", children[0])
	}
	if children[1].Text() != "trailing text" {
		t.Errorf("children[1] = %v", children[1])
	}
}

func TestTagHelpers(t *testing.T) {
	tests := []struct {
		el  *Element
		tag string
	}{
		{Div(), "div"},
		{Span(), "span"},
		{Section(), "section"},
		{Main(), "main"},
		{P(), "p"},
		{H1(), "h1"},
		{H2(), "h2"},
		{H3(), "h3"},
		{Ul(), "ul"},
		{Ol(), "ol"},
		{Li(), "li"},
		{Button(), "button"},
		{Input(), "input"},
		{Label(), "label"},
		{Form(), "form"},
	}
	for _, tt := range tests {
		if tt.el.Tag != tt.tag || tt.el.Kind != KindHost {
			t.Errorf("got %v/%q, want Host/%q", tt.el.Kind, tt.el.Tag, tt.tag)
		}
	}
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		attr Attr
		key  string
		val  any
	}{
		{Prop("x", 1), "x", 1},
		{Value("v"), "value", "v"},
		{InputType("text"), "type", "text"},
		{Placeholder("p"), "placeholder", "p"},
		{Disabled(true), "disabled", true},
		{Checked(false), "checked", false},
		{Title("t"), "title", "t"},
	}
	for _, tt := range tests {
		if tt.attr.Key != tt.key || tt.attr.Value != tt.val {
			t.Errorf("Attr = %+v, want %s=%v", tt.attr, tt.key, tt.val)
		}
	}
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
}
