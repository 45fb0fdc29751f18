package demo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/host/memhost"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

type app struct {
	t      *testing.T
	doc    *memhost.Document
	root   *memhost.Node
	engine *fiber.Engine
}

func mount(t *testing.T, el *vdom.Element) *app {
	t.Helper()
	doc := memhost.New()
	a := &app{
		t:      t,
		doc:    doc,
		root:   doc.Container("body"),
		engine: fiber.New(doc, nil, fiber.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
	}
	if err := a.engine.Render(el, a.root); err != nil {
		t.Fatal(err)
	}
	a.flush()
	return a
}

func (a *app) flush() {
	a.t.Helper()
	if err := a.engine.Flush(); err != nil {
		a.t.Fatalf("Flush: %v", err)
	}
}

func (a *app) fire(n *memhost.Node, event, value string) {
	a.t.Helper()
	if n == nil {
		a.t.Fatalf("no node to fire %s on", event)
	}
	if err := a.doc.Fire(n, event, &vdom.Event{Value: value}); err != nil {
		a.t.Fatal(err)
	}
	a.flush()
}

func (a *app) byClass(class string) *memhost.Node {
	var found *memhost.Node
	for _, tag := range []string{"button", "p", "li"} {
		for _, n := range a.root.FindAll(tag) {
			if n.Props["class"] == class && found == nil {
				found = n
			}
		}
	}
	return found
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup("COUNTER"); !ok {
		t.Error("Lookup should ignore case")
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestCounter(t *testing.T) {
	a := mount(t, vdom.CreateElement(Counter, vdom.Props{"start": 5}))
	if got := a.root.Find("h1").TextContent(); got != "Count: 5" {
		t.Fatalf("heading = %q", got)
	}

	a.fire(a.byClass("inc"), "click", "")
	a.fire(a.byClass("inc"), "click", "")
	a.fire(a.byClass("dec"), "click", "")

	if got := a.root.Find("h1").TextContent(); got != "Count: 6" {
		t.Errorf("heading = %q, want Count: 6", got)
	}
}

func TestTodoList(t *testing.T) {
	a := mount(t, vdom.CreateElement(TodoList, nil))
	input := a.root.Find("input")

	for _, title := range []string{"milk", "  ", "eggs"} {
		a.fire(input, "input", title)
		a.fire(a.byClass("add"), "click", "")
	}

	items := a.root.FindAll("li")
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (blank titles are skipped)", len(items))
	}
	if items[0].TextContent() != "milkx" || items[1].TextContent() != "eggsx" {
		t.Errorf("items = %q, %q", items[0].TextContent(), items[1].TextContent())
	}
	if a.root.Find("input") != input {
		t.Error("input host node should be reused")
	}
	if got := input.Props["value"]; got != "" {
		t.Errorf("draft = %v, want cleared", got)
	}
	if got := a.byClass("remaining").TextContent(); got != "2 left" {
		t.Errorf("remaining = %q", got)
	}

	a.fire(items[0].Find("span"), "click", "")
	if a.root.FindAll("li")[0].Props["class"] != "done" {
		t.Error("first item should be marked done")
	}
	if got := a.byClass("remaining").TextContent(); got != "1 left" {
		t.Errorf("remaining = %q, want 1 left", got)
	}

	a.fire(a.root.FindAll("li")[0].Find("button"), "click", "")
	items = a.root.FindAll("li")
	if len(items) != 1 || items[0].TextContent() != "eggsx" {
		t.Fatalf("after remove: %s", a.root.InnerHTML())
	}
	if _, ok := items[0].Props["class"]; ok {
		t.Error("remaining item should not be done")
	}
}

func TestTodoListFormAndKeys(t *testing.T) {
	a := mount(t, vdom.CreateElement(TodoList, nil))
	input := a.root.Find("input")

	a.fire(input, "input", "bread")
	a.fire(a.root.Find("form"), "submit", "")
	a.fire(input, "input", "jam")
	a.fire(input, "keydown", "Escape")
	a.fire(a.root.Find("form"), "submit", "")

	items := a.root.FindAll("li")
	if len(items) != 1 || items[0].TextContent() != "breadx" {
		t.Fatalf("after submit and escape: %s", a.root.InnerHTML())
	}

	a.fire(input, "input", "tea")
	a.fire(input, "keydown", "Enter")
	if got := input.Props["value"]; got != "tea" {
		t.Errorf("draft = %v, only Escape should clear it", got)
	}
	a.fire(a.root.Find("form"), "submit", "")

	a.fire(a.root.FindAll("li")[0].Find("span"), "click", "")
	a.fire(a.byClass("remaining"), "dblclick", "")
	items = a.root.FindAll("li")
	if len(items) != 1 || items[0].TextContent() != "teax" {
		t.Errorf("after clearing done: %s", a.root.InnerHTML())
	}
	if got := a.byClass("remaining").TextContent(); got != "1 left" {
		t.Errorf("remaining = %q", got)
	}
}
