// Package demo holds the components rendered by the CLI demo and the live
// server.
package demo

import (
	"slices"
	"sort"
	"strings"

	"github.com/vango-dev/vfiber/pkg/fiber"
	"github.com/vango-dev/vfiber/pkg/vdom"
)

var components = map[string]vdom.Component{
	"counter": Counter,
	"todo":    TodoList,
}

// Lookup returns the demo component registered under name.
func Lookup(name string) (vdom.Component, bool) {
	c, ok := components[strings.ToLower(name)]
	return c, ok
}

// Names returns the registered component names, sorted.
func Names() []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counter renders a count with decrement and increment buttons. The
// "start" prop sets the initial count.
func Counter(s vdom.Scope, p vdom.Props) *vdom.Element {
	start, _ := p["start"].(int)
	n, set := fiber.UseState(s, start)

	return vdom.Div(vdom.Class("counter"),
		vdom.H1(vdom.Textf("Count: %d", n)),
		vdom.Button(vdom.Class("dec"), vdom.OnClick(func() { set(func(v int) int { return v - 1 }) }), "-"),
		vdom.Button(vdom.Class("inc"), vdom.OnClick(func() { set(func(v int) int { return v + 1 }) }), "+"),
	)
}

// Todo is one todo list entry.
type Todo struct {
	Title string
	Done  bool
}

// TodoList renders a form with an input and an add button, the list of
// entries and the count of open ones. Submitting the form or clicking add
// appends the draft; Escape in the input clears it; double-clicking the
// count drops finished entries.
func TodoList(s vdom.Scope, _ vdom.Props) *vdom.Element {
	items, setItems := fiber.UseState[[]Todo](s, nil)
	draft, setDraft := fiber.UseState(s, "")

	add := func() {
		title := strings.TrimSpace(draft)
		if title == "" {
			return
		}
		setItems(func(prev []Todo) []Todo {
			return append(slices.Clone(prev), Todo{Title: title})
		})
		setDraft(fiber.Set(""))
	}

	list := make([]*vdom.Element, 0, len(items))
	for i, item := range items {
		i := i
		list = append(list, vdom.CreateElement(TodoItem, vdom.Props{
			"todo": item,
			"toggle": func() {
				setItems(func(prev []Todo) []Todo {
					next := slices.Clone(prev)
					next[i].Done = !next[i].Done
					return next
				})
			},
			"remove": func() {
				setItems(func(prev []Todo) []Todo {
					return slices.Delete(slices.Clone(prev), i, i+1)
				})
			},
		}))
	}

	clearDraft := func(ev *vdom.Event) {
		if ev.Value == "Escape" {
			setDraft(fiber.Set(""))
		}
	}
	clearDone := func() {
		setItems(func(prev []Todo) []Todo {
			return slices.DeleteFunc(slices.Clone(prev), func(t Todo) bool { return t.Done })
		})
	}

	remaining := 0
	for _, item := range items {
		if !item.Done {
			remaining++
		}
	}

	return vdom.Section(vdom.Class("todo"),
		vdom.Form(vdom.OnSubmit(add),
			vdom.Input(vdom.InputType("text"), vdom.Placeholder("What needs doing?"), vdom.Value(draft),
				vdom.OnInput(func(v string) { setDraft(fiber.Set(v)) }),
				vdom.OnKeyDown(clearDraft)),
			vdom.Button(vdom.Class("add"), vdom.OnClick(add), "Add"),
		),
		vdom.Ul(list),
		vdom.P(vdom.Class("remaining"), vdom.OnDblClick(clearDone), vdom.Textf("%d left", remaining)),
	)
}

// TodoItem renders one entry. Props: "todo" (Todo), "toggle" and "remove"
// (func()).
func TodoItem(_ vdom.Scope, p vdom.Props) *vdom.Element {
	item, _ := p["todo"].(Todo)
	toggle, _ := p["toggle"].(func())
	remove, _ := p["remove"].(func())

	return vdom.Li(
		vdom.If(item.Done, vdom.Class("done")),
		vdom.Span(vdom.OnClick(toggle), item.Title),
		vdom.Button(vdom.Class("remove"), vdom.OnClick(remove), "x"),
	)
}
