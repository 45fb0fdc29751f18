package memhost

import (
	"errors"
	"testing"

	"github.com/vango-dev/vfiber/pkg/vdom"
)

func mustElement(t *testing.T, d *Document, tag string) *Node {
	t.Helper()
	n, err := d.CreateElement(tag)
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", tag, err)
	}
	return n.(*Node)
}

func TestDocumentBuildsTree(t *testing.T) {
	d := New()
	root := d.Container("body")

	ul := mustElement(t, d, "ul")
	a := mustElement(t, d, "li")
	c := mustElement(t, d, "li")
	text, err := d.CreateText("b & c")
	if err != nil {
		t.Fatal(err)
	}
	b := mustElement(t, d, "li")

	steps := []error{
		d.AppendChild(root, ul),
		d.AppendChild(ul, a),
		d.AppendChild(ul, c),
		d.InsertBefore(ul, b, c),
		d.AppendChild(b, text),
		d.SetProperty(ul, "class", "list"),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	want := `<ul class="list"><li></li><li>b &amp; c</li><li></li></ul>`
	if got := root.InnerHTML(); got != want {
		t.Errorf("InnerHTML() = %s, want %s", got, want)
	}
	if got := root.TextContent(); got != "b & c" {
		t.Errorf("TextContent() = %q", got)
	}
	if root.Find("ul") != ul {
		t.Error("Find(ul) should return the list")
	}
	if got := len(root.FindAll("li")); got != 3 {
		t.Errorf("FindAll(li) = %d nodes, want 3", got)
	}

	if got := d.Count(OpCreate, OpCreateText); got != 5 {
		t.Errorf("create ops = %d, want 5", got)
	}
	if got := d.Count(OpInsert); got != 1 {
		t.Errorf("insert ops = %d, want 1", got)
	}
}

func TestDocumentRemoveChild(t *testing.T) {
	d := New()
	root := d.Container("body")
	div := mustElement(t, d, "div")
	span := mustElement(t, d, "span")

	if err := d.AppendChild(root, div); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveChild(root, span); err == nil {
		t.Error("RemoveChild of a non-child should fail")
	}
	if err := d.RemoveChild(root, div); err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 0 || div.Parent != nil {
		t.Error("div should be detached")
	}
	if err := d.InsertBefore(root, span, div); err == nil {
		t.Error("InsertBefore a non-child reference should fail")
	}
}

func TestDocumentAppendMovesNode(t *testing.T) {
	d := New()
	root := d.Container("body")
	a := mustElement(t, d, "a")
	b := mustElement(t, d, "b")
	x := mustElement(t, d, "i")

	for _, err := range []error{d.AppendChild(root, a), d.AppendChild(root, b), d.AppendChild(a, x), d.AppendChild(b, x)} {
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(a.Children) != 0 || len(b.Children) != 1 || x.Parent != b {
		t.Errorf("append should move the node: %s", root.InnerHTML())
	}
}

func TestDocumentTextNodeValue(t *testing.T) {
	d := New()
	n, _ := d.CreateText("a")
	text := n.(*Node)

	if err := d.SetProperty(text, vdom.NodeValueKey, 5); err != nil {
		t.Fatal(err)
	}
	if text.Text != "5" {
		t.Errorf("Text = %q, want 5", text.Text)
	}
	if err := d.RemoveProperty(text, vdom.NodeValueKey); err != nil {
		t.Fatal(err)
	}
	if text.Text != "" {
		t.Errorf("Text = %q, want empty", text.Text)
	}
}

func TestDocumentListeners(t *testing.T) {
	d := New()
	btn := mustElement(t, d, "button")

	var got string
	if err := d.AddListener(btn, "input", func(v string) { got = v }); err != nil {
		t.Fatal(err)
	}
	if err := d.Fire(btn, "input", &vdom.Event{Value: "hi"}); err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("handler saw %q, want hi", got)
	}

	if err := d.RemoveListener(btn, "input", nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Fire(btn, "input", nil); err == nil {
		t.Error("Fire without a listener should fail")
	}

	if err := d.AddListener(btn, "click", 42); err != nil {
		t.Fatal(err)
	}
	if err := d.Fire(btn, "click", nil); err == nil {
		t.Error("Fire with an unsupported handler should fail")
	}
}

func TestDocumentFail(t *testing.T) {
	d := New()
	boom := errors.New("boom")
	d.Fail = func(kind OpKind, _ *Node) error {
		if kind == OpCreate {
			return boom
		}
		return nil
	}

	if _, err := d.CreateElement("div"); !errors.Is(err, boom) {
		t.Errorf("CreateElement error = %v, want boom", err)
	}
	if _, err := d.CreateText("ok"); err != nil {
		t.Errorf("CreateText error = %v", err)
	}
	if d.Count() != 1 {
		t.Errorf("failed ops should not be recorded, got %d ops", d.Count())
	}
}

func TestDocumentForeignNode(t *testing.T) {
	d := New()
	if err := d.SetProperty("not a node", "x", 1); err == nil {
		t.Error("SetProperty on a foreign node should fail")
	}
	if err := d.AppendChild(d.Container("div"), nil); err == nil {
		t.Error("AppendChild of nil should fail")
	}
}

func TestOpString(t *testing.T) {
	d := New()
	root := d.Container("body")
	div := mustElement(t, d, "div")
	_ = d.SetProperty(div, "class", "b")
	_ = d.AppendChild(root, div)

	ops := d.Ops()
	want := []string{
		"create <div#2>",
		"set_prop <div#2> class=b",
		"append <div#2> -> <body#1>",
	}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v", ops)
	}
	for i := range want {
		if ops[i].String() != want[i] {
			t.Errorf("ops[%d] = %q, want %q", i, ops[i].String(), want[i])
		}
	}
	if !OpAppend.Structural() || OpSetProp.Structural() {
		t.Error("Structural() misclassifies ops")
	}

	d.Reset()
	if d.Count() != 0 {
		t.Error("Reset should clear ops")
	}
}
