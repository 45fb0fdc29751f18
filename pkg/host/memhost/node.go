package memhost

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/vango-dev/vfiber/pkg/vdom"
)

// Node is an in-memory host node.
type Node struct {
	Tag       string
	Text      string // for text nodes
	Props     map[string]any
	Listeners map[string]any
	Children  []*Node
	Parent    *Node

	id int
}

// ID returns the node's creation sequence number.
func (n *Node) ID() int {
	return n.id
}

func (n *Node) label() string {
	if n == nil {
		return "<nil>"
	}
	if n.Tag == TextTag {
		return fmt.Sprintf("#text%d(%q)", n.id, n.Text)
	}
	return fmt.Sprintf("<%s#%d>", n.Tag, n.id)
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	if n.Parent == nil {
		return
	}
	p := n.Parent
	if idx := p.indexOf(n); idx >= 0 {
		p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
	}
	n.Parent = nil
}

// Find returns the first descendant (depth-first, including n) with tag.
func (n *Node) Find(tag string) *Node {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Tag == tag {
			return cur
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return nil
}

// FindAll returns every descendant (depth-first, including n) with tag.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Tag == tag {
			out = append(out, cur)
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return out
}

// TextContent concatenates the text of every descendant text node.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Tag == TextTag {
		b.WriteString(n.Text)
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// InnerHTML renders the node's children as markup.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.Children {
		c.writeHTML(&b)
	}
	return b.String()
}

// String renders the node as markup. Listeners are not rendered.
func (n *Node) String() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.Tag == TextTag {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteString("<")
	b.WriteString(n.Tag)
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(vdom.PropToString(n.Props[k])))
	}
	b.WriteString(">")
	for _, c := range n.Children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
