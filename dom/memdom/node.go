package memdom

import (
	"strings"

	"github.com/vcrobe/umbra/dom"
)

// node is the in-memory element implementation. A node tree is owned by
// exactly one render scope; clones never share state with the template
// they were copied from.
type node struct {
	tag       string
	attrs     map[string]string
	text      string
	value     string
	parent    *node
	children  []*node
	listeners map[string][]dom.EventHandler
}

// Compile-time assertion that node implements the dom.Element contract.
var _ dom.Element = (*node)(nil)

// inputTags are the element tags whose Value/SetValue are meaningful.
var inputTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
}

func newNode(tag string) *node {
	return &node{
		tag:       strings.ToLower(tag),
		attrs:     make(map[string]string),
		listeners: make(map[string][]dom.EventHandler),
	}
}

func (n *node) TagName() string { return n.tag }

func (n *node) Attr(name string) (string, bool) {
	v, ok := n.attrs[strings.ToLower(name)]
	return v, ok
}

func (n *node) SetAttr(name, value string) {
	n.attrs[strings.ToLower(name)] = value
}

// Text returns the node's own text followed by the text of every
// descendant, in document order.
func (n *node) Text() string {
	var b strings.Builder
	n.collectText(&b)
	return strings.TrimSpace(b.String())
}

func (n *node) collectText(b *strings.Builder) {
	if n.text != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.text)
	}
	for _, c := range n.children {
		c.collectText(b)
	}
}

// SetText replaces the node's content, dropping any children. This
// mirrors the textContent assignment semantics of the browser host.
func (n *node) SetText(text string) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.text = text
}

func (n *node) Value() string {
	if !inputTags[n.tag] {
		return ""
	}
	return n.value
}

func (n *node) SetValue(value string) {
	if inputTags[n.tag] {
		n.value = value
	}
}

func (n *node) QuerySelector(selector string) dom.Element {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	found := n.query(sel, true)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func (n *node) QuerySelectorAll(selector string) []dom.Element {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	found := n.query(sel, false)
	out := make([]dom.Element, len(found))
	for i, f := range found {
		out[i] = f
	}
	return out
}

// query walks descendants of n in document order, collecting matches of
// sel. The receiver itself is never a candidate: lookups resolve
// descendants only.
func (n *node) query(sel selector, firstOnly bool) []*node {
	var out []*node
	var walk func(c *node) bool
	walk = func(c *node) bool {
		if sel.matches(c, n) {
			out = append(out, c)
			if firstOnly {
				return true
			}
		}
		for _, child := range c.children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	for _, child := range n.children {
		if walk(child) {
			break
		}
	}
	return out
}

func (n *node) AppendChild(child dom.Element) {
	c, ok := child.(*node)
	if !ok || c == nil {
		return
	}
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
}

func (n *node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *node) Children() []dom.Element {
	out := make([]dom.Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Parent() dom.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) AddEventListener(event string, h dom.EventHandler) {
	if h == nil {
		return
	}
	event = strings.ToLower(event)
	n.listeners[event] = append(n.listeners[event], h)
}

// Dispatch invokes every handler attached to this node for the named
// event. Events do not bubble; callers dispatch on the exact target.
func (n *node) Dispatch(event string) {
	event = strings.ToLower(event)
	handlers := n.listeners[event]
	ev := dom.Event{Type: event, Target: n}
	for _, h := range handlers {
		h(ev)
	}
}

// clone deep-copies the subtree rooted at n. Listeners are never
// copied: a fresh scope starts with no bindings.
func (n *node) clone() *node {
	c := newNode(n.tag)
	c.text = n.text
	c.value = n.value
	for k, v := range n.attrs {
		c.attrs[k] = v
	}
	for _, child := range n.children {
		cc := child.clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

func (n *node) hasClass(name string) bool {
	for _, c := range strings.Fields(n.attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}
