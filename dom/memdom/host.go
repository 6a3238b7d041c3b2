// Package memdom is the in-memory rendering host. It implements the
// dom contract with plain Go values so components and the router can be
// exercised natively, without a browser or wasm toolchain.
package memdom

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/umbra/dom"
)

// Host is the in-memory rendering host. Parsed markup is cached per
// template string; every scope receives a deep clone, so no two scopes
// ever share mutable content.
type Host struct {
	mu        sync.Mutex
	templates map[string]*node
	defined   map[string]bool
}

// Compile-time assertion that Host satisfies the dom.Host contract.
var _ dom.Host = (*Host)(nil)

// NewHost creates an in-memory host with an empty template cache.
func NewHost() *Host {
	return &Host{
		templates: make(map[string]*node),
		defined:   make(map[string]bool),
	}
}

// NewScope parses markup and returns a fresh encapsulated scope root
// holding a deep copy of the parsed content. The same markup string is
// parsed once; later scopes clone the cached template.
func (h *Host) NewScope(markup string) (dom.Element, error) {
	h.mu.Lock()
	tpl, ok := h.templates[markup]
	h.mu.Unlock()

	if !ok {
		parsed, err := parseTemplate(markup)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		h.templates[markup] = parsed
		h.mu.Unlock()
		tpl = parsed
	}
	return tpl.clone(), nil
}

// DefineTag records a custom tag name. Redefining is a no-op.
func (h *Host) DefineTag(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("memdom: empty tag name")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defined[name] = true
	return nil
}

// Defined reports whether the tag was registered with the host.
func (h *Host) Defined(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.defined[strings.ToLower(name)]
}

// NewElement creates a detached element, e.g. a mount location for the
// router in tests.
func (h *Host) NewElement(tag string) dom.Element {
	return newNode(tag)
}

// parseTemplate parses markup into a detached scope-root node tagged
// "#fragment". Whitespace-only markup and markup yielding no elements
// are construction failures.
func parseTemplate(markup string) (*node, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: empty template", dom.ErrBadMarkup)
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dom.ErrBadMarkup, err)
	}

	root := newNode("#fragment")
	for _, hn := range parsed {
		appendParsed(root, hn)
	}
	if len(root.children) == 0 {
		return nil, fmt.Errorf("%w: no elements in template", dom.ErrBadMarkup)
	}
	return root, nil
}

// appendParsed converts an x/net/html node into the memdom tree.
// Text is attached to the nearest element; comments are dropped.
func appendParsed(parent *node, hn *html.Node) {
	switch hn.Type {
	case html.TextNode:
		text := strings.TrimSpace(hn.Data)
		if text == "" {
			return
		}
		if parent.text == "" {
			parent.text = text
		} else {
			parent.text += " " + text
		}
	case html.ElementNode:
		n := newNode(hn.Data)
		for _, a := range hn.Attr {
			n.attrs[strings.ToLower(a.Key)] = a.Val
		}
		if inputTags[n.tag] {
			n.value = n.attrs["value"]
		}
		n.parent = parent
		parent.children = append(parent.children, n)
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			appendParsed(n, c)
		}
	}
}
