//go:build js || wasm

// Package jsdom is the browser rendering host. Render scopes are
// shadow roots attached to detached container elements; queries and
// event listeners go straight to the real DOM via syscall/js.
package jsdom

import (
	"fmt"
	"strings"
	"sync"
	"syscall/js"

	"github.com/vcrobe/umbra/dom"
)

// Host is the browser host. It tracks js.Func callbacks so they can be
// released when the application shuts down.
type Host struct {
	mu      sync.Mutex
	defined map[string]bool
	funcs   []js.Func
}

var _ dom.Host = (*Host)(nil)

// NewHost creates a browser host. It panics outside a browsing context
// (no global document), which is a bootstrap error.
func NewHost() *Host {
	if !js.Global().Get("document").Truthy() {
		panic("jsdom: no document in global scope")
	}
	return &Host{defined: make(map[string]bool)}
}

// NewScope builds an encapsulated subtree: a detached container with an
// open shadow root holding a deep clone of the parsed markup. Each call
// clones fresh content, so scopes never share nodes.
func (h *Host) NewScope(markup string) (dom.Element, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: empty template", dom.ErrBadMarkup)
	}
	doc := js.Global().Get("document")
	tpl := doc.Call("createElement", "template")
	tpl.Set("innerHTML", markup)
	content := tpl.Get("content")
	if content.Get("childElementCount").Int() == 0 {
		return nil, fmt.Errorf("%w: no elements in template", dom.ErrBadMarkup)
	}

	container := doc.Call("createElement", "div")
	shadow := container.Call("attachShadow", map[string]any{"mode": "open"})
	shadow.Call("appendChild", content.Call("cloneNode", true))
	return &element{host: h, v: container, shadow: shadow}, nil
}

// DefineTag records a custom tag with the host. Tags must contain a
// hyphen, matching the browser's custom-element naming rule.
func (h *Host) DefineTag(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("jsdom: empty tag name")
	}
	if !strings.Contains(name, "-") {
		return fmt.Errorf("jsdom: custom tag %q must contain a hyphen", name)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defined[name] = true
	return nil
}

// QueryDocument resolves a selector against the whole document. The
// bootstrap uses it once to locate the router's mount element; scoped
// code never should.
func (h *Host) QueryDocument(selector string) dom.Element {
	v := js.Global().Get("document").Call("querySelector", selector)
	if !v.Truthy() {
		return nil
	}
	return &element{host: h, v: v}
}

// Release frees every js.Func the host handed to the browser.
func (h *Host) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, f := range h.funcs {
		f.Release()
	}
	h.funcs = nil
}

func (h *Host) track(f js.Func) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.funcs = append(h.funcs, f)
}
