//go:build js || wasm

package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/vcrobe/umbra/dom"
)

// element wraps a DOM element. For a scope root, shadow holds the
// shadow root: child-facing operations (queries, append, children) use
// it, element-facing ones (attributes, removal, parent) use v.
type element struct {
	host   *Host
	v      js.Value
	shadow js.Value
}

var _ dom.Element = (*element)(nil)

var jsInputTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
}

// inner is the node child-facing calls resolve against.
func (e *element) inner() js.Value {
	if e.shadow.Truthy() {
		return e.shadow
	}
	return e.v
}

func (e *element) wrap(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &element{host: e.host, v: v}
}

func (e *element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (e *element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) Text() string {
	return strings.TrimSpace(e.inner().Get("textContent").String())
}

func (e *element) SetText(text string) {
	e.inner().Set("textContent", text)
}

func (e *element) Value() string {
	if !jsInputTags[e.TagName()] {
		return ""
	}
	return e.v.Get("value").String()
}

func (e *element) SetValue(value string) {
	if jsInputTags[e.TagName()] {
		e.v.Set("value", value)
	}
}

func (e *element) QuerySelector(selector string) dom.Element {
	return e.wrap(e.inner().Call("querySelector", selector))
}

func (e *element) QuerySelectorAll(selector string) []dom.Element {
	list := e.inner().Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.wrap(list.Index(i)))
	}
	return out
}

func (e *element) AppendChild(child dom.Element) {
	c, ok := child.(*element)
	if !ok || c == nil {
		return
	}
	e.inner().Call("appendChild", c.v)
}

func (e *element) Remove() {
	e.v.Call("remove")
}

func (e *element) Children() []dom.Element {
	coll := e.inner().Get("children")
	n := coll.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.wrap(coll.Index(i)))
	}
	return out
}

func (e *element) Parent() dom.Element {
	return e.wrap(e.v.Get("parentElement"))
}

func (e *element) AddEventListener(event string, h dom.EventHandler) {
	if h == nil {
		return
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		h(dom.Event{Type: event, Target: e})
		return nil
	})
	e.host.track(cb)
	e.v.Call("addEventListener", event, cb)
}

func (e *element) Dispatch(event string) {
	ev := js.Global().Get("Event").New(event)
	e.v.Call("dispatchEvent", ev)
}
