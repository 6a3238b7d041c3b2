//go:build js || wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/umbra/console"
)

// BrowserHistory reflects navigation into the browser's location and
// session history via pushState and the popstate event.
type BrowserHistory struct {
	fn       func(path string)
	popstate js.Func
}

var _ History = (*BrowserHistory)(nil)

// NewBrowserHistory creates a History over window.history.
func NewBrowserHistory() *BrowserHistory {
	return &BrowserHistory{}
}

func (h *BrowserHistory) Push(path string) {
	js.Global().Get("history").Call("pushState", nil, "", path)
}

func (h *BrowserHistory) Location() string {
	return js.Global().Get("location").Get("pathname").String()
}

func (h *BrowserHistory) Listen(fn func(path string)) {
	h.fn = fn
	h.popstate = js.FuncOf(func(this js.Value, args []js.Value) any {
		path := js.Global().Get("location").Get("pathname").String()
		console.Debug("popstate:", path)
		if h.fn != nil {
			h.fn(path)
		}
		return nil
	})
	js.Global().Call("addEventListener", "popstate", h.popstate)
}

func (h *BrowserHistory) Close() {
	if !h.popstate.IsUndefined() {
		js.Global().Call("removeEventListener", "popstate", h.popstate)
		h.popstate.Release()
	}
	h.fn = nil
}

func defaultHistory() History {
	return NewBrowserHistory()
}
