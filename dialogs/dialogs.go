//go:build js || wasm

// Package dialogs wraps the browser's blocking dialog primitives.
package dialogs

import (
	"syscall/js"
)

func Alert(msg string) {
	js.Global().Call("alert", msg)
}

func Confirm(msg string) bool {
	return js.Global().Call("confirm", msg).Bool()
}

func Prompt(msg string) string {
	result := js.Global().Call("prompt", msg)
	if result.IsNull() || result.IsUndefined() {
		return ""
	}
	return result.String()
}
