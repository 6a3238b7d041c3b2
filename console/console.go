//go:build js || wasm

// Package console is the framework's logging facade. Under js/wasm it
// forwards to the browser console; native builds route through zerolog
// so test runs and tooling get structured output on stderr.
package console

import (
	"syscall/js"
)

func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

func Warn(args ...any) {
	js.Global().Get("console").Call("warn", args...)
}

func Error(args ...any) {
	js.Global().Get("console").Call("error", args...)
}

// Debug emits a low-severity diagnostic. Browsers hide these unless
// verbose logging is enabled, which keeps optional diagnostics (such as
// event-binding lookup misses) out of the default console.
func Debug(args ...any) {
	js.Global().Get("console").Call("debug", args...)
}
