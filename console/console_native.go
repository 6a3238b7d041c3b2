//go:build !js && !wasm

// Native backend for the console facade. Tests and tooling run without
// a browser console, so output goes through zerolog to stderr.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

func sprint(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func Log(args ...any) {
	logger.Info().Msg(sprint(args...))
}

func Warn(args ...any) {
	logger.Warn().Msg(sprint(args...))
}

func Error(args ...any) {
	logger.Error().Msg(sprint(args...))
}

// Debug emits a low-severity diagnostic, dropped unless the global
// zerolog level is lowered to debug.
func Debug(args ...any) {
	logger.Debug().Msg(sprint(args...))
}
