package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a structured console logger. It is the one place the
// CLI touches zerolog directly — the cryptovault engine package imports no
// logging library and keeps no global state, so every log line here
// is built from paths, sizes, and error kinds, never passphrase or key
// bytes.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
