// Package logging configures the zerolog logger used for diagnostics. Logs go
// to stderr so they never mix with rendered output on stdout.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LevelFor maps a -v count to a level: warn by default, then info, debug
// and trace. debug forces at least debug.
func LevelFor(verbosity int, debug bool) zerolog.Level {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 3:
		level = zerolog.TraceLevel
	case verbosity == 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	if debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	return level
}

// New returns a console logger writing to w at the level chosen by
// LevelFor.
func New(w io.Writer, verbosity int, debug bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	logger := zerolog.New(console).
		Level(LevelFor(verbosity, debug)).
		With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	return logger
}
