package logger

import (
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/rs/zerolog"
	"io"
	"os"
	"time"
)

// New - Returns a logger writing to stderr
//   - level is a zerolog level name, an unknown level falls back to info
//   - format is either conf.LogFormatConsole or conf.LogFormatJSON
func New(level, format string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter - Returns a logger writing to w
func NewWithWriter(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format != conf.LogFormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
