// Package logger builds the zerolog logger used by the CLI. The core
// library stays log-free; only the boundaries (ingestion, journals, sweep
// progress) log.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. Unknown or empty levels
// fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}
