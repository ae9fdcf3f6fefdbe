// Package diaglog builds the structured logger the CLI configures from
// cliconfig, and adapts osshkey's parse-time warnings onto it.
package diaglog

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var levelsByName = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

func levelFor(name string) slog.Level {
	if lvl, ok := levelsByName[strings.ToLower(name)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// NewLogger builds the logger the CLI uses both for its own output and,
// via NewSlogDiagnostics, for warnings raised while parsing a key.
// Unrecognized levels fall back to info; format "json" selects a JSON
// handler, anything else a text handler.
func NewLogger(level, format string) *slog.Logger {
	return newLoggerWithWriter(level, format, os.Stderr)
}

func newLoggerWithWriter(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(level)}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NopLogger discards everything; useful wherever a Diagnostics sink is
// wanted without wiring up real output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// KeyKeyIndex is the structured attribute SlogDiagnostics attaches to a
// warning that concerns a specific key pair.
const KeyKeyIndex = "key_index"
