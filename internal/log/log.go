// Package log provides the leveled logger used by the codec and the CLI.
// Records are rendered on one line as "LEVEL message key=value ...".
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a thin wrapper over slog.Logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes records at lvl or above to w.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{
		w:     w,
		level: lvl,
		mu:    new(sync.Mutex),
	})}
}

// WithName builds a new logger whose attributes are grouped under name.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.Logger = l.WithGroup(name)
	return &out
}

// OrDiscard returns l, or Discard if l is nil.
func (l *Logger) OrDiscard() *Logger {
	if l == nil {
		return Discard
	}
	return l
}
