// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the binder, the CLI, and the preview server.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a JSON logger tagged with role. A nil w writes to stderr,
// keeping stdout free for rendered pages.
func NewLogger(role string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// NewConsoleLogger creates a human-readable logger for interactive use.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(role, zerolog.ConsoleWriter{Out: w, NoColor: true})
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger inheriting the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx by WithContext. Without one,
// zerolog's default logger is returned, so this never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
