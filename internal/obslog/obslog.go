// Package obslog gives the CLI driver structured, leveled logging of
// parse/build/write diagnostics. The engine packages never log — they
// report failures as jsonerr.Error values per spec.md §7 — so this
// wrapper only exists above the engine, in the driver layer SPEC_FULL.md
// §6 adds. Grounded on charm.land/log/v2, the logging library the
// MacroPower-x and XTheocharis-crush repos in the example pack depend on.
package obslog

import (
	"io"

	"charm.land/log/v2"

	"github.com/mcvoid/jsontree/internal/jsonerr"
)

// Logger wraps a *log.Logger configured for the jsontree CLI.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to w (the CLI command's error stream).
// debug enables debug-level output (parse/build/write step tracing);
// otherwise only info level and above are emitted.
func New(w io.Writer, debug bool) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "jsontree",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return &Logger{l: l}
}

// Debug logs a debug-level step, e.g. entering a subcommand.
func (lg *Logger) Debug(msg string, keyvals ...any) {
	lg.l.Debug(msg, keyvals...)
}

// Info logs a normal-operation event, e.g. a file was parsed.
func (lg *Logger) Info(msg string, keyvals ...any) {
	lg.l.Info(msg, keyvals...)
}

// Warn logs a non-fatal condition, e.g. a duplicate object key.
func (lg *Logger) Warn(msg string, keyvals ...any) {
	lg.l.Warn(msg, keyvals...)
}

// ParseError logs a parse/build/write failure with its jsonerr fields
// surfaced as structured keys — the log-line analogue of spec.md §7's
// (kind, message, byte-offset, line, column) error tuple.
func (lg *Logger) ParseError(op string, err error) {
	cerr, ok := err.(*jsonerr.Error)
	if !ok {
		lg.l.Error(op+" failed", "err", err)
		return
	}
	if cerr.HasPosition {
		lg.l.Error(op+" failed", "kind", cerr.Kind, "message", cerr.Message, "line", cerr.Line, "column", cerr.Column)
		return
	}
	lg.l.Error(op+" failed", "kind", cerr.Kind, "message", cerr.Message, "offset", cerr.Offset)
}
