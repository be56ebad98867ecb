package internal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by stores that were not given one with
// WithLogger. Logging is silent until this is called. Pass nil to silence it
// again.
//
// Stores log at debug level only: insertions, removals, crossings found and
// splits performed.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Logs an entity by its String form. String names the entity through dbg,
// which remembers it for good, so this only runs once a handler has accepted
// the record.
type entityValue struct {
	e Entity
}

func (v entityValue) LogValue() slog.Value {
	return slog.StringValue(v.e.String())
}
