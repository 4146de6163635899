package rastersdf

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// nopHandler discards all records. Enabled returns false so attribute
// formatting is skipped entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the pipeline. By default nothing is logged.
// Passing nil restores the silent default. Safe for concurrent use.
//
// Stage progress is logged at [slog.LevelDebug], file level events at [slog.LevelInfo].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set with [SetLogger].
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
