package isovox

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while volumes in other goroutines are logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for isovox.
// By default, isovox produces no log output. Pass nil to restore that.
//
// isovox logs only at [slog.LevelDebug], and only when the handler enables
// that level:
//   - "isovox: volume allocated": rounded dims, voxel count, bitmap size and
//     the bytes held by occupancy, shade cache and bitmap
//   - "isovox: flush": mode and the shaded/queued and rendered/queued counts
//     of each Flush
//   - "isovox: queue full, flushing": queue lengths when Put flushes early
//   - "model: applied": boxes, voxels covered and implicit flushes of a
//     model load
//
// Example:
//
//	isovox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// debugEnabled reports whether Debug records would be handled. Callers check
// it before building log attributes on hot paths.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

// Logger returns the current logger used by isovox.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
