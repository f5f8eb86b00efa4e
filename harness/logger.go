package harness

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// LevelFor maps a numeric debug mode to a log level:
//   - 0: [slog.LevelWarn]
//   - 1: [slog.LevelInfo], create/destroy lifecycle
//   - 2, 3: [slog.LevelDebug], every get and put
//
// Unknown modes fall back to Info.
func LevelFor(debugMode int) slog.Level {
	switch debugMode {
	case 0:
		return slog.LevelWarn
	case 2, 3:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
