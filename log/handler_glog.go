package log

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
)

// GlogHandler is a log handler with a global verbosity ceiling that can be
// changed while the handler is in use.
// GlogHandler 是一个带有全局详细级别上限的日志处理器，级别可在运行时调整。
type GlogHandler struct {
	origin slog.Handler
	level  *atomic.Int32
}

// NewGlogHandler wraps h. Until Verbosity is called every record is passed
// through.
func NewGlogHandler(h slog.Handler) *GlogHandler {
	g := &GlogHandler{origin: h, level: new(atomic.Int32)}
	g.level.Store(math.MinInt32)
	return g
}

// Verbosity sets the verbosity ceiling. Records below level are dropped.
func (h *GlogHandler) Verbosity(level slog.Level) {
	h.level.Store(int32(level))
}

// Enabled implements slog.Handler.
func (h *GlogHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return slog.Level(h.level.Load()) <= lvl && h.origin.Enabled(ctx, lvl)
}

// WithAttrs implements slog.Handler. The returned handler shares the
// verbosity of the receiver.
func (h *GlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &GlogHandler{origin: h.origin.WithAttrs(attrs), level: h.level}
}

// WithGroup implements slog.Handler.
func (h *GlogHandler) WithGroup(name string) slog.Handler {
	return &GlogHandler{origin: h.origin.WithGroup(name), level: h.level}
}

// Handle implements slog.Handler.
func (h *GlogHandler) Handle(ctx context.Context, r slog.Record) error {
	if slog.Level(h.level.Load()) > r.Level {
		return nil
	}
	return h.origin.Handle(ctx, r)
}
