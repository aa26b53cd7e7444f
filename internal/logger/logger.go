package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "ctchen222/hotseat-tictactoe"

// MultiHandler fans each record out to the console and to OpenTelemetry.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled is true when at least one target wants the level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, target := range h.handlers {
		if target.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to every target enabled for its level. A failing target
// does not stop the others.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, target := range h.handlers {
		if target.Enabled(ctx, r.Level) {
			errs = append(errs, target.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(target slog.Handler) slog.Handler { return target.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(target slog.Handler) slog.Handler { return target.WithGroup(name) })
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	derived := make([]slog.Handler, len(h.handlers))
	for i, target := range h.handlers {
		derived[i] = fn(target)
	}
	return NewMultiHandler(derived...)
}

// ParseLevel maps a config level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// New builds a logger writing text to w and records to the global OpenTelemetry log provider.
func New(w io.Writer, level slog.Level) *slog.Logger {
	console := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	return slog.New(NewMultiHandler(console, otelslog.NewHandler(instrumentationName)))
}

// Init installs New(os.Stdout, level) as the default slog logger.
func Init(level string) {
	slog.SetDefault(New(os.Stdout, ParseLevel(level)))
}
