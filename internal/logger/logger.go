package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// InitLogger installs the configured handler as the slog default.
func InitLogger(cfg Config) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	handler = handler.WithAttrs(cfg.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

type ctxKey string

const commandIDKey ctxKey = "commandID"

// GenerateCommandID creates a new UUID for tracing a single command
// invocation through its logs.
func GenerateCommandID() string {
	return uuid.NewString()
}

// WithCommandID returns a new context containing the command invocation ID.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// CommandIDFromContext extracts the command invocation ID, if present.
func CommandIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(commandIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// FromContext returns a logger that includes the command_id attribute when
// present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := CommandIDFromContext(ctx); ok {
		return slog.Default().With("command_id", id)
	}
	return slog.Default()
}
