// Package logging builds the service's slog logger and carries a
// request-scoped logger through context.Context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.With(ctx, logger, slog.String("request_id", id))
//	logging.FromContextOr(ctx, logger).InfoContext(ctx, "built feed query")
//
// Error records from services name the operation and the ids involved and
// pass the whole chain as slog.Any("error", err):
//
//	logger.ErrorContext(ctx, "feed query rejected",
//	    slog.String("operation", "MemberQueryURL"),
//	    slog.String("group_id", groupID),
//	    slog.Any("error", err),
//	)
//
// Every handler installed by New masks credentials and end-user addresses
// through masq (see redact_handler.go).
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error in any case; anything else
// falls back to info. format is FormatText or FormatJSON, with JSON used for
// unknown values. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With stores a child of base carrying attrs in ctx and returns the new
// context. base is used when ctx carries no logger yet.
func With(ctx context.Context, base *slog.Logger, attrs ...any) context.Context {
	return WithLogger(ctx, FromContextOr(ctx, base).With(attrs...))
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
