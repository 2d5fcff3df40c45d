package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/taranathan/dibble/internal/config"
)

// NewLogger creates a *slog.Logger writing to w per cfg and sets it as
// the process default via slog.SetDefault.
//
// Format "json" produces structured JSON output; anything else falls back
// to the human-readable text handler. Level is one of debug, info, warn,
// error (case-insensitive) and defaults to warn, so a normal lookup
// prints nothing beyond its result.
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
