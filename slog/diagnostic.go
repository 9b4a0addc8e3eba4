package slog

import (
	"io"
	"log/slog"

	"github.com/fwojciec/pinnedref"
)

// NewLogger returns a text logger writing to w at Info level, or Debug level
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogDiagnostics emits one warning per diagnostic.
func LogDiagnostics(logger *slog.Logger, diags *pinnedref.Diagnostics) {
	for _, d := range diags.All() {
		logger.Warn(d.Message,
			"kind", string(d.Kind),
			"bookmark_id", d.BookmarkID,
		)
	}
}
