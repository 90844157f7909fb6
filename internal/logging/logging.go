// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Formats accepted by [Setup].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup installs a text or JSON slog handler as the default logger.
// Debug lowers the level from Info to Debug. A nil w means os.Stderr.
func Setup(format string, debug bool, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
