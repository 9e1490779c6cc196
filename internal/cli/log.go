package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/go-theft-auto/overlay"
)

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLogger routes overlay and gg logging through l. The level check
// happens in l, so SetLogLevel applies to library output too.
func installLogger(l *log.Logger) {
	sl := slog.New(l)
	overlay.SetLogger(sl)
	gg.SetLogger(sl)
}
