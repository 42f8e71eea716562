package lib

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger writes diagnostics to stderr so they stay out of the
// prompt/echo stream on stdout. The "error" key is shortened to "err".
func NewLogger(level slog.Level) *slog.Logger {
	return newTextLogger(os.Stderr, level)
}

// NewNopLogger discards everything.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
