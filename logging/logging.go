// Package logging builds the application slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"

	"github.com/mytheresa/go-feature-showcase/config"
)

const FormatJSON = "json"

// New returns a logger writing to w, as JSON when requested and as text
// otherwise.
func New(w io.Writer, conf config.Logger) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: conf.Level,
	}

	var handler slog.Handler
	if conf.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
