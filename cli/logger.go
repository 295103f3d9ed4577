package cli

import (
	"io"
	"log/slog"
)

// L discards everything until InitLogger enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

func InitLogger(w io.Writer, verbose bool) {
	if !verbose {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
