package errors

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogHandler is a Handler that logs errors through zerolog.
type LogHandler struct {
	// Verbose enables stack traces and human-readable console output.
	Verbose bool
	// Writer receives the log output. Defaults to stderr.
	Writer io.Writer
}

func (h *LogHandler) logger() zerolog.Logger {
	var out io.Writer = os.Stderr
	if h.Writer != nil {
		out = h.Writer
	}
	if h.Verbose {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = time.RFC3339
		out = console
	}
	return zerolog.New(out).With().Str("component", "palantir").Logger()
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	log := h.logger()
	event := log.Error().
		Time("at", err.Timestamp).
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if err.ViewID != "" {
		event = event.Str("view", err.ViewID)
	}
	event.Msg("palantir error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	log := h.logger()
	event := log.Error().
		Time("at", err.Timestamp).
		Str("op", err.Op).
		Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("palantir panic")
}
