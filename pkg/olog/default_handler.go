// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Contains logic for determining which handler should be
// used by default.

package olog

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

var (
	// defaultHandler is the handler type used by loggers created by
	// New. For details on how this is set, see
	// `determineDefaultHandler`.
	defaultHandler atomic.Int32

	// defaultOut is the default output for the default handler. This is
	// set to `os.Stderr` by default.
	defaultOut io.Writer = os.Stderr
)

// DefaultHandlerType denotes which handler should be used by default.
// This is calculated via the `determineDefaultHandler` function on
// package init.
type DefaultHandlerType int

const (
	JSONHandler DefaultHandlerType = iota
	TextHandler
)

// determineDefaultHandler sets the default handler based on the current
// environment. If `os.Stderr` is a TTY, then the default handler is a
// charmbracelet/log text handler. Otherwise, the default handler is the
// `slog.JSONHandler`.
func determineDefaultHandler() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		defaultHandler.Store(int32(TextHandler))
	} else {
		defaultHandler.Store(int32(JSONHandler))
	}
}

// SetDefaultHandler overrides the handler type picked on init. Only
// loggers created afterwards are affected.
func SetDefaultHandler(t DefaultHandlerType) {
	defaultHandler.Store(int32(t))
}

// init sets the default handler. See `determineDefaultHandler` for more
// information.
//
//nolint:gochecknoinits // Why: Initializes the default handler.
func init() {
	determineDefaultHandler()
}

// createHandler creates a new handler for usage with a slog.Logger. The
// handler used is determined based on the current defaultHandler. The
// JSON handler consults the global level on every record, the text
// handler snapshots it because charmbracelet/log has no slog.Leveler
// support.
func createHandler(out io.Writer, pkg string) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     leveler{},
	}
	attrs := []slog.Attr{slog.String("package", pkg)}

	switch DefaultHandlerType(defaultHandler.Load()) {
	case JSONHandler:
		return slog.NewJSONHandler(out, opts).WithAttrs(attrs)
	case TextHandler:
		var charmLogLevel charmlog.Level
		switch l := opts.Level.Level(); {
		case l <= slog.LevelDebug:
			charmLogLevel = charmlog.DebugLevel
		case l <= slog.LevelInfo:
			charmLogLevel = charmlog.InfoLevel
		case l <= slog.LevelWarn:
			charmLogLevel = charmlog.WarnLevel
		case l <= slog.LevelError:
			charmLogLevel = charmlog.ErrorLevel
		default:
			charmLogLevel = charmlog.FatalLevel + 1
		}

		return charmlog.NewWithOptions(out, charmlog.Options{
			ReportCaller:    opts.AddSource,
			ReportTimestamp: true,
			Level:           charmLogLevel,
		}).WithAttrs(attrs)
	default:
		panic("unknown default handler")
	}
}
