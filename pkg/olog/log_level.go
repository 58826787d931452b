// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Contains a dynamic log level implementation that
// implements the slog.Leveler interface.

package olog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// LevelOff disables logging entirely.
const LevelOff = slog.Level(100)

// level is the global log-level, updated using SetGlobalLevel.
//
// Defaults to "0" which is the info level.
var level atomic.Int64

// stringLevel is a map of string to slog.Level.
var stringLevel = map[string]slog.Level{
	slog.LevelDebug.String(): slog.LevelDebug,
	slog.LevelInfo.String():  slog.LevelInfo,
	slog.LevelWarn.String():  slog.LevelWarn,
	slog.LevelError.String(): slog.LevelError,
	"OFF":                    LevelOff,
}

// _ ensures that leveler implements slog.Leveler.
var _ slog.Leveler = leveler{}

// leveler is a slog.Leveler implementation that returns the current
// global logging level.
type leveler struct{}

// Level returns the current global logging level.
func (leveler) Level() slog.Level {
	return slog.Level(level.Load())
}

// SetGlobalLevel sets the global logging level used by all loggers.
// This impacts loggers that have previously been created as well as
// loggers that will be created in the future.
func SetGlobalLevel(l slog.Level) {
	level.Store(int64(l))
}

// GlobalLevel returns the current global logging level.
func GlobalLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel parses one of DEBUG, INFO, WARN, ERROR or OFF, ignoring
// case.
func ParseLevel(s string) (slog.Level, error) {
	l, ok := stringLevel[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
