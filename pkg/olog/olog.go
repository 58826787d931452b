// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the public API for the olog package.

// Package olog implements a lightweight logging library built around
// the slog package. It never masks the core slog.Logger type. Loggers
// are tagged with the package that created them and share a global,
// runtime adjustable level.
//
// This package does not ship logs anywhere, everything is written to
// stderr (or the writer provided to SetOutput).
package olog

import (
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
)

var outputLock = new(sync.RWMutex)

// New creates a new slog instance that can be used for logging. The
// logger uses the handler selected for the current environment, see
// determineDefaultHandler.
//
// The logger is associated with the package that called New, that
// package is attached to every log line under the "package" key.
func New() *slog.Logger {
	return NewWithHandler(createHandler(output{}, callerPackage(2)))
}

// NewWithHandler returns a new slog.Logger with the provided handler.
//
// Note: A logger created with this function will not be controlled by
// the global log level. This is primarily meant to be used only by
// tests or other special cases.
func NewWithHandler(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

// SetOutput sets the global logger output to desired writer. Loggers
// created before the call write to the new output as well.
func SetOutput(w io.Writer) {
	outputLock.Lock()
	defer outputLock.Unlock()
	defaultOut = w
}

// output forwards writes to whatever writer is currently configured
// via SetOutput.
type output struct{}

// Write implements io.Writer.
func (output) Write(p []byte) (int, error) {
	outputLock.RLock()
	defer outputLock.RUnlock()
	return defaultOut.Write(p)
}

// callerPackage returns the import path of the package of the function
// skip frames above this one.
func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	// github.com/org/repo/pkg/name.(*Type).Method
	name := fn.Name()
	slash := strings.LastIndex(name, "/")
	if dot := strings.Index(name[slash+1:], "."); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}
