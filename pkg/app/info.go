// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Static application info stamped at build time.

// Package app has the static app info
package app

import (
	"log/slog"
	"runtime/debug"
)

// Version needs to be set at build time using -ldflags "-X github.com/getoutreach/logview/pkg/app.Version=something"
// nolint:gochecknoglobals
var Version = "development"

// nolint:gochecknoglobals
var appName = "unknown"

// Info returns the static app info
//
// This struct is used mainly to provide attributes to append to logs
// and labels for metrics.
func Info() *Data {
	mainModule := ""

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		mainModule = buildInfo.Main.Path
	}

	return &Data{
		Name:       appName,
		Version:    Version,
		MainModule: mainModule,
	}
}

// SetName sets the app name
//
// Should only be called from tests and app initialization
func SetName(name string) {
	appName = name
}

// Data provides the global app info
type Data struct {
	Name    string
	Version string

	MainModule string
}

// LogValue implements slog.LogValuer.
func (d *Data) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 2)
	if d.Name != "unknown" {
		attrs = append(attrs, slog.String("name", d.Name))
	}
	if d.Version != "" {
		attrs = append(attrs, slog.String("version", d.Version))
	}
	return slog.GroupValue(attrs...)
}
