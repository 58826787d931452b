// Copyright 2025 Outreach Corporation. All Rights Reserved.

package app_test

import (
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/getoutreach/logview/pkg/app"
)

func TestInfo(t *testing.T) {
	app.SetName("logview-test")
	defer app.SetName("unknown")

	info := app.Info()
	assert.Equal(t, info.Name, "logview-test")
	assert.Equal(t, info.Version, app.Version)
}

func TestLogValue(t *testing.T) {
	d := &app.Data{Name: "unknown", Version: "v1.2.3"}

	v := d.LogValue()
	assert.Equal(t, v.Kind(), slog.KindGroup)
	group := v.Group()
	assert.Equal(t, len(group), 1)
	assert.Check(t, group[0].Equal(slog.String("version", "v1.2.3")))
}
