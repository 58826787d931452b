// Copyright 2025 Outreach Corporation. All Rights Reserved.

package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/getoutreach/logview/pkg/cfg"
)

func TestLoadDefaults(t *testing.T) {
	dir := fs.NewDir(t, "config")

	c, err := Load(cfg.DirReader(dir.Path()), false)
	assert.NilError(t, err)
	assert.DeepEqual(t, c, Default())
	assert.Assert(t, c.Stdout())
}

func TestLoadRequiredMissingFile(t *testing.T) {
	_, err := Load(cfg.FileReader(filepath.Join(t.TempDir(), "nope.yaml")), true)
	assert.ErrorContains(t, err, "failed to load config")
}

func TestLoadLayering(t *testing.T) {
	dir := fs.NewDir(t, "config", fs.WithFile(FileName, "BaseDir: /srv/logs\nLogLevel: DEBUG\nOutput: /tmp/out\n"))
	t.Setenv(EnvLogLevel, "ERROR")
	t.Setenv(EnvMetricsTextfile, "/var/lib/node_exporter/logview.prom")
	t.Setenv(EnvOutput, "")

	c, err := Load(cfg.DirReader(dir.Path()), false)
	assert.NilError(t, err)
	assert.DeepEqual(t, c, &Config{
		BaseDir:         "/srv/logs",
		Output:          "/tmp/out",
		LogLevel:        "ERROR",
		LogFormat:       "auto",
		MetricsTextfile: "/var/lib/node_exporter/logview.prom",
	})
	assert.Assert(t, !c.Stdout())
}

func TestLoadInvalidFile(t *testing.T) {
	dir := fs.NewDir(t, "config", fs.WithFile(FileName, "Basedir: /srv/logs\n"))

	_, err := Load(cfg.DirReader(dir.Path()), false)
	assert.ErrorContains(t, err, "failed to parse logview.yaml")
}

func TestExpand(t *testing.T) {
	home, err := homedir.Dir()
	assert.NilError(t, err)

	c := &Config{BaseDir: "~/logs", Output: "-", MetricsTextfile: ""}
	assert.NilError(t, c.Expand())
	assert.Equal(t, c.BaseDir, filepath.Join(home, "logs"))
	assert.Equal(t, c.Output, "-")
	assert.Equal(t, c.MetricsTextfile, "")
}

func TestLevel(t *testing.T) {
	l, err := (&Config{LogLevel: "debug"}).Level()
	assert.NilError(t, err)
	assert.Equal(t, l, slog.LevelDebug)

	_, err = (&Config{LogLevel: "loud"}).Level()
	assert.Assert(t, err != nil)
}

func TestApplyLogFormat(t *testing.T) {
	assert.NilError(t, (&Config{LogFormat: "auto"}).ApplyLogFormat())
	assert.NilError(t, (&Config{LogFormat: "JSON"}).ApplyLogFormat())
	assert.ErrorContains(t, (&Config{LogFormat: "xml"}).ApplyLogFormat(), "unknown log format")
}
