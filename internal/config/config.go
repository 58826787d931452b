// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Runtime configuration of the logview command.

// Package config holds the settings of the logview command. Values are
// layered: built in defaults, then logview.yaml, then LOGVIEW_*
// environment variables. Command line flags are applied last by the
// command itself.
package config

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/getoutreach/logview/pkg/cfg"
	"github.com/getoutreach/logview/pkg/olog"
)

// FileName is the name of the config file looked up by the default
// reader.
const FileName = "logview.yaml"

// DefaultBaseDir is the directory listed and read from when nothing
// else is configured.
const DefaultBaseDir = "/var/log/"

// Environment variables overriding the config file.
const (
	EnvBaseDir         = "LOGVIEW_BASE_DIR"
	EnvOutput          = "LOGVIEW_OUTPUT"
	EnvLogLevel        = "LOGVIEW_LOG_LEVEL"
	EnvLogFormat       = "LOGVIEW_LOG_FORMAT"
	EnvMetricsTextfile = "LOGVIEW_METRICS_TEXTFILE"
)

// Config is the configuration of the logview command.
type Config struct {
	// BaseDir is the root of the tree that is listed and read
	BaseDir string `yaml:"BaseDir"`

	// Output is where listings and log content are written, empty or
	// "-" means stdout
	Output string `yaml:"Output"`

	// LogLevel is the minimum level of the diagnostic log written to
	// stderr
	LogLevel string `yaml:"LogLevel"`

	// LogFormat is one of auto, text or json. auto picks text on a
	// terminal and json otherwise.
	LogFormat string `yaml:"LogFormat"`

	// MetricsTextfile, when set, receives the metrics of the run in the
	// node-exporter textfile format
	MetricsTextfile string `yaml:"MetricsTextfile"`
}

// Default returns the built in defaults.
func Default() *Config {
	return &Config{
		BaseDir:   DefaultBaseDir,
		LogLevel:  "WARN",
		LogFormat: "auto",
	}
}

// Load builds a Config from the defaults, the config file returned by
// r and the environment. A missing config file is only an error when
// required is set.
func Load(r cfg.Reader, required bool) (*Config, error) {
	c := Default()

	err := r.Load(FileName, c)
	if err != nil && (required || !errors.Is(err, fs.ErrNotExist)) {
		return nil, errors.Wrap(err, "failed to load config")
	}

	cfg.EnvOverride(EnvBaseDir, &c.BaseDir)
	cfg.EnvOverride(EnvOutput, &c.Output)
	cfg.EnvOverride(EnvLogLevel, &c.LogLevel)
	cfg.EnvOverride(EnvLogFormat, &c.LogFormat)
	cfg.EnvOverride(EnvMetricsTextfile, &c.MetricsTextfile)

	return c, nil
}

// Expand replaces a leading ~ in every path of c with the home
// directory of the current user.
func (c *Config) Expand() error {
	for _, p := range []*string{&c.BaseDir, &c.Output, &c.MetricsTextfile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return errors.Wrapf(err, "failed to expand %q", *p)
		}
		*p = expanded
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	return olog.ParseLevel(c.LogLevel)
}

// ApplyLogFormat selects the olog handler matching LogFormat.
func (c *Config) ApplyLogFormat() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "auto":
	case "text":
		olog.SetDefaultHandler(olog.TextHandler)
	case "json":
		olog.SetDefaultHandler(olog.JSONHandler)
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Stdout reports whether output goes to the standard output.
func (c *Config) Stdout() bool {
	return c.Output == "" || c.Output == "-"
}
