// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Entrypoint of the logview command.

// Command logview lists and reads a tree of log files, looking inside
// .gz files and .tar.gz archives.
//
//	logview list
//	logview read nginx/access.log.2.gz
//	logview read old/archive.tar.gz/debug.log
package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/getoutreach/logview/internal/config"
	"github.com/getoutreach/logview/pkg/app"
	"github.com/getoutreach/logview/pkg/cfg"
	gcli "github.com/getoutreach/logview/pkg/cli"
	"github.com/getoutreach/logview/pkg/logtree"
	"github.com/getoutreach/logview/pkg/metrics"
	"github.com/getoutreach/logview/pkg/olog"
	"github.com/getoutreach/logview/pkg/render"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := logrus.New()
	cmd := &command{}
	a := cmd.app()

	gcli.Run(ctx, cancel, a, logger, func() {
		if err := cmd.writeMetrics(); err != nil {
			logger.WithError(err).Warn("Failed to write metrics")
		}
	})
}

// command carries the state shared by the subcommands of one run.
type command struct {
	conf *config.Config
}

// app builds the urfave/cli application.
func (cmd *command) app() *cli.App {
	return &cli.App{
		Name:    "logview",
		Usage:   "list and read a tree of (compressed) log files",
		Version: app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a config file, defaults to " + cfg.DefaultDir + "/" + config.FileName,
			},
			&cli.StringFlag{
				Name:  "base-dir",
				Usage: "directory to list and read from (default " + config.DefaultBaseDir + ")",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write output to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum level of diagnostic logs: DEBUG, INFO, WARN, ERROR or OFF",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "format of diagnostic logs: auto, text or json",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "write run metrics to this node-exporter textfile",
			},
		},
		Before: cmd.before,
		Action: cmd.usage,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print the whole tree as JSON",
				Action: cmd.list,
			},
			{
				Name:      "read",
				Usage:     "print the decompressed content of a single log",
				ArgsUsage: "<path>",
				Action:    cmd.read,
			},
		},
	}
}

// before loads the configuration and applies flag overrides.
func (cmd *command) before(c *cli.Context) error {
	reader, required := cfg.DefaultReader(), false
	if p := c.String("config"); p != "" {
		reader, required = cfg.FileReader(p), true
	}

	conf, err := config.Load(reader, required)
	if err != nil {
		return err
	}

	for flag, dst := range map[string]*string{
		"base-dir":         &conf.BaseDir,
		"output":           &conf.Output,
		"log-level":        &conf.LogLevel,
		"log-format":       &conf.LogFormat,
		"metrics-textfile": &conf.MetricsTextfile,
	} {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}

	if err := conf.Expand(); err != nil {
		return err
	}

	if err := conf.ApplyLogFormat(); err != nil {
		return err
	}

	level, err := conf.Level()
	if err != nil {
		return err
	}
	olog.SetGlobalLevel(level)
	olog.New().DebugContext(c.Context, "starting", "app", app.Info(), "base_dir", conf.BaseDir)

	cmd.conf = conf
	return nil
}

// usage handles invocations without a known subcommand. It never
// touches the log tree.
func (cmd *command) usage(c *cli.Context) error {
	if c.NArg() == 0 {
		return cmd.fail(c, errors.New("No command line arguments supplied"))
	}
	return cmd.fail(c, errors.Errorf("unknown command %q, expected list or read", c.Args().First()))
}

func (cmd *command) list(c *cli.Context) error {
	root := logtree.List(c.Context, cmd.conf.BaseDir)

	return cmd.withOutput(c, func(w io.Writer) error {
		return render.Listing(w, root)
	})
}

func (cmd *command) read(c *cli.Context) error {
	if c.NArg() == 0 {
		return cmd.fail(c, errors.New("read needs a path supplied"))
	}

	b, err := logtree.Resolve(c.Context, cmd.conf.BaseDir, logtree.SplitPath(c.Args().First()))
	if err != nil {
		return cmd.fail(c, err)
	}

	return cmd.withOutput(c, func(w io.Writer) error {
		return render.Content(w, b)
	})
}

// fail reports err as a diagnostic line and exits with status 1.
func (cmd *command) fail(c *cli.Context, err error) error {
	render.Diagnostic(c.App.ErrWriter, err)
	return cli.Exit("", 1)
}

// withOutput calls fn with the configured output.
func (cmd *command) withOutput(c *cli.Context, fn func(io.Writer) error) error {
	if cmd.conf.Stdout() {
		return fn(c.App.Writer)
	}

	f, err := os.Create(cmd.conf.Output)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to close output file")
}

// writeMetrics dumps the metrics of this run when a textfile is
// configured.
func (cmd *command) writeMetrics() error {
	if cmd.conf == nil || cmd.conf.MetricsTextfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(cmd.conf.MetricsTextfile); err != nil {
		return err
	}
	olog.New().Debug("wrote metrics", "path", cmd.conf.MetricsTextfile)
	return nil
}
