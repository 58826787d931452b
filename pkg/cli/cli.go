// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: See package comment

// Package cli contains the process plumbing shared by logview
// commands: signal handling, panic reporting and exit codes around an
// urfave/cli application.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/getoutreach/logview/pkg/app"
)

// Run runs a with os.Args and exits the process. ^C and SIGTERM cancel
// ctx through cancel. onExit hooks run before the process exits, even
// when the command failed or panicked.
func Run(ctx context.Context, cancel context.CancelFunc, a *cli.App, logger logrus.FieldLogger, onExit ...func()) {
	// Cancel the context on ^C and other signals
	urfaveRegisterShutdownHandler(cancel)

	exitCode, exit := setupExitHandler(onExit...)
	defer exit()

	// Print a stack trace when a panic occurs and set the exit code
	defer setupPanicHandler(exitCode)

	(*exitCode) = run(ctx, a, os.Args, logger)
}

// run runs a with args and returns the exit code of the process.
func run(ctx context.Context, a *cli.App, args []string, logger logrus.FieldLogger) int {
	app.SetName(a.Name)

	exitCode := 0
	origExiter := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = origExiter }()

	if err := a.RunContext(ctx, args); err != nil {
		// exit coders were already reported by urfave/cli
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			return ec.ExitCode()
		}

		logger.Errorf("failed to run: %v", err)
		return 1
	}

	return exitCode
}
