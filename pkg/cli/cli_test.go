// Copyright 2025 Outreach Corporation. All Rights Reserved.

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/getoutreach/logview/pkg/app"
)

func newApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:      "logview-test",
		Action:    action,
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}
}

func newLogger() (logrus.FieldLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.Out = &buf
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}
	return l, &buf
}

func TestRunSuccess(t *testing.T) {
	logger, logs := newLogger()
	a := newApp(func(*cli.Context) error { return nil })

	assert.Equal(t, run(context.Background(), a, []string{"logview-test"}, logger), 0)
	assert.Equal(t, logs.Len(), 0)
	assert.Equal(t, app.Info().Name, "logview-test")
}

func TestRunError(t *testing.T) {
	logger, logs := newLogger()
	a := newApp(func(*cli.Context) error { return errors.New("boom") })

	assert.Equal(t, run(context.Background(), a, []string{"logview-test"}, logger), 1)
	assert.Check(t, is.Contains(logs.String(), "failed to run: boom"))
}

func TestRunExitCoder(t *testing.T) {
	logger, logs := newLogger()
	a := newApp(func(*cli.Context) error { return cli.Exit("", 3) })

	assert.Equal(t, run(context.Background(), a, []string{"logview-test"}, logger), 3)
	assert.Equal(t, logs.Len(), 0)
}

func TestPanicHandler(t *testing.T) {
	exitCode := 0
	func() {
		defer setupPanicHandler(&exitCode)
		panic("unhandled entry kind")
	}()
	assert.Equal(t, exitCode, 2)
}
