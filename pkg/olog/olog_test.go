// Copyright 2025 Outreach Corporation. All Rights Reserved.

package olog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

// TestNewTagsPackage ensures that loggers are tagged with the package
// that created them.
func TestNewTagsPackage(t *testing.T) {
	logCapture := NewTestCapturer(t)

	New().Info("should appear", "path", "/var/log")

	expected := []TestLogLine{
		{
			Message: "should appear",
			Level:   slog.LevelInfo,
			Attrs: map[string]any{
				"package": "github.com/getoutreach/logview/pkg/olog",
				"path":    "/var/log",
			},
		},
	}
	if diff := cmp.Diff(expected, logCapture.GetLogs()); diff != "" {
		t.Fatalf("unexpected log output (-want +got):\n%s", diff)
	}
}

// TestGlobalLevel ensures that changing the global level affects
// loggers that were already created.
func TestGlobalLevel(t *testing.T) {
	logCapture := NewTestCapturer(t)
	logger := New()

	SetGlobalLevel(slog.LevelWarn)
	logger.Info("filtered")
	logger.Warn("kept")

	SetGlobalLevel(LevelOff)
	logger.Error("filtered too")

	logs := logCapture.GetLogs()
	assert.Equal(t, len(logs), 1)
	assert.Equal(t, logs[0].Message, "kept")
	assert.Equal(t, logs[0].Level, slog.LevelWarn)
}

// TestSetOutputAffectsExistingLoggers ensures loggers follow the output
// set after they were created.
func TestSetOutputAffectsExistingLoggers(t *testing.T) {
	NewTestCapturer(t)
	logger := New()

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Info("redirected")

	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte(`"msg":"redirected"`)))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " Warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "off", want: LevelOff},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown log level")
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestCallerPackage(t *testing.T) {
	assert.Equal(t, callerPackage(1), "github.com/getoutreach/logview/pkg/olog")
}
