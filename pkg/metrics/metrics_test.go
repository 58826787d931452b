// Copyright 2025 Outreach Corporation. All Rights Reserved.

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(entriesListed.WithLabelValues("file"))
	CountEntry("file")
	CountEntry("file")
	assert.Equal(t, testutil.ToFloat64(entriesListed.WithLabelValues("file"))-before, float64(2))

	beforeErr := testutil.ToFloat64(archivesOpened.WithLabelValues("error"))
	CountArchiveOpened(errors.New("bad gzip"))
	assert.Equal(t, testutil.ToFloat64(archivesOpened.WithLabelValues("error"))-beforeErr, float64(1))

	beforeRes := testutil.ToFloat64(resolutions.WithLabelValues("not_found"))
	CountResolution("not_found")
	assert.Equal(t, testutil.ToFloat64(resolutions.WithLabelValues("not_found"))-beforeRes, float64(1))
}

func TestReportLatency(t *testing.T) {
	ReportLatency("List", 0.02, nil)
	ReportLatency("read", 0.5, errors.New("boom"))

	assert.Assert(t, testutil.CollectAndCount(callLatency, "logview_call_request_seconds") >= 2)
}

func TestWriteTextfile(t *testing.T) {
	CountEntry("dir")
	path := filepath.Join(t.TempDir(), "logview.prom")

	assert.NilError(t, WriteTextfile(path))

	byt, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(byt), `logview_entries_listed_total{kind="dir"}`))
}

func TestWriteTextfileBadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "logview.prom"))
	assert.ErrorContains(t, err, "failed to write metrics")
}
