// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Prometheus collectors describing listing and read work.

// Package metrics implements the logview metrics API
//
// Collectors are registered on a package level registry instead of the
// prometheus default one: logview is a short lived process, so the
// registry is dumped to a node-exporter textfile (WriteTextfile) rather
// than scraped.
package metrics

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every collector of this package.
// nolint:gochecknoglobals
var Registry = prometheus.NewRegistry()

// nolint:gochecknoglobals
var (
	factory = promauto.With(Registry)

	callLatency = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "logview_call_request_seconds",
			Help: "The latency of a list or read call",
			// use prometheus.DefBuckets which is
			// []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
		},
		[]string{"call", "status"},
	)

	entriesListed = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logview_entries_listed_total",
			Help: "Entries rendered by the tree lister, by kind",
		},
		[]string{"kind"},
	)

	archivesOpened = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logview_archives_opened_total",
			Help: "Compressed files and archives opened, by status",
		},
		[]string{"status"},
	)

	resolutions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logview_resolutions_total",
			Help: "Path resolutions, by outcome",
		},
		[]string{"outcome"},
	)
)

// statusOf maps an error onto the status label.
func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ReportLatency reports the latency metric for a call
func ReportLatency(callName string, latencySeconds float64, err error) {
	callLatency.WithLabelValues(strings.ToLower(callName), statusOf(err)).Observe(latencySeconds)
}

// CountEntry counts one listed entry of the provided kind.
func CountEntry(kind string) {
	entriesListed.WithLabelValues(kind).Inc()
}

// CountArchiveOpened counts an attempt to decompress a file or archive.
func CountArchiveOpened(err error) {
	archivesOpened.WithLabelValues(statusOf(err)).Inc()
}

// CountResolution counts a finished path resolution. outcome is "ok"
// or the name of the failure.
func CountResolution(outcome string) {
	resolutions.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes every collector in Registry to path using the
// node-exporter textfile format. The file is written atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
