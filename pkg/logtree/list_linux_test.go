// Copyright 2025 Outreach Corporation. All Rights Reserved.

package logtree

import (
	"context"
	"log/slog"
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/getoutreach/logview/pkg/olog"
)

func TestListOmitsSpecialFiles(t *testing.T) {
	logs := olog.NewTestCapturer(t)

	dir := fs.NewDir(t, "logtree", fs.WithFile("app.log", "hello"))
	assert.NilError(t, unix.Mkfifo(dir.Join("journal.pipe"), 0o600))

	root := List(context.Background(), dir.Path())
	assert.NilError(t, root.Err)
	assert.DeepEqual(t, names(root), []string{"app.log"})

	var warned bool
	for _, l := range logs.GetLogs() {
		if l.Level == slog.LevelWarn && l.Message == "skipping unreadable entry" {
			assert.Equal(t, l.Attrs["path"], dir.Join("journal.pipe"))
			warned = true
		}
	}
	assert.Assert(t, warned, "expected a warning for the named pipe")
}

func TestCreatedAtDoesNotFail(t *testing.T) {
	dir := fs.NewDir(t, "logtree", fs.WithFile("app.log", "hello"))

	root := List(context.Background(), dir.Path())
	n := child(t, root, "app.log")
	// filesystems without birth time support report 0
	assert.Assert(t, n.CreatedAt >= 0)
	assert.Assert(t, n.ModifiedAt > 0)
}
