// Copyright 2025 Outreach Corporation. All Rights Reserved.

package logtree

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	perrors "github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

func TestPathError(t *testing.T) {
	err := &PathError{Op: "Could not read path", Path: "/var/log/private", Kind: ErrDirectoryUnreadable, Err: syscall.EACCES}

	assert.Error(t, err, "Could not read path: /var/log/private: permission denied")
	assert.Assert(t, errors.Is(err, ErrDirectoryUnreadable))
	assert.Assert(t, !errors.Is(err, ErrNotFound))
	assert.Assert(t, errors.Is(err, syscall.EACCES))

	wrapped := perrors.Wrap(err, "listing")
	assert.Assert(t, errors.Is(wrapped, ErrDirectoryUnreadable))
}

func TestPathErrorWithoutPath(t *testing.T) {
	assert.Error(t, &PathError{Op: "path is empty", Kind: ErrEmptyPath}, "path is empty")
}

func TestCause(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}
	assert.Equal(t, cause(err), error(syscall.ENOENT))
	assert.Equal(t, cause(syscall.EIO), error(syscall.EIO))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, outcome(nil), "ok")
	assert.Equal(t, outcome(&PathError{Kind: ErrEmptyPath}), "empty_path")
	assert.Equal(t, outcome(&PathError{Kind: ErrNotFound}), "not_found")
	assert.Equal(t, outcome(&PathError{Kind: ErrDirectoryUnreadable}), "directory_unreadable")
	assert.Equal(t, outcome(&PathError{Kind: ErrArchive}), "archive_error")
	assert.Equal(t, outcome(errors.New("other")), "error")
}
