// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Error taxonomy for listing and resolution.

package logtree

import (
	"io/fs"

	"github.com/pkg/errors"
)

// A SentinelError is a constant which ought to be compared using errors.Is.
type SentinelError string

// Error returns s as a string.
func (s SentinelError) Error() string {
	return string(s)
}

const (
	// ErrDirectoryUnreadable is returned when a directory could not be
	// enumerated.
	ErrDirectoryUnreadable SentinelError = "directory unreadable"

	// ErrArchive is returned when a compressed file or archive could not
	// be decoded.
	ErrArchive SentinelError = "archive error"

	// ErrNotFound is returned when resolution exhausted every candidate.
	ErrNotFound SentinelError = "not found"

	// ErrEmptyPath is returned when Resolve is called without segments.
	ErrEmptyPath SentinelError = "path is empty"
)

// PathError records a failure while listing or resolving Path. Its
// Error text is the diagnostic shown to users.
type PathError struct {
	// Op is a short description of what failed
	Op string

	// Path is the filesystem (or archive member) path involved, may be
	// empty
	Path string

	// Kind is one of the sentinel errors of this package
	Kind SentinelError

	// Err is the underlying cause, may be nil
	Err error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the Kind of this error.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Err
}

// cause strips the *fs.PathError wrapper the os package puts around
// syscall errors, PathError already carries the path.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// errUnsupportedType describes an entry that is neither a directory,
// a symlink nor a regular file.
func errUnsupportedType(mode fs.FileMode) error {
	return errors.Errorf("unsupported file type %s", mode.Type())
}

// outcome maps a resolution result onto a metrics label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyPath):
		return "empty_path"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDirectoryUnreadable):
		return "directory_unreadable"
	case errors.Is(err, ErrArchive):
		return "archive_error"
	default:
		return "error"
	}
}
