// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Reading a directory into classified entries.

package logtree

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Entry is a child of a directory observed during a walk. Entries are
// built fresh for every directory read.
type Entry struct {
	// Name is the final path component
	Name string

	// Path is the filesystem path of the entry
	Path string

	Kind Kind

	// Size is the size on disk in bytes, only set for file kinds
	Size int64

	// CreatedAt and ModifiedAt are seconds since the unix epoch, 0 when
	// the platform cannot supply the value
	CreatedAt  int64
	ModifiedAt int64

	// Err is the reason an entry is KindUnreadable
	Err error
}

// IsDir reports whether the entry is a directory on disk. Symlinks to
// directories are not directories.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// readDir lists a directory for both List and Resolve. Tests replace
// it to simulate failures permission bits cannot produce for root.
var readDir = os.ReadDir

// readEntries reads and classifies the children of dir in the order
// returned by the filesystem. A failure to stat a single child marks
// that child KindUnreadable, it does not fail the read.
func readEntries(dir string) ([]Entry, error) {
	des, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, newEntry(dir, de))
	}
	return entries, nil
}

// newEntry classifies de and collects its metadata.
func newEntry(dir string, de fs.DirEntry) Entry {
	e := Entry{
		Name: de.Name(),
		Path: filepath.Join(dir, de.Name()),
		Kind: Classify(de.Name(), de.Type()),
	}

	info, err := de.Info()
	if err != nil {
		e.Kind = KindUnreadable
		e.Err = err
		return e
	}
	if e.Kind == KindUnreadable {
		e.Err = &fs.PathError{Op: "read", Path: e.Path, Err: errUnsupportedType(info.Mode())}
		return e
	}

	if e.Kind == KindPlainFile || e.Kind == KindCompressedFile {
		e.Size = info.Size()
		e.CreatedAt = createdAt(e.Path, info)
		e.ModifiedAt = unixSeconds(info.ModTime())
	}
	return e
}

// unixSeconds converts t to seconds since the unix epoch, times before
// the epoch are reported as 0.
func unixSeconds(t time.Time) int64 {
	if s := t.Unix(); s > 0 {
		return s
	}
	return 0
}
