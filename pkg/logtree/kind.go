// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Classification of directory entries by name suffix and
// file type bits.

// Package logtree implements a read-only, archive aware view over a
// directory of log files. List renders the whole tree, descending into
// gzip compressed tar archives as if they were directories. Resolve
// turns a slash separated logical path into the decompressed content of
// a single log, looking inside .gz files and into members of .tar.gz
// archives.
package logtree

import (
	"io/fs"
	"strings"
)

// Kind is the closed set of entry kinds the tree knows about.
type Kind int

const (
	// KindDirectory is a directory on disk
	KindDirectory Kind = iota

	// KindPlainFile is a regular, uncompressed file. Members of an
	// archive are listed with this kind as well.
	KindPlainFile

	// KindCompressedFile is a regular file ending in .gz
	KindCompressedFile

	// KindCompressedDirectory is a regular file ending in .tar.gz, its
	// members are listed as children
	KindCompressedDirectory

	// KindSymlink is a symbolic link, never followed
	KindSymlink

	// KindUnreadable is an entry whose metadata could not be read or
	// whose type (socket, pipe, device) cannot be read as a log
	KindUnreadable
)

// String returns the name used for the kind in listings.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "dir"
	case KindPlainFile:
		return "file"
	case KindCompressedFile:
		return "compressed_file"
	case KindCompressedDirectory:
		return "compressed_dir"
	case KindSymlink:
		return "symlink"
	case KindUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// IsContainer reports whether nodes of this kind carry children.
func (k Kind) IsContainer() bool {
	return k == KindDirectory || k == KindCompressedDirectory
}

// Classify determines the kind of a directory entry from its name and
// type bits. It never touches the filesystem.
func Classify(name string, mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case !mode.IsRegular():
		return KindUnreadable
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"):
		return KindCompressedDirectory
	case strings.HasSuffix(lower, ".gz"):
		return KindCompressedFile
	default:
		return KindPlainFile
	}
}
