// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains the interfaces and types shared by
// the archive readers.

package archive

import (
	"context"
	"io"
)

// Extractor is the interface for creating an Archive from a compressed
// tar stream.
type Extractor interface {
	// Open returns an Archive reading from the provided stream
	Open(ctx context.Context, archiveName string, archive io.Reader) (Archive, error)

	// Close releases every reader created by Open
	Close() error
}

// Header is a generic struct containing information about a member
// of an archive.
type Header struct {
	// Name is the base name of the member, any directory components
	// stored in the archive are discarded.
	Name string

	// Path is the full path stored in the archive header
	Path string

	// Mode is the mode of the member
	Mode int64

	// Size is the uncompressed size of the member
	Size int64

	// ModTime is the modification time stored in the archive header, in
	// seconds since the unix epoch.
	ModTime int64

	// CreatedAt is always zero, tar headers carry no creation time.
	CreatedAt int64

	// Type is the type of member this is
	// (file, directory, etc)
	Type HeaderType
}

// HeaderType is the type of member a Header is for in an archive
type HeaderType string

const (
	// HeaderTypeFile is a file member
	HeaderTypeFile HeaderType = "file"

	// HeaderTypeDirectory is a directory member
	HeaderTypeDirectory HeaderType = "directory"

	// HeaderTypeOther is anything else (links, devices, fifos)
	HeaderTypeOther HeaderType = "other"
)

// Archive is an interface for interacting with the members of an
// archive. An Archive can only be scanned once.
type Archive interface {
	// Next returns the next member in the archive, or returns
	// io.EOF if there are no more members.
	Next() (*Header, io.ReadCloser, error)
}

// CompressedReader is the interface for a reader that can read a
// compressed stream.
type CompressedReader interface {
	// Open returns a reader for the compressed stream.
	// This only returns a io.ReadCloser because it should only contain a single file
	Open(ctx context.Context, r io.Reader) (io.ReadCloser, error)
}
