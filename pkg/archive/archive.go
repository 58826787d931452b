// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains the entrypoints for listing and
// extracting members of a compressed tar archive.

// Package archive contains methods for reading gzip compressed files
// and the members of gzip compressed tar archives. Archives are treated
// as flat lists of files: a member is known by the last component of
// its stored path.
package archive

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrMemberNotFound is returned by Extract when no member of the
// archive matches the provided options.
var ErrMemberNotFound = errors.New("no matching file in archive")

// Reader is an Archive that owns the underlying decompressor. It must
// be closed once the caller is done scanning.
type Reader struct {
	Archive

	extractor Extractor
}

// Close releases the decompressor backing the Reader.
func (r *Reader) Close() error {
	return r.extractor.Close()
}

// Open opens a compressed tar archive for a single scan of its members.
// The archive type is derived from archiveName.
func Open(ctx context.Context, archiveName string, r io.Reader) (*Reader, error) {
	if !IsTarGz(archiveName) {
		return nil, errors.Errorf("unsupported archive type: %v", archiveName)
	}

	extractor := &tarExtractor{}
	a, err := extractor.Open(ctx, archiveName, r)
	if err != nil {
		return nil, err
	}

	return &Reader{Archive: a, extractor: extractor}, nil
}

// IsTarGz reports whether name carries a gzip compressed tar suffix,
// ignoring case.
func IsTarGz(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".tar.gz")
}

// List returns the headers of every member in the archive, in archive
// order. Directories and links are members too, known by the last
// component of their stored path like files are. If the archive is
// truncated or corrupt the headers read before the failure are returned
// alongside the error.
func List(ctx context.Context, archiveName string, r io.Reader) ([]Header, error) {
	ar, err := Open(ctx, archiveName, r)
	if err != nil {
		return nil, err
	}
	defer ar.Close()

	headers := make([]Header, 0)
	for ctx.Err() == nil {
		h, _, err := ar.Next()
		if errors.Is(err, io.EOF) {
			return headers, nil
		} else if err != nil {
			return headers, err
		}

		headers = append(headers, *h)
	}

	return headers, ctx.Err()
}

// Extract extracts a member, based on the provided option functions,
// from the provided archive. The first matching member in archive order
// wins, whatever its type: directories and links read as empty. The
// returned reader must be closed, closing it releases the archive.
func Extract(ctx context.Context, archiveName string, r io.Reader,
	optFns ...ExtractOptionFunc) (io.ReadCloser, *Header, error) {
	opts := &ExtractOptions{}
	for _, fn := range optFns {
		if err := fn(opts); err != nil {
			return nil, nil, err
		}
	}
	if opts.MemberName == "" {
		return nil, nil, errors.New("WithMemberName must be provided via the options")
	}

	ar, err := Open(ctx, archiveName, r)
	if err != nil {
		return nil, nil, err
	}

	for ctx.Err() == nil {
		header, rc, err := ar.Next()
		if errors.Is(err, io.EOF) {
			// Didn't find the file, break
			break
		} else if err != nil {
			ar.Close()
			return nil, nil, err
		}

		if header.Name == opts.MemberName {
			// close the member then close the archive
			return newSequencedReadCloser(rc, rc, ar), header, nil
		}
	}
	ar.Close()

	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	return nil, nil, ErrMemberNotFound
}

// ReadMember returns the full content of the first member named
// memberName.
func ReadMember(ctx context.Context, archiveName string, r io.Reader, memberName string) ([]byte, error) {
	rc, _, err := Extract(ctx, archiveName, r, WithMemberName(memberName))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	byt, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read archive member %q", memberName)
	}

	return byt, nil
}
