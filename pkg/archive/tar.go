// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains code for interacting with compressed
// tar files.

package archive

import (
	"archive/tar"
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// _ ensures that the tarExtractor type implements the Extractor interface
var _ Extractor = &tarExtractor{}

// _ ensures that the tarArchive type implements the Archive interface
var _ Archive = &tarArchive{}

// tarExtractor is an extractor for compressed tar files
type tarExtractor struct {
	r io.Closer
}

// Open returns a reader for the archive file
func (t *tarExtractor) Open(ctx context.Context, name string, r io.Reader) (Archive, error) {
	var container CompressedReader

	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"):
		container = &gzipCompressedReader{}
	default:
		return nil, errors.Errorf("unsupported container type: %v", name)
	}

	containerR, err := container.Open(ctx, r)
	if err != nil {
		return nil, err
	}
	t.r = containerR

	// return a new tarArchive that implements Archive with our tar.Reader
	return &tarArchive{tar.NewReader(containerR)}, nil
}

// Close closes the reader returned by Open. This can be called multiple
// times and when Open hasn't been called safely.
// This is not go-routine safe.
func (t *tarExtractor) Close() error {
	if t.r == nil {
		return nil
	}

	err := t.r.Close()
	t.r = nil
	return err
}

// tarArchive implements the Archive interface for tar files.
type tarArchive struct {
	r *tar.Reader
}

// Next advances to the next member in the archive.
func (t *tarArchive) Next() (*Header, io.ReadCloser, error) {
	th, err := t.r.Next()
	if errors.Is(err, io.EOF) {
		return nil, nil, io.EOF
	} else if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tar header")
	}

	h := &Header{
		Name:    memberName(th.Name),
		Path:    th.Name,
		Size:    th.Size,
		Mode:    th.Mode,
		ModTime: unixSeconds(th.ModTime),
		Type:    HeaderTypeOther,
	}

	switch th.Typeflag {
	case tar.TypeReg:
		h.Type = HeaderTypeFile
	case tar.TypeDir:
		h.Type = HeaderTypeDirectory
	}

	return h, io.NopCloser(t.r), nil
}

// unixSeconds converts t to seconds since the unix epoch, headers dated
// before the epoch report 0.
func unixSeconds(t time.Time) int64 {
	if s := t.Unix(); s > 0 {
		return s
	}
	return 0
}

// memberName returns the last path component of a tar header name.
func memberName(name string) string {
	return path.Base(strings.TrimSuffix(name, "/"))
}
