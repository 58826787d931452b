// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains an implementation of the CompressedReader interface
// for decompressing a gz stream.

package archive

import (
	"bufio"
	"context"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// _ ensures that the gzipCompressedReader type implements the CompressedReader interface
var _ CompressedReader = &gzipCompressedReader{}

// gzipCompressedReader is a CompressedReader for gzipped streams
type gzipCompressedReader struct{}

// Open returns a reader for a gzipped stream. The gzip header is read
// eagerly so a corrupt header is reported here rather than on the
// first Read.
func (g *gzipCompressedReader) Open(_ context.Context, r io.Reader) (io.ReadCloser, error) {
	// wrap in a bufio.Reader so the decoder does not read past the end
	// of the gzip stream byte by byte
	zr, err := gzip.NewReader(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gzip header")
	}

	return zr, nil
}

// Decompress fully decompresses a single gzip stream. Concatenated gzip
// members are decoded as one stream, like gunzip does.
func Decompress(ctx context.Context, r io.Reader) ([]byte, error) {
	rc, err := (&gzipCompressedReader{}).Open(ctx, r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	byt, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress gzip stream")
	}

	return byt, nil
}
