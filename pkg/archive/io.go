// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains io related functions for the archive package.

package archive

import "io"

// sequencedReadCloser is a ReadCloser that reads from the embedded
// reader and closes all of the provided closers in the order they were
// added when Close is called.
type sequencedReadCloser struct {
	io.Reader
	closers []io.Closer
}

// Close closes all of the contained closers in the order they were
// added. Every closer is called even if an earlier one fails, the
// first error is returned.
func (n *sequencedReadCloser) Close() error {
	var firstErr error
	for _, c := range n.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// newSequencedReadCloser returns a new sequencedReadCloser reading
// from r.
func newSequencedReadCloser(r io.Reader, closers ...io.Closer) *sequencedReadCloser {
	return &sequencedReadCloser{r, closers}
}
