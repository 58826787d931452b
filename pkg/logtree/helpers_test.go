// Copyright 2025 Outreach Corporation. All Rights Reserved.

package logtree

import (
	"archive/tar"
	"bytes"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"gotest.tools/v3/assert"
)

type member struct {
	name    string
	body    string
	dir     bool
	link    string
	modTime time.Time
}

// tarGz builds an in-memory gzip compressed tar archive.
func tarGz(t *testing.T, members ...member) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(zw)
	for _, m := range members {
		h := &tar.Header{
			Name:     m.name,
			Mode:     0o644,
			Size:     int64(len(m.body)),
			ModTime:  m.modTime,
			Typeflag: tar.TypeReg,
		}
		switch {
		case m.dir:
			h.Typeflag, h.Mode, h.Size = tar.TypeDir, 0o755, 0
		case m.link != "":
			h.Typeflag, h.Linkname, h.Size = tar.TypeSymlink, m.link, 0
		}
		assert.NilError(t, tw.WriteHeader(h))
		if h.Typeflag == tar.TypeReg {
			_, err := tw.Write([]byte(m.body))
			assert.NilError(t, err)
		}
	}
	assert.NilError(t, tw.Close())
	assert.NilError(t, zw.Close())

	return buf.String()
}

// gz compresses body with gzip.
func gz(t *testing.T, body string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(body))
	assert.NilError(t, err)
	assert.NilError(t, zw.Close())
	return buf.String()
}

// names returns the names of the children of n, in order.
func names(n *Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Name)
	}
	return out
}

// child returns the child of n called name, failing the test when
// there is none.
func child(t *testing.T, n *Node, name string) *Node {
	t.Helper()

	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("%s has no child %q, children: %v", n.Name, name, names(n))
	return nil
}
