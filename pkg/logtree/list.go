// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Recursive, archive aware directory listing.

package logtree

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/getoutreach/logview/pkg/archive"
	"github.com/getoutreach/logview/pkg/metrics"
	"github.com/getoutreach/logview/pkg/olog"
)

// lister walks a tree depth first. It holds no state besides the
// logger, every open file is scoped to the call that opened it.
type lister struct {
	log *slog.Logger
}

// List walks dir recursively and returns its listing. Failures never
// abort the walk: an unreadable directory or a corrupt archive is
// recorded on its own node (Node.Err) and its siblings are listed as
// usual. The returned root node is always a directory node.
func List(ctx context.Context, dir string) *Node {
	ctx, span := startSpan(ctx, "logtree.List", dir)
	start := time.Now()

	l := &lister{log: olog.New()}
	root := l.listDir(ctx, dir, 0)

	endSpan(span, root.Err)
	metrics.ReportLatency("list", time.Since(start).Seconds(), root.Err)
	return root
}

// listDir lists a single directory. depth is only used for logging.
func (l *lister) listDir(ctx context.Context, dir string, depth int) *Node {
	node := &Node{Name: filepath.Base(dir), Kind: KindDirectory, Children: []*Node{}}

	entries, err := readEntries(dir)
	if err != nil {
		node.Err = &PathError{Op: "Could not read path", Path: dir, Kind: ErrDirectoryUnreadable, Err: cause(err)}
		l.log.WarnContext(ctx, "directory unreadable", "path", dir, "depth", depth, "error", err)
		return node
	}

	sortEntries(entries)
	for i := range entries {
		child := l.nodeFor(ctx, &entries[i], depth+1)
		if child == nil {
			continue
		}
		metrics.CountEntry(child.Kind.String())
		node.Children = append(node.Children, child)
	}
	return node
}

// sortEntries orders entries by lowercased name and then moves every
// directory after the non-directories. Both sorts are stable, so each
// group stays alphabetical.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return !entries[i].IsDir() && entries[j].IsDir()
	})
}

// nodeFor renders a single entry, nil means the entry is left out of
// the listing.
func (l *lister) nodeFor(ctx context.Context, e *Entry, depth int) *Node {
	switch e.Kind {
	case KindDirectory:
		l.log.DebugContext(ctx, "descending", "path", e.Path, "depth", depth)
		n := l.listDir(ctx, e.Path, depth)
		n.Name = e.Name
		return n
	case KindCompressedDirectory:
		return l.listArchive(ctx, e, depth)
	case KindCompressedFile, KindPlainFile:
		return &Node{
			Name:       e.Name,
			Kind:       e.Kind,
			Size:       e.Size,
			CreatedAt:  e.CreatedAt,
			ModifiedAt: e.ModifiedAt,
		}
	case KindSymlink:
		return &Node{Name: e.Name, Kind: KindSymlink}
	case KindUnreadable:
		l.log.WarnContext(ctx, "skipping unreadable entry", "path", e.Path, "depth", depth, "error", e.Err)
		return nil
	default:
		panic(fmt.Sprintf("logtree: unhandled entry kind %d", e.Kind))
	}
}

// listArchive renders a .tar.gz file as a container of its members. A
// decoding failure is recorded on the node, members read before the
// failure are kept.
func (l *lister) listArchive(ctx context.Context, e *Entry, depth int) *Node {
	node := &Node{Name: e.Name, Kind: KindCompressedDirectory, Children: []*Node{}}

	f, err := os.Open(e.Path)
	if err != nil {
		node.Err = &PathError{Op: "Could not open archive", Path: e.Path, Kind: ErrArchive, Err: cause(err)}
		l.log.WarnContext(ctx, "archive unreadable", "path", e.Path, "depth", depth, "error", err)
		return node
	}
	defer f.Close()

	l.log.DebugContext(ctx, "opening archive", "path", e.Path, "depth", depth)
	headers, err := archive.List(ctx, e.Name, f)
	metrics.CountArchiveOpened(err)

	for i := range headers {
		h := &headers[i]
		node.Children = append(node.Children, &Node{
			Name:       h.Name,
			Kind:       KindPlainFile,
			Size:       h.Size,
			CreatedAt:  h.CreatedAt,
			ModifiedAt: h.ModTime,
		})
		metrics.CountEntry(KindPlainFile.String())
	}

	if err != nil {
		node.Err = &PathError{Op: "Could not read archive", Path: e.Path, Kind: ErrArchive, Err: err}
		l.log.WarnContext(ctx, "archive corrupt", "path", e.Path, "depth", depth, "members", len(headers), "error", err)
	}
	return node
}
