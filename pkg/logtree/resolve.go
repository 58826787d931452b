// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Resolution of logical paths to log content.

package logtree

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getoutreach/logview/pkg/archive"
	"github.com/getoutreach/logview/pkg/metrics"
	"github.com/getoutreach/logview/pkg/olog"
	"github.com/pkg/errors"
)

// resolver walks a single path query. Like lister, all file handles
// are owned by the call that opened them.
type resolver struct {
	log *slog.Logger
}

// SplitPath splits a logical path on "/". The empty path has no
// segments.
func SplitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Resolve returns the decompressed content of the log named by
// segments, relative to baseDir. Plain files are returned unmodified,
// .gz files are decompressed and a .tar.gz file followed by a member
// name yields the first member with that name.
//
// At every level the first matching entry wins, siblings are never
// retried. Errors are *PathError values matching one of ErrEmptyPath,
// ErrNotFound, ErrDirectoryUnreadable or ErrArchive.
func Resolve(ctx context.Context, baseDir string, segments []string) ([]byte, error) {
	ctx, span := startSpan(ctx, "logtree.Resolve", strings.Join(segments, "/"))
	start := time.Now()

	var b []byte
	var err error
	if len(segments) == 0 {
		err = &PathError{Op: "path is empty", Kind: ErrEmptyPath}
	} else {
		r := &resolver{log: olog.New()}
		b, err = r.resolveDir(ctx, baseDir, segments)
	}

	endSpan(span, err)
	metrics.CountResolution(outcome(err))
	metrics.ReportLatency("read", time.Since(start).Seconds(), err)
	return b, err
}

// resolveDir consumes segments[0] against the children of dir.
func (r *resolver) resolveDir(ctx context.Context, dir string, segments []string) ([]byte, error) {
	des, err := readDir(dir)
	if err != nil {
		return nil, &PathError{Op: "Could not read path", Path: dir, Kind: ErrDirectoryUnreadable, Err: cause(err)}
	}

	for _, de := range des {
		if de.Name() != segments[0] {
			continue
		}

		path := filepath.Join(dir, de.Name())
		kind := Classify(de.Name(), de.Type())
		r.log.DebugContext(ctx, "candidate", "path", path, "kind", kind.String(), "remaining", len(segments))

		switch kind {
		case KindDirectory:
			if len(segments) > 1 {
				return r.resolveDir(ctx, path, segments[1:])
			}
		case KindPlainFile:
			if len(segments) == 1 {
				return r.readPlain(path)
			}
		case KindCompressedFile:
			if len(segments) == 1 {
				return r.readCompressed(ctx, path)
			}
		case KindCompressedDirectory:
			if len(segments) == 2 {
				return r.readMember(ctx, path, segments[1])
			}
		case KindSymlink, KindUnreadable:
			// never followed
		default:
			panic(fmt.Sprintf("logtree: unhandled entry kind %d", kind))
		}
	}

	return nil, &PathError{
		Op:   "File not found in filesystem enumeration",
		Path: filepath.Join(dir, strings.Join(segments, "/")),
		Kind: ErrNotFound,
	}
}

// readPlain returns the raw bytes of path.
func (r *resolver) readPlain(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &PathError{Op: "file not found", Path: path, Kind: ErrNotFound, Err: cause(err)}
	}
	return b, nil
}

// readCompressed returns the decompressed content of the .gz file at
// path.
func (r *resolver) readCompressed(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Op: "file not found", Path: path, Kind: ErrNotFound, Err: cause(err)}
	}
	defer f.Close()

	b, err := archive.Decompress(ctx, f)
	metrics.CountArchiveOpened(err)
	if err != nil {
		r.log.WarnContext(ctx, "decompression failed", "path", path, "error", err)
		return nil, &PathError{Op: "Could not decompress", Path: path, Kind: ErrArchive, Err: err}
	}
	return b, nil
}

// readMember returns the content of the first member called member in
// the .tar.gz file at path.
func (r *resolver) readMember(ctx context.Context, path, member string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Op: "file not found", Path: path, Kind: ErrNotFound, Err: cause(err)}
	}
	defer f.Close()

	b, err := archive.ReadMember(ctx, filepath.Base(path), f, member)
	switch {
	case errors.Is(err, archive.ErrMemberNotFound):
		metrics.CountArchiveOpened(nil)
		return nil, &PathError{
			Op:   "File not found in filesystem enumeration",
			Path: filepath.Join(path, member),
			Kind: ErrNotFound,
		}
	case err != nil:
		metrics.CountArchiveOpened(err)
		r.log.WarnContext(ctx, "archive read failed", "path", path, "member", member, "error", err)
		return nil, &PathError{Op: "Could not read archive", Path: path, Kind: ErrArchive, Err: err}
	}

	metrics.CountArchiveOpened(nil)
	return b, nil
}
