// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: File creation time on linux, read with statx.

//go:build linux

package logtree

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// createdAt returns the birth time of path in seconds since the unix
// epoch, or 0 when the kernel or filesystem does not record it.
func createdAt(path string, _ fs.FileInfo) int64 {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx); err != nil {
		return 0
	}
	if stx.Mask&unix.STATX_BTIME == 0 || stx.Btime.Sec < 0 {
		return 0
	}
	return stx.Btime.Sec
}
