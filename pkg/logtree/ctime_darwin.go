// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: File creation time on darwin.

//go:build darwin

package logtree

import (
	"io/fs"
	"syscall"
)

// createdAt returns the birth time recorded in the stat data.
func createdAt(_ string, info fs.FileInfo) int64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st.Birthtimespec.Sec < 0 {
		return 0
	}
	return st.Birthtimespec.Sec
}
