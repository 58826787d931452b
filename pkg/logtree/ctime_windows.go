// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: File creation time on windows.

//go:build windows

package logtree

import (
	"io/fs"
	"syscall"
	"time"
)

// createdAt returns the creation time recorded in the file attributes.
func createdAt(_ string, info fs.FileInfo) int64 {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return 0
	}
	return unixSeconds(time.Unix(0, d.CreationTime.Nanoseconds()))
}
