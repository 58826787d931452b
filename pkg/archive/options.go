// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: This file contains options for the archive package.

package archive

// ExtractOptions are the options for the Extract function.
type ExtractOptions struct {
	// MemberName is the base name of the member to extract out of the
	// provided archive. Directory components stored in the archive are
	// not considered.
	MemberName string
}

// ExtractOptionFunc is an option function that mutates an ExtractOptions struct.
type ExtractOptionFunc func(*ExtractOptions) error

// WithMemberName is an ExtractOptionFunc that sets the member name to
// extract out of the provided archive.
func WithMemberName(name string) ExtractOptionFunc {
	return func(opts *ExtractOptions) error {
		opts.MemberName = name
		return nil
	}
}
