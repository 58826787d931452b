// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: The in-memory listing tree.

package logtree

// Node is one element of a listing. Container kinds (directories and
// compressed directories) always have a non-nil Children slice, leaf
// kinds never have one.
type Node struct {
	Name string
	Kind Kind

	// Size, CreatedAt and ModifiedAt are only meaningful for file kinds.
	// Archive members always report a CreatedAt of 0.
	Size       int64
	CreatedAt  int64
	ModifiedAt int64

	Children []*Node

	// Err is set when the subtree rooted at this node could not be read
	// completely.
	Err error
}

// HasMetadata reports whether size and times are part of the node.
func (n *Node) HasMetadata() bool {
	return n.Kind == KindPlainFile || n.Kind == KindCompressedFile
}
