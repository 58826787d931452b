// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Serializes listings and diagnostics for the CLI.

// Package render turns logtree results into the text written by the
// logview command: an indented JSON document for listings, the raw
// bytes for reads and single line diagnostics for failures.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/getoutreach/logview/pkg/logtree"
)

// json is the listing encoder. HTML escaping is disabled so log names
// containing <, > or & are written as is.
var json = jsoniter.Config{
	EscapeHTML:    false,
	IndentionStep: 2,
}.Froze()

// Document is the top level listing object.
type Document struct {
	Entries   []Entry `json:"entries"`
	Error     bool    `json:"error,omitempty"`
	ErrorText string  `json:"errortext,omitempty"`
}

// Entry is one element of a listing. Metadata is only present for file
// kinds and Entries only for containers.
type Entry struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Size      *int64   `json:"size,omitempty"`
	CTime     *int64   `json:"ctime,omitempty"`
	MTime     *int64   `json:"mtime,omitempty"`
	Entries   *[]Entry `json:"entries,omitempty"`
	Error     bool     `json:"error,omitempty"`
	ErrorText string   `json:"errortext,omitempty"`
}

// NewDocument converts the root of a listing into its wire form.
func NewDocument(root *logtree.Node) *Document {
	doc := &Document{Entries: entries(root.Children)}
	if root.Err != nil {
		doc.Error = true
		doc.ErrorText = root.Err.Error()
	}
	return doc
}

// entries converts nodes, never returning nil.
func entries(nodes []*logtree.Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, newEntry(n))
	}
	return out
}

func newEntry(n *logtree.Node) Entry {
	e := Entry{Name: n.Name, Type: n.Kind.String()}
	if n.HasMetadata() {
		size, ctime, mtime := n.Size, n.CreatedAt, n.ModifiedAt
		e.Size, e.CTime, e.MTime = &size, &ctime, &mtime
	}
	if n.Kind.IsContainer() {
		children := entries(n.Children)
		e.Entries = &children
	}
	if n.Err != nil {
		e.Error = true
		e.ErrorText = n.Err.Error()
	}
	return e
}

// Listing writes the listing rooted at root to w, followed by a
// newline.
func Listing(w io.Writer, root *logtree.Node) error {
	if err := json.NewEncoder(w).Encode(NewDocument(root)); err != nil {
		return errors.Wrap(err, "failed to encode listing")
	}
	return nil
}

// Content writes the content of a resolved log to w unmodified.
func Content(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "failed to write log content")
	}
	return nil
}

// errorPrefix is highlighted when w is a terminal.
var errorPrefix = color.New(color.FgRed, color.Bold)

// Diagnostic writes err as a single "Error: ..." line.
func Diagnostic(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorPrefix.Sprint("Error:"), err)
}
