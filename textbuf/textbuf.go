// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package textbuf implements an append-only accumulator of text fragments.
//
// Fragments are kept as appended and only concatenated when the text is
// requested, at which point the result is built in a single buffer sized from
// the tracked total length.
package textbuf

import "strings"

// Accumulator is an ordered collection of text fragments. The zero value is
// an empty accumulator ready for use.
//
// Accumulator is not safe for concurrent use.
type Accumulator struct {
	frags []string
	// size is the sum of the lengths of frags.
	size  int
	lines int
}

// Append appends s verbatim.
func (a *Accumulator) Append(s string) *Accumulator {
	a.frags = append(a.frags, s)
	a.size += len(s)
	return a
}

// Add appends each of frags verbatim.
func (a *Accumulator) Add(frags ...string) *Accumulator {
	for _, s := range frags {
		a.Append(s)
	}
	return a
}

// AppendLine appends s followed by a newline.
func (a *Accumulator) AppendLine(s string) *Accumulator {
	a.frags = append(a.frags, s+"\n")
	a.size += len(s) + 1
	a.lines++
	return a
}

// NewLine appends a bare newline.
func (a *Accumulator) NewLine() *Accumulator {
	a.frags = append(a.frags, "\n")
	a.size++
	a.lines++
	return a
}

// Clear discards all fragments.
func (a *Accumulator) Clear() {
	clear(a.frags)
	a.frags = a.frags[:0]
	a.size = 0
	a.lines = 0
}

// Len returns the length in bytes of the accumulated text.
func (a *Accumulator) Len() int {
	return a.size
}

// Lines returns the number of lines appended with AppendLine or NewLine since
// the last Clear.
func (a *Accumulator) Lines() int {
	return a.lines
}

// Fragments returns the number of fragments.
func (a *Accumulator) Fragments() int {
	return len(a.frags)
}

// String returns the concatenation of all fragments in append order.
func (a *Accumulator) String() string {
	var b strings.Builder
	b.Grow(a.size)
	for _, s := range a.frags {
		b.WriteString(s)
	}
	return b.String()
}

// Join returns the fragments separated by delim. An empty delim is equivalent
// to String.
func (a *Accumulator) Join(delim string) string {
	if delim == "" {
		return a.String()
	}
	if len(a.frags) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(a.size + len(delim)*(len(a.frags)-1))
	b.WriteString(a.frags[0])
	for _, s := range a.frags[1:] {
		b.WriteString(delim)
		b.WriteString(s)
	}
	return b.String()
}
