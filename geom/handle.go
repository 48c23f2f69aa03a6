// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

import "github.com/cockroachdb/redact"

// HEntity identifies an entity. Entities generated by a request carry the
// request handle in their upper 16 bits; entities generated by a group have
// the top bit set and carry the group handle in bits 16-29.
type HEntity uint32

// HParam identifies a solver parameter.
type HParam uint32

// HRequest identifies a request.
type HRequest uint32

// HGroup identifies a group.
type HGroup uint32

// HStyle identifies a line style.
type HStyle uint32

// HSurface identifies a surface within a shell.
type HSurface uint32

// HCurve identifies a curve within a shell.
type HCurve uint32

// IsFromRequest returns true if the entity was generated by a request.
func (h HEntity) IsFromRequest() bool {
	return h&0x80000000 == 0
}

// Request returns the handle of the request that generated the entity. Only
// meaningful when IsFromRequest returns true.
func (h HEntity) Request() HRequest {
	return HRequest(h >> 16)
}

// Group returns the handle of the group that generated the entity. Only
// meaningful when IsFromRequest returns false.
func (h HEntity) Group() HGroup {
	return HGroup((h >> 16) & 0x3fff)
}

func formatHandle(w redact.SafePrinter, v uint32) {
	w.Printf("%08x", redact.SafeUint(v))
}

// SafeFormat implements redact.SafeFormatter.
func (h HEntity) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HEntity) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HParam) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HParam) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HRequest) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HRequest) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HGroup) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HGroup) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HStyle) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HStyle) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HSurface) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HSurface) String() string { return redact.StringWithoutMarkers(h) }

// SafeFormat implements redact.SafeFormatter.
func (h HCurve) SafeFormat(w redact.SafePrinter, _ rune) { formatHandle(w, uint32(h)) }

// String implements fmt.Stringer.
func (h HCurve) String() string { return redact.StringWithoutMarkers(h) }
