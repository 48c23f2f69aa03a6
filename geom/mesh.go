// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

// Color is an RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns an opaque color with the given components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ToPackedInt packs c into 32 bits with red in the low byte. Alpha is stored
// inverted, so that an opaque color packs with a zero top byte.
func (c Color) ToPackedInt() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(255-c.A)<<24
}

// TriMeta is the per-triangle metadata of a mesh.
type TriMeta struct {
	Face  uint32
	Color Color
}

// Triangle is a mesh triangle with per-vertex normals.
type Triangle struct {
	Meta       TriMeta
	A, B, C    Vector
	An, Bn, Cn Vector
}

// Normal returns the unnormalized face normal of t.
func (t *Triangle) Normal() Vector {
	return t.B.Minus(t.A).Cross(t.C.Minus(t.B))
}

// Mesh is a triangle soup.
type Mesh struct {
	Triangles []Triangle
}
