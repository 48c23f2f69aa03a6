// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

// MaxCtrlPts bounds the control grid of a surface and the control polygon of
// a bezier: degrees range from 1 to MaxCtrlPts-1.
const MaxCtrlPts = 4

// Shell is a boundary representation: a set of trimmed surfaces and the
// curves along which they meet.
type Shell struct {
	Surfaces []Surface
	Curves   []Curve
}

// Surface is a rational polynomial tensor product surface, trimmed by curves
// of the owning shell.
type Surface struct {
	H     HSurface
	Face  uint32
	Color Color

	// DegM and DegN are the polynomial degrees in u and v. Only the
	// (DegM+1) x (DegN+1) corner of Ctrl and Weight is meaningful.
	DegM, DegN int
	Ctrl       [MaxCtrlPts][MaxCtrlPts]Vector
	Weight     [MaxCtrlPts][MaxCtrlPts]float64

	Trim  []TrimBy
	Edges []Edge
}

// TrimBy restricts a surface to one side of a curve of the shell.
type TrimBy struct {
	Curve     HCurve
	Backwards bool
	Start     Vector
	Finish    Vector
}

// CurvePt is a sample point of a shell curve.
type CurvePt struct {
	// Vertex is true when the point coincides with a topological vertex.
	Vertex bool
	P      Vector
}

// Curve is an edge curve of a shell, shared by the two surfaces it separates.
type Curve struct {
	H      HCurve
	Source CurveSource
	SurfA  HSurface
	SurfB  HSurface
	Exact  Bezier
	Pts    []CurvePt
}

// Edge is a straight line segment.
type Edge struct {
	A, B Vector
}

// Length returns the distance between the endpoints of e.
func (e Edge) Length() float64 {
	return e.B.Minus(e.A).Magnitude()
}

// Point is a polygon vertex together with an auxiliary direction.
type Point struct {
	P    Vector
	Auxv Vector
}

// Contour is a closed polyline.
type Contour struct {
	Points []Point
}

// Polygon is a set of contours, outer boundaries and holes alike.
type Polygon struct {
	Contours []Contour
}

// Bezier is a rational bezier curve of degree Deg.
type Bezier struct {
	Deg    int
	Ctrl   [MaxCtrlPts]Vector
	Weight [MaxCtrlPts]float64
}

// BezierLoop is a closed chain of bezier curves.
type BezierLoop struct {
	Beziers []Bezier
}

// BezierLoopSet is a set of loops lying in a common plane.
type BezierLoopSet struct {
	Loops  []BezierLoop
	Normal Vector
	Point  Vector
	Area   float64
}

// BezierList is an unordered collection of bezier curves.
type BezierList struct {
	Beziers []Bezier
}
