// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

import "math"

// Vector is a point or direction in model space.
type Vector struct {
	X, Y, Z float64
}

// Plus returns v+o.
func (v Vector) Plus(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Minus returns v-o.
func (v Vector) Minus(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// ScaledBy returns v*s.
func (v Vector) ScaledBy(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude returns the length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Point2 is a point in the (u, v) parameter plane of a surface.
type Point2 struct {
	X, Y float64
}

// Quaternion is a rotation, stored with the scalar part first.
type Quaternion struct {
	W, Vx, Vy, Vz float64
}
