// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package scalar formats named scalar fields for dumps. The Format functions
// return "" for the default value of a field so that dumps only carry fields
// that were actually set.
package scalar

import (
	"fmt"
	"math"

	"github.com/geomkit/sdump/geom"
)

// Epsilon is the magnitude below which Rz snaps a value to zero.
const Epsilon = 1e-8

// Rz returns 0 if |v| < Epsilon, and v otherwise. Snapping removes round-off
// noise so that dumps of runs which differ only below Epsilon compare equal.
func Rz(v float64) float64 {
	if math.Abs(v) < Epsilon {
		return 0
	}
	return v
}

// FormatString returns "name=s", or "" if s is empty.
func FormatString(name, s string) string {
	if s == "" {
		return ""
	}
	return name + "=" + s
}

// FormatHex returns "name=" followed by v as 8 lowercase hex digits, or "" if
// v is zero.
func FormatHex(name string, v uint32) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%s=%08x", name, v)
}

// FormatInt returns "name=v", or "" if v is zero.
func FormatInt(name string, v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%s=%d", name, v)
}

// FormatBool formats b as FormatInt formats 1 or 0.
func FormatBool(name string, b bool) string {
	if !b {
		return ""
	}
	return name + "=1"
}

// FormatFloat returns "name=" followed by Rz(f) with 4 fractional digits, or
// "" if f is exactly zero. Values that snap to zero are still printed.
func FormatFloat(name string, f float64) string {
	if f == 0 {
		return ""
	}
	return name + "=" + Float(f)
}

// Float formats Rz(f) with 4 fractional digits.
func Float(f float64) string {
	return fmt.Sprintf("%.4f", Rz(f))
}

// Vector formats v as "(x=.. y=.. z=..)".
func Vector(v geom.Vector) string {
	return fmt.Sprintf("(x=%.4f y=%.4f z=%.4f)", Rz(v.X), Rz(v.Y), Rz(v.Z))
}

// Point formats v as "(x=.., y=.., z=..)", the form used for control and
// sample points.
func Point(v geom.Vector) string {
	return fmt.Sprintf("(x=%.4f, y=%.4f, z=%.4f)", Rz(v.X), Rz(v.Y), Rz(v.Z))
}

// Point2 formats p as "(x=.. y=..)".
func Point2(p geom.Point2) string {
	return fmt.Sprintf("(x=%.4f y=%.4f)", Rz(p.X), Rz(p.Y))
}

// Quaternion formats q as "(w=.. x=.. y=.. z=..)".
func Quaternion(q geom.Quaternion) string {
	return fmt.Sprintf("(w=%.4f x=%.4f y=%.4f z=%.4f)", Rz(q.W), Rz(q.Vx), Rz(q.Vy), Rz(q.Vz))
}
