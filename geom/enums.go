// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

// SurfaceCombine is the boolean operation applied between two shells.
type SurfaceCombine int

// The surface boolean operations.
const (
	SurfaceUnion        SurfaceCombine = 10
	SurfaceDifference   SurfaceCombine = 11
	SurfaceIntersection SurfaceCombine = 12
)

// String implements fmt.Stringer. Values outside the known set map to
// "UNKNOWN".
func (c SurfaceCombine) String() string {
	switch c {
	case SurfaceUnion:
		return "UNION"
	case SurfaceDifference:
		return "DIFFERENCE"
	case SurfaceIntersection:
		return "INTERSECTION"
	default:
		return "UNKNOWN"
	}
}

// GroupCombine is the way a group's solid is merged with the solid of the
// previous group.
type GroupCombine int

// The group combine modes.
const (
	GroupUnion        GroupCombine = 0
	GroupDifference   GroupCombine = 1
	GroupAssemble     GroupCombine = 2
	GroupIntersection GroupCombine = 3
)

// String implements fmt.Stringer. Values outside the known set map to
// "UNKNOWN".
func (c GroupCombine) String() string {
	switch c {
	case GroupUnion:
		return "UNION"
	case GroupDifference:
		return "DIFFERENCE"
	case GroupIntersection:
		return "INTERSECTION"
	case GroupAssemble:
		return "ASSEMBLE"
	default:
		return "UNKNOWN"
	}
}

// ShellClass classifies a point or surface against a shell.
type ShellClass int

// The shell classifications.
const (
	ShellInside    ShellClass = 100
	ShellOutside   ShellClass = 200
	ShellCoincSame ShellClass = 300
	ShellCoincOpp  ShellClass = 400
)

// String implements fmt.Stringer. Values outside the known set map to
// "UNKNOWN".
func (c ShellClass) String() string {
	switch c {
	case ShellInside:
		return "INSIDE"
	case ShellOutside:
		return "OUTSIDE"
	case ShellCoincSame:
		return "COINC_SAME"
	case ShellCoincOpp:
		return "COINC_OPP"
	default:
		return "UNKNOWN"
	}
}

// CurveSource records where a shell curve came from during a boolean.
type CurveSource int

// The curve sources.
const (
	CurveFromA            CurveSource = 100
	CurveFromB            CurveSource = 200
	CurveFromIntersection CurveSource = 300
)

// String implements fmt.Stringer.
func (s CurveSource) String() string {
	switch s {
	case CurveFromA:
		return "A"
	case CurveFromB:
		return "B"
	case CurveFromIntersection:
		return "INTERSECTION"
	default:
		return "UNKNOWN"
	}
}

// ParseSurfaceCombine returns the SurfaceCombine named s.
func ParseSurfaceCombine(s string) (SurfaceCombine, bool) {
	return parseEnum(s, SurfaceUnion, SurfaceDifference, SurfaceIntersection)
}

// ParseGroupCombine returns the GroupCombine named s.
func ParseGroupCombine(s string) (GroupCombine, bool) {
	return parseEnum(s, GroupUnion, GroupDifference, GroupAssemble, GroupIntersection)
}

// ParseShellClass returns the ShellClass named s.
func ParseShellClass(s string) (ShellClass, bool) {
	return parseEnum(s, ShellInside, ShellOutside, ShellCoincSame, ShellCoincOpp)
}

// ParseCurveSource returns the CurveSource named s.
func ParseCurveSource(s string) (CurveSource, bool) {
	return parseEnum(s, CurveFromA, CurveFromB, CurveFromIntersection)
}

func parseEnum[T interface {
	~int | ~uint32
	String() string
}](s string, values ...T) (T, bool) {
	for _, v := range values {
		if v.String() == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}
