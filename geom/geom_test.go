// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestEnumNames(t *testing.T) {
	require.Equal(t, "UNION", SurfaceUnion.String())
	require.Equal(t, "DIFFERENCE", SurfaceDifference.String())
	require.Equal(t, "INTERSECTION", SurfaceIntersection.String())
	require.Equal(t, "UNKNOWN", SurfaceCombine(0).String())
	require.Equal(t, "UNKNOWN", SurfaceCombine(-7).String())

	require.Equal(t, "UNION", GroupUnion.String())
	require.Equal(t, "DIFFERENCE", GroupDifference.String())
	require.Equal(t, "INTERSECTION", GroupIntersection.String())
	require.Equal(t, "ASSEMBLE", GroupAssemble.String())
	require.Equal(t, "UNKNOWN", GroupCombine(99).String())

	require.Equal(t, "INSIDE", ShellInside.String())
	require.Equal(t, "OUTSIDE", ShellOutside.String())
	require.Equal(t, "COINC_SAME", ShellCoincSame.String())
	require.Equal(t, "COINC_OPP", ShellCoincOpp.String())
	require.Equal(t, "UNKNOWN", ShellClass(101).String())

	require.Equal(t, "A", CurveFromA.String())
	require.Equal(t, "UNKNOWN", CurveSource(0).String())

	require.Equal(t, "line-segment", EntityLineSegment.String())
	require.Equal(t, "UNKNOWN", EntityType(1).String())
	require.Equal(t, "datum-point", RequestDatumPoint.String())
	require.Equal(t, "extrude", GroupExtrude.String())
}

func TestParseEnums(t *testing.T) {
	c, ok := ParseSurfaceCombine("INTERSECTION")
	require.True(t, ok)
	require.Equal(t, SurfaceIntersection, c)
	_, ok = ParseSurfaceCombine("ASSEMBLE")
	require.False(t, ok)

	g, ok := ParseGroupCombine("ASSEMBLE")
	require.True(t, ok)
	require.Equal(t, GroupAssemble, g)

	s, ok := ParseShellClass("COINC_OPP")
	require.True(t, ok)
	require.Equal(t, ShellCoincOpp, s)

	src, ok := ParseCurveSource("B")
	require.True(t, ok)
	require.Equal(t, CurveFromB, src)

	et, ok := ParseEntityType("arc-of-circle")
	require.True(t, ok)
	require.Equal(t, EntityArcOfCircle, et)
	_, ok = ParseEntityType("UNKNOWN")
	require.False(t, ok)

	rt, ok := ParseRequestType("cubic")
	require.True(t, ok)
	require.Equal(t, RequestCubic, rt)

	gt, ok := ParseGroupType("lathe")
	require.True(t, ok)
	require.Equal(t, GroupLathe, gt)
}

func TestHandles(t *testing.T) {
	e := HEntity(0x00040001)
	require.True(t, e.IsFromRequest())
	require.Equal(t, HRequest(4), e.Request())

	ge := HEntity(0x80020003)
	require.False(t, ge.IsFromRequest())
	require.Equal(t, HGroup(2), ge.Group())

	require.Equal(t, "00040001", e.String())
	require.Equal(t, "0000abcd", fmt.Sprint(HParam(0xabcd)))
	// Handles are safe for redaction.
	require.Equal(t, redact.RedactableString("00000010"), redact.Sprint(HCurve(0x10)))
}

func TestRequestDescription(t *testing.T) {
	r := Request{H: 4, Type: RequestLineSegment}
	require.Equal(t, "r004-line-segment", r.DescriptionString())
	r = Request{H: 0x1234, Type: RequestType(3)}
	require.Equal(t, "r1234-UNKNOWN", r.DescriptionString())
}

func TestSketch(t *testing.T) {
	var s Sketch
	_, ok := s.Request(1)
	require.False(t, ok)
	s.AddRequest(Request{H: 1, Type: RequestCircle})
	s.AddGroup(Group{H: 2, Type: GroupExtrude, Name: "boss"})
	r, ok := s.Request(1)
	require.True(t, ok)
	require.Equal(t, RequestCircle, r.Type)
	g, ok := s.Group(2)
	require.True(t, ok)
	require.Equal(t, "boss", g.Name)
}

func TestColorToPackedInt(t *testing.T) {
	require.Equal(t, uint32(0), RGBA(0, 0, 0, 255).ToPackedInt())
	require.Equal(t, uint32(0x00030201), RGBA(1, 2, 3, 255).ToPackedInt())
	require.Equal(t, uint32(0xff0000ff), RGBA(255, 0, 0, 0).ToPackedInt())
}

func TestEdgeLength(t *testing.T) {
	e := Edge{A: Vector{1, 1, 1}, B: Vector{4, 5, 1}}
	require.Equal(t, 5.0, e.Length())
	require.Equal(t, 0.0, Edge{}.Length())
}

func TestTriangleNormal(t *testing.T) {
	tr := Triangle{A: Vector{0, 0, 0}, B: Vector{1, 0, 0}, C: Vector{1, 1, 0}}
	require.Equal(t, Vector{0, 0, 1}, tr.Normal())
}

func TestLookup(t *testing.T) {
	var tree BspUvTree
	_, ok := tree.Node(tree.Root)
	require.False(t, ok)

	child := tree.Add(BspUv{A: Point2{1, 1}})
	root := tree.Add(BspUv{Children: Children{Pos: child}})
	tree.Root = root
	require.Equal(t, NodeID(1), child)
	require.Equal(t, Leaf(), tree.Nodes[0].Children)

	n, ok := tree.Node(tree.Root)
	require.True(t, ok)
	require.Equal(t, child, n.Links().Pos)
	_, ok = tree.Node(n.Neg)
	require.False(t, ok)
	_, ok = tree.Node(NodeID(len(tree.Nodes) + 1))
	require.False(t, ok)
	_, ok = tree.Node(-1)
	require.False(t, ok)
}
