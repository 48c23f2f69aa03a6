// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package scenario

import (
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/lcgrand"
)

// randomCoord returns a coordinate in [-10, 10) with two decimals, so that
// random objects dump without rounding noise.
func randomCoord(src *lcgrand.Source) float64 {
	return float64(src.IntBelow(2000)-1000) / 100
}

func randomVector(src *lcgrand.Source) geom.Vector {
	return geom.Vector{X: randomCoord(src), Y: randomCoord(src), Z: randomCoord(src)}
}

func randomColor(src *lcgrand.Source) geom.Color {
	return geom.RGBA(uint8(src.IntBelow(256)), uint8(src.IntBelow(256)), uint8(src.IntBelow(256)), 255)
}

// RandomMesh returns a mesh of n triangles drawn from src. Vertex normals are
// set to the unit face normal.
func RandomMesh(src *lcgrand.Source, n int) *geom.Mesh {
	m := &geom.Mesh{Triangles: make([]geom.Triangle, n)}
	for i := range m.Triangles {
		t := &m.Triangles[i]
		t.Meta.Face = uint32(src.IntBelow(16))
		t.Meta.Color = randomColor(src)
		t.A, t.B, t.C = randomVector(src), randomVector(src), randomVector(src)
		if nv := t.Normal(); nv.Magnitude() > 0 {
			nv = nv.ScaledBy(1 / nv.Magnitude())
			t.An, t.Bn, t.Cn = nv, nv, nv
		}
	}
	return m
}

// RandomShell returns a shell of n surfaces drawn from src, each of degree 1
// to 3 in both directions, and one curve per surface joining it to the next.
func RandomShell(src *lcgrand.Source, n int) *geom.Shell {
	sh := &geom.Shell{Surfaces: make([]geom.Surface, n)}
	for i := range sh.Surfaces {
		s := &sh.Surfaces[i]
		s.H = geom.HSurface(i + 1)
		s.Face = uint32(src.IntBelow(16))
		s.Color = randomColor(src)
		s.DegM, s.DegN = 1+src.IntBelow(3), 1+src.IntBelow(3)
		for u := 0; u <= s.DegM; u++ {
			for v := 0; v <= s.DegN; v++ {
				s.Ctrl[u][v] = randomVector(src)
				s.Weight[u][v] = 1
			}
		}
	}
	for i := range sh.Surfaces {
		c := geom.Curve{
			H:      geom.HCurve(i + 1),
			Source: geom.CurveFromIntersection,
			SurfA:  geom.HSurface(i + 1),
			SurfB:  geom.HSurface((i+1)%n + 1),
		}
		c.Exact.Deg = 1
		c.Exact.Ctrl[0], c.Exact.Ctrl[1] = randomVector(src), randomVector(src)
		c.Exact.Weight[0], c.Exact.Weight[1] = 1, 1
		c.Pts = []geom.CurvePt{
			{Vertex: true, P: c.Exact.Ctrl[0]},
			{P: c.Exact.Ctrl[0].Plus(c.Exact.Ctrl[1]).ScaledBy(0.5)},
			{Vertex: true, P: c.Exact.Ctrl[1]},
		}
		sh.Curves = append(sh.Curves, c)
	}
	return sh
}

// Random returns a scenario holding a random mesh named "mesh" and a random
// shell named "shell", drawn from a source seeded with seed.
func Random(seed uint32, triangles, surfaces int) *Scenario {
	src := lcgrand.New(seed)
	return &Scenario{
		Objects: []Object{
			{Kind: "mesh", Name: "mesh", Value: RandomMesh(src, triangles)},
			{Kind: "shell", Name: "shell", Value: RandomShell(src, surfaces)},
		},
	}
}
