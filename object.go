// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump

import (
	"fmt"

	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/scalar"
)

// Entity dumps e under name. The header names the request or group that owns
// e, resolved through Options.Kernel.
func (d *Dumper) Entity(name string, e *geom.Entity) {
	d.linef("%s=%08x %s type=%s", name, uint32(e.H), d.owner(e.H), e.Type)
	d.field(scalar.FormatBool("  construction", e.Construction))
	d.field(scalar.FormatInt("  style", int(e.Style)))
	d.field(scalar.FormatString("  str", e.Str))
	d.field(scalar.FormatString("  font", e.Font))
	d.field(scalar.FormatString("  file", e.File))
	// The style is repeated in hex to cross-check the decimal form above.
	d.field(scalar.FormatHex("  style", uint32(e.Style)))
	for i, p := range e.Point {
		if p != 0 {
			d.linef("  point[%d]=%08x", i, uint32(p))
		}
	}
	d.field(scalar.FormatInt("  extraPoints", e.ExtraPoints))
	d.field(scalar.FormatHex("  normal", uint32(e.Normal)))
	d.field(scalar.FormatHex("  distance", uint32(e.Distance)))
	d.field(scalar.FormatHex("  workplane", uint32(e.Workplane)))
	d.field(scalar.FormatFloat("  actPoint.x", e.ActPoint.X))
	d.field(scalar.FormatFloat("  actPoint.y", e.ActPoint.Y))
	d.field(scalar.FormatFloat("  actPoint.z", e.ActPoint.Z))
	d.field(scalar.FormatFloat("  actNormal.w", e.ActNormal.W))
	d.field(scalar.FormatFloat("  actNormal.vx", e.ActNormal.Vx))
	d.field(scalar.FormatFloat("  actNormal.vy", e.ActNormal.Vy))
	d.field(scalar.FormatFloat("  actNormal.vz", e.ActNormal.Vz))
	d.field(scalar.FormatFloat("  actDistance", e.ActDistance))
	d.field(scalar.FormatBool("  actVisible", e.ActVisible))
}

// owner describes the request or group owning the entity h.
func (d *Dumper) owner(h geom.HEntity) string {
	if h.IsFromRequest() {
		if r, ok := d.opts.Kernel.Request(h.Request()); ok {
			return r.DescriptionString()
		}
		return fmt.Sprintf("r%03x-UNKNOWN", uint32(h.Request()))
	}
	if g, ok := d.opts.Kernel.Group(h.Group()); ok {
		return fmt.Sprintf("g%03x-%s", uint32(g.H), g.Type)
	}
	return fmt.Sprintf("g%03x-UNKNOWN", uint32(h.Group()))
}

// EntityList dumps the count of entities followed by each entity.
func (d *Dumper) EntityList(name string, entities []geom.Entity) {
	d.linef("%s Count=%d", name, len(entities))
	for i := range entities {
		d.Entity(fmt.Sprintf("  e[%d]", i), &entities[i])
	}
}

// Param dumps a solver parameter on one line.
func (d *Dumper) Param(name string, p *geom.Param) {
	d.linef("%s h.v=%08x val=%s", name, uint32(p.H), scalar.Float(p.Val))
}

// Params dumps the count of params followed by each param.
func (d *Dumper) Params(name string, params []geom.Param) {
	d.linef("%s Count=%d", name, len(params))
	for i := range params {
		d.Param(fmt.Sprintf("  p[%d]", i), &params[i])
	}
}

// Request dumps r.
func (d *Dumper) Request(name string, r *geom.Request) {
	d.linef("%s %s group=%03x", name, r.DescriptionString(), uint32(r.Group))
	if r.Construction {
		d.line("  construction=True")
	}
}

// Vector dumps v on one line.
func (d *Dumper) Vector(name string, v geom.Vector) {
	d.linef("%s %s", name, scalar.Vector(v))
}

// Quaternion dumps q on one line.
func (d *Dumper) Quaternion(name string, q geom.Quaternion) {
	d.linef("%s %s", name, scalar.Quaternion(q))
}

// DoubleList dumps the count of values followed by one line per value.
func (d *Dumper) DoubleList(name string, vals []float64) {
	d.linef("%s Count=%d", name, len(vals))
	for i, v := range vals {
		d.linef("  v[%d]=%s", i, scalar.Float(v))
	}
}

// ctrlPts returns the number of control points along a direction of degree
// deg, clamped to the size of the control arrays.
func ctrlPts(deg int) int {
	return max(0, min(deg+1, geom.MaxCtrlPts))
}

// Bezier dumps the control points and weights of b.
func (d *Dumper) Bezier(name string, b *geom.Bezier) {
	d.line(name)
	for i := 0; i < ctrlPts(b.Deg); i++ {
		d.linef("  ctrl[%d] %s weight=%s", i, scalar.Point(b.Ctrl[i]), scalar.Float(b.Weight[i]))
	}
}

// BezierList dumps the count of curves followed by each curve.
func (d *Dumper) BezierList(name string, l *geom.BezierList) {
	d.linef("%s Count=%d", name, len(l.Beziers))
	for i := range l.Beziers {
		d.Bezier(fmt.Sprintf("  Bezier[%d]", i), &l.Beziers[i])
	}
}

// BezierLoopSet dumps the plane and area of s followed by every curve of
// every loop.
func (d *Dumper) BezierLoopSet(name string, s *geom.BezierLoopSet) {
	d.linef("%s Count=%d", name, len(s.Loops))
	d.Vector("  normal", s.Normal)
	d.Vector("  point", s.Point)
	d.field(scalar.FormatFloat("  area", s.Area))
	for i := range s.Loops {
		d.linef("  List[%d]", i)
		loop := &s.Loops[i]
		for j := range loop.Beziers {
			d.Bezier(fmt.Sprintf("  Bezier[%d]", j), &loop.Beziers[j])
		}
	}
}

// Polygon dumps every contour of p.
func (d *Dumper) Polygon(name string, p *geom.Polygon) {
	d.line(name)
	for i := range p.Contours {
		d.Contour(fmt.Sprintf("  sc[%d]", i), &p.Contours[i])
	}
}

// Contour dumps the position of every point of c.
func (d *Dumper) Contour(name string, c *geom.Contour) {
	d.line(name)
	for i := range c.Points {
		d.linef("  p[%d] %s", i, scalar.Point(c.Points[i].P))
	}
}

// Shell dumps the surface count and every surface, then the curve count and
// every curve. A nil shell dumps as an empty one.
func (d *Dumper) Shell(name string, sh *geom.Shell) {
	if sh == nil {
		sh = &geom.Shell{}
	}
	d.line(name)
	d.linef("  surfaces=%d", len(sh.Surfaces))
	for i := range sh.Surfaces {
		d.Surface(fmt.Sprintf("  srf[%d]", i), &sh.Surfaces[i])
	}
	d.linef("  curves=%d", len(sh.Curves))
	for i := range sh.Curves {
		d.Curve(fmt.Sprintf("  crv[%d]", i), &sh.Curves[i])
	}
}

// Surface dumps s. The full (DegM+1) x (DegN+1) control grid is always
// dumped, whatever its values; trims and edges are only dumped if present.
func (d *Dumper) Surface(name string, s *geom.Surface) {
	d.linef("%s degm=%d, degn=%d", name, s.DegM, s.DegN)
	d.field(scalar.FormatHex("  h", uint32(s.H)))
	d.field(scalar.FormatHex("  face", s.Face))
	d.field(scalar.FormatHex("  color", s.Color.ToPackedInt()))
	for i := 0; i < ctrlPts(s.DegM); i++ {
		for j := 0; j < ctrlPts(s.DegN); j++ {
			d.linef("  ctrl[%d, %d] %s weight=%s",
				i, j, scalar.Point(s.Ctrl[i][j]), scalar.Float(s.Weight[i][j]))
		}
	}
	d.TrimByList("  trim", s.Trim)
	d.Edges("  edges", s.Edges)
}

// TrimByList dumps the count of trims followed by each trim. Nothing is
// dumped for an empty list.
func (d *Dumper) TrimByList(name string, trims []geom.TrimBy) {
	if len(trims) == 0 {
		return
	}
	d.linef("%s Count=%d", name, len(trims))
	for i := range trims {
		d.TrimBy(fmt.Sprintf("  trim[%d]", i), &trims[i])
	}
}

// TrimBy dumps t.
func (d *Dumper) TrimBy(name string, t *geom.TrimBy) {
	d.line(name)
	d.field(scalar.FormatHex("  curve", uint32(t.Curve)))
	if t.Backwards {
		d.line("  backwards=True")
	} else {
		d.line("  backwards=False")
	}
	d.Vector("  start", t.Start)
	d.Vector("  finish", t.Finish)
}

// Edges dumps the count of edges followed by each edge. Nothing is dumped for
// an empty list.
func (d *Dumper) Edges(name string, edges []geom.Edge) {
	if len(edges) == 0 {
		return
	}
	d.linef("%s Count=%d", name, len(edges))
	for i := range edges {
		d.Edge(fmt.Sprintf("  [%d]", i), &edges[i])
	}
}

// Edge dumps the endpoints and length of e on one line.
func (d *Dumper) Edge(name string, e *geom.Edge) {
	d.linef("%s A%s B%s %s", name, scalar.Vector(e.A), scalar.Vector(e.B), scalar.Float(e.Length()))
}

// Points dumps the count of points followed by each point and its auxiliary
// vector. Nothing is dumped for an empty list.
func (d *Dumper) Points(name string, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	d.linef("%s Count=%d", name, len(pts))
	for i := range pts {
		d.linef("  [%d] p%s auxv%s", i, scalar.Vector(pts[i].P), scalar.Vector(pts[i].Auxv))
	}
}

// Curve dumps c: its source, the surfaces it lies on, its exact form and its
// sampled points.
func (d *Dumper) Curve(name string, c *geom.Curve) {
	d.linef("%s h=%08x", name, uint32(c.H))
	switch c.Source {
	case geom.CurveFromA, geom.CurveFromB, geom.CurveFromIntersection:
		d.linef("  source=%s", c.Source)
	}
	d.linef("  surfA=%08x surfB=%08x", uint32(c.SurfA), uint32(c.SurfB))
	d.Bezier("  exact", &c.Exact)
	for i, pt := range c.Pts {
		label := " point"
		if pt.Vertex {
			label = "vertex"
		}
		d.linef("  %s[%d] %s", label, i, scalar.Point(pt.P))
	}
}

// Mesh dumps the count of triangles followed by each triangle.
func (d *Dumper) Mesh(name string, m *geom.Mesh) {
	d.linef("%s Count=%d", name, len(m.Triangles))
	for i := range m.Triangles {
		d.Triangle(fmt.Sprintf("  tr[%d]", i), &m.Triangles[i])
	}
}

// Triangle dumps the metadata, vertices and vertex normals of t.
func (d *Dumper) Triangle(name string, t *geom.Triangle) {
	d.linef("%s face=%08x color=%08x", name, t.Meta.Face, t.Meta.Color.ToPackedInt())
	d.Vector("  a", t.A)
	d.Vector("  b", t.B)
	d.Vector("  c", t.C)
	d.Vector("  an", t.An)
	d.Vector("  bn", t.Bn)
	d.Vector("  cn", t.Cn)
}
