// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package scenario

import (
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/strparse"
)

func (ps *parser) sketch(n *node) {
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		switch kw {
		case "group":
			var g geom.Group
			fields(p, func(key string) {
				switch key {
				case "h":
					g.H = geom.HGroup(p.Hex())
				case "type":
					g.Type = enumValue(p, geom.ParseGroupType)
				case "name":
					g.Name = p.Next()
				default:
					unknownField(p, key)
				}
			})
			ps.sc.Sketch.AddGroup(g)
		case "request":
			ps.sc.Sketch.AddRequest(ps.request(p))
		default:
			ps.failf("expected group or request, got %q", kw)
		}
		ps.leaf(c)
	})
}

func (ps *parser) request(p *strparse.Parser) geom.Request {
	var r geom.Request
	fields(p, func(key string) {
		switch key {
		case "h":
			r.H = geom.HRequest(p.Hex())
		case "type":
			r.Type = enumValue(p, geom.ParseRequestType)
		case "group":
			r.Group = geom.HGroup(p.Hex())
		case "construction":
			r.Construction = p.Bool()
		default:
			unknownField(p, key)
		}
	})
	return r
}

func (ps *parser) entity(p *strparse.Parser) geom.Entity {
	var e geom.Entity
	points := 0
	fields(p, func(key string) {
		switch key {
		case "h":
			e.H = geom.HEntity(p.Hex())
		case "type":
			e.Type = enumValue(p, geom.ParseEntityType)
		case "construction":
			e.Construction = p.Bool()
		case "style":
			e.Style = geom.HStyle(p.Hex())
		case "str":
			e.Str = p.Next()
		case "font":
			e.Font = p.Next()
		case "file":
			e.File = p.Next()
		case "point":
			// Successive points fill successive slots.
			if points == geom.MaxPointsInEntity {
				p.Errf("more than %d points", geom.MaxPointsInEntity)
			}
			e.Point[points] = geom.HEntity(p.Hex())
			points++
		case "extra":
			e.ExtraPoints = p.Int()
		case "normal":
			e.Normal = geom.HEntity(p.Hex())
		case "distance":
			e.Distance = geom.HEntity(p.Hex())
		case "workplane":
			e.Workplane = geom.HEntity(p.Hex())
		case "act-point":
			e.ActPoint = vec3(p)
		case "act-normal":
			e.ActNormal = quat(p)
		case "act-distance":
			e.ActDistance = p.Float()
		case "act-visible":
			e.ActVisible = p.Bool()
		default:
			unknownField(p, key)
		}
	})
	return e
}

func (ps *parser) param(p *strparse.Parser) geom.Param {
	var prm geom.Param
	fields(p, func(key string) {
		switch key {
		case "h":
			prm.H = geom.HParam(p.Hex())
		case "val":
			prm.Val = p.Float()
		default:
			unknownField(p, key)
		}
	})
	return prm
}

// bezier parses a curve whose control points are given by ctrl lines nested
// under n. The degree defaults to one less than the number of control points.
func (ps *parser) bezier(n *node, p *strparse.Parser) geom.Bezier {
	var b geom.Bezier
	deg := -1
	fields(p, func(key string) {
		switch key {
		case "deg":
			deg = p.Int()
		default:
			unknownField(p, key)
		}
	})
	i := 0
	ps.each(n, "ctrl", func(c *node, p *strparse.Parser) {
		if i == geom.MaxCtrlPts {
			ps.failf("more than %d control points", geom.MaxCtrlPts)
		}
		b.Ctrl[i] = vec3(p)
		b.Weight[i] = ps.weight(p)
		ps.leaf(c)
		i++
	})
	b.Deg = i - 1
	if deg >= 0 {
		b.Deg = deg
	}
	return b
}

// weight parses an optional weight field, which defaults to 1.
func (ps *parser) weight(p *strparse.Parser) float64 {
	w := 1.0
	fields(p, func(key string) {
		switch key {
		case "weight":
			w = p.Float()
		default:
			unknownField(p, key)
		}
	})
	return w
}

func (ps *parser) loopSet(n *node, p *strparse.Parser) *geom.BezierLoopSet {
	s := &geom.BezierLoopSet{}
	fields(p, func(key string) {
		switch key {
		case "normal":
			s.Normal = vec3(p)
		case "point":
			s.Point = vec3(p)
		case "area":
			s.Area = p.Float()
		default:
			unknownField(p, key)
		}
	})
	ps.each(n, "loop", func(c *node, p *strparse.Parser) {
		ps.done(p)
		var loop geom.BezierLoop
		ps.each(c, "bezier", func(c *node, p *strparse.Parser) {
			loop.Beziers = append(loop.Beziers, ps.bezier(c, p))
		})
		s.Loops = append(s.Loops, loop)
	})
	return s
}

// contour parses the pt lines nested under n.
func (ps *parser) contour(n *node) geom.Contour {
	var c geom.Contour
	ps.each(n, "pt", func(child *node, p *strparse.Parser) {
		pt := geom.Point{P: vec3(p)}
		fields(p, func(key string) {
			switch key {
			case "auxv":
				pt.Auxv = vec3(p)
			default:
				unknownField(p, key)
			}
		})
		ps.leaf(child)
		c.Points = append(c.Points, pt)
	})
	return c
}

func (ps *parser) shell(n *node) geom.Shell {
	var sh geom.Shell
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		switch kw {
		case "surface":
			sh.Surfaces = append(sh.Surfaces, ps.surface(c, p))
		case "curve":
			sh.Curves = append(sh.Curves, ps.curve(c, p))
		default:
			ps.failf("expected surface or curve, got %q", kw)
		}
	})
	return sh
}

func (ps *parser) surface(n *node, p *strparse.Parser) geom.Surface {
	var s geom.Surface
	fields(p, func(key string) {
		switch key {
		case "h":
			s.H = geom.HSurface(p.Hex())
		case "face":
			s.Face = p.Hex()
		case "color":
			s.Color = color(p)
		case "degm":
			s.DegM = p.Int()
		case "degn":
			s.DegN = p.Int()
		default:
			unknownField(p, key)
		}
	})
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		switch kw {
		case "ctrl":
			i, j := p.Int(), p.Int()
			if i < 0 || i >= geom.MaxCtrlPts || j < 0 || j >= geom.MaxCtrlPts {
				ps.failf("control point [%d, %d] out of range", i, j)
			}
			s.Ctrl[i][j] = vec3(p)
			s.Weight[i][j] = ps.weight(p)
		case "trim":
			s.Trim = append(s.Trim, ps.trim(p))
		case "edge":
			s.Edges = append(s.Edges, ps.edge(p))
		default:
			ps.failf("expected ctrl, trim or edge, got %q", kw)
		}
		ps.leaf(c)
	})
	return s
}

func (ps *parser) trim(p *strparse.Parser) geom.TrimBy {
	var t geom.TrimBy
	fields(p, func(key string) {
		switch key {
		case "curve":
			t.Curve = geom.HCurve(p.Hex())
		case "backwards":
			t.Backwards = p.Bool()
		case "start":
			t.Start = vec3(p)
		case "finish":
			t.Finish = vec3(p)
		default:
			unknownField(p, key)
		}
	})
	return t
}

// edge parses two positional endpoints.
func (ps *parser) edge(p *strparse.Parser) geom.Edge {
	e := geom.Edge{A: vec3(p), B: vec3(p)}
	ps.done(p)
	return e
}

func (ps *parser) curve(n *node, p *strparse.Parser) geom.Curve {
	var c geom.Curve
	fields(p, func(key string) {
		switch key {
		case "h":
			c.H = geom.HCurve(p.Hex())
		case "source":
			c.Source = enumValue(p, geom.ParseCurveSource)
		case "surfa":
			c.SurfA = geom.HSurface(p.Hex())
		case "surfb":
			c.SurfB = geom.HSurface(p.Hex())
		default:
			unknownField(p, key)
		}
	})
	ps.eachOf(n, func(kw string, child *node, p *strparse.Parser) {
		switch kw {
		case "exact":
			c.Exact = ps.bezier(child, p)
		case "pt":
			pt := geom.CurvePt{P: vec3(p)}
			fields(p, func(key string) {
				switch key {
				case "vertex":
					pt.Vertex = p.Bool()
				default:
					unknownField(p, key)
				}
			})
			ps.leaf(child)
			c.Pts = append(c.Pts, pt)
		default:
			ps.failf("expected exact or pt, got %q", kw)
		}
	})
	return c
}

func (ps *parser) triangle(p *strparse.Parser) geom.Triangle {
	var t geom.Triangle
	fields(p, func(key string) {
		if !triangleField(p, key, &t) {
			unknownField(p, key)
		}
	})
	return t
}

// triangleField parses the value of key into t if key names a triangle
// field.
func triangleField(p *strparse.Parser, key string, t *geom.Triangle) bool {
	switch key {
	case "face":
		t.Meta.Face = p.Hex()
	case "color":
		t.Meta.Color = color(p)
	case "a":
		t.A = vec3(p)
	case "b":
		t.B = vec3(p)
	case "c":
		t.C = vec3(p)
	case "an":
		t.An = vec3(p)
	case "bn":
		t.Bn = vec3(p)
	case "cn":
		t.Cn = vec3(p)
	default:
		return false
	}
	return true
}

func (ps *parser) boolean(n *node, p *strparse.Parser) *Boolean {
	b := &Boolean{}
	fields(p, func(key string) {
		switch key {
		case "type":
			b.Type = enumValue(p, geom.ParseSurfaceCombine)
		default:
			unknownField(p, key)
		}
	})
	ps.operands(n, map[string]*geom.Shell{"a": &b.A, "b": &b.B, "r": &b.R})
	return b
}

func (ps *parser) generate(n *node, p *strparse.Parser) *Generate {
	g := &Generate{}
	fields(p, func(key string) {
		switch key {
		case "how":
			g.How = enumValue(p, geom.ParseGroupCombine)
		default:
			unknownField(p, key)
		}
	})
	ps.operands(n, map[string]*geom.Shell{"prevs": &g.Prevs, "thiss": &g.Thiss, "outs": &g.Outs})
	return g
}

// operands parses the "shell <name>" blocks nested under n into the shells
// of the same name. Shells that are not mentioned stay empty.
func (ps *parser) operands(n *node, shells map[string]*geom.Shell) {
	ps.each(n, "shell", func(c *node, p *strparse.Parser) {
		name := p.Next()
		ps.done(p)
		sh, ok := shells[name]
		if !ok {
			ps.failf("unknown operand %q", name)
		}
		*sh = ps.shell(c)
	})
}
