// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package scenario parses a small text language describing kernel objects, and
// dumps the objects it describes. It is used by tests and by the sdump tool.
//
// A scenario is a sequence of top-level objects, each followed by its parts
// indented below it. Fields are key=value pairs; vectors are written as
// (x, y, z). For example:
//
//	sketch
//	  group h=002 type=drawing-workplane name=sketch-in-plane
//	  request h=004 type=line-segment group=002
//	entity line h=00040000 type=line-segment point=00040001 point=00040002
//	mesh m
//	  tri face=1 a=(0, 0, 0) b=(1, 0, 0) c=(0, 1, 0)
//	bsp2 t
//	  root d=1 np=(0, 0, 1) no=(0, 1, 0) a=(0, 0, 0) b=(1, 0, 0)
//	    pos d=2 a=(1, 1, 0) b=(2, 1, 0)
//
// See the testdata directory for the complete set of objects.
package scenario

import (
	"github.com/cockroachdb/errors"
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/indenttree"
	"github.com/geomkit/sdump/internal/strparse"
)

const separators = "=(),"

// Object is a named top-level object of a scenario.
type Object struct {
	// Kind is the keyword that introduced the object, e.g. "shell".
	Kind string
	Name string
	// Line is the line of the input the object starts on.
	Line int
	// Value points to the geom value described, or holds a slice of values
	// for list kinds such as "entities".
	Value interface{}
}

// Boolean is a snapshot of a boolean operation between two shells.
type Boolean struct {
	Type    geom.SurfaceCombine
	A, B, R geom.Shell
}

// Generate is a snapshot of a group's solid being merged into the solid of the
// previous group.
type Generate struct {
	How                geom.GroupCombine
	Prevs, Thiss, Outs geom.Shell
}

// Scenario is the result of parsing a scenario.
type Scenario struct {
	// Sketch holds the requests and groups declared by sketch blocks. It
	// resolves the owners of entities when dumping.
	Sketch  geom.Sketch
	Objects []Object
}

// Parse parses a scenario.
func Parse(input string) (*Scenario, error) {
	nodes, err := indenttree.Parse(input)
	if err != nil {
		return nil, errors.Wrap(err, "scenario")
	}
	ps := &parser{sc: &Scenario{}}
	for i := range nodes {
		if err := ps.top(&nodes[i]); err != nil {
			return nil, err
		}
	}
	return ps.sc, nil
}

type parser struct {
	sc *Scenario
	// line is the line of the node being parsed.
	line int
}

type node = indenttree.Node

// tokens starts parsing n.
func (ps *parser) tokens(n *node) *strparse.Parser {
	ps.line = n.Line()
	p := strparse.MakeParser(separators, n.Value())
	return &p
}

// failf aborts parsing with an error attributed to the current line.
func (ps *parser) failf(format string, args ...interface{}) {
	panic(errors.Newf(format, args...))
}

func (ps *parser) top(n *node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = errors.Wrapf(e, "scenario: line %d", errors.Safe(ps.line))
		}
	}()

	p := ps.tokens(n)
	kind := p.Next()
	if kind == "sketch" {
		ps.done(p)
		ps.sketch(n)
		return nil
	}
	name := p.Next()
	if name == "" || p.Peek() == "=" {
		ps.failf("%s: missing name", kind)
	}
	obj := Object{Kind: kind, Name: name, Line: n.Line()}
	switch kind {
	case "entity":
		e := ps.entity(p)
		ps.leaf(n)
		obj.Value = &e
	case "entities":
		ps.done(p)
		var list []geom.Entity
		ps.each(n, "entity", func(c *node, p *strparse.Parser) {
			list = append(list, ps.entity(p))
			ps.leaf(c)
		})
		obj.Value = list
	case "param":
		prm := ps.param(p)
		ps.leaf(n)
		obj.Value = &prm
	case "params":
		ps.done(p)
		var list []geom.Param
		ps.each(n, "param", func(c *node, p *strparse.Parser) {
			list = append(list, ps.param(p))
			ps.leaf(c)
		})
		obj.Value = list
	case "request":
		r := ps.request(p)
		ps.leaf(n)
		obj.Value = &r
	case "vector":
		v := vec3(p)
		ps.done(p)
		ps.leaf(n)
		obj.Value = v
	case "quaternion":
		q := quat(p)
		ps.done(p)
		ps.leaf(n)
		obj.Value = q
	case "doubles":
		vals := []float64{}
		for !p.Done() {
			vals = append(vals, p.Float())
		}
		ps.leaf(n)
		obj.Value = vals
	case "bezier":
		b := ps.bezier(n, p)
		obj.Value = &b
	case "beziers":
		ps.done(p)
		l := &geom.BezierList{}
		ps.each(n, "bezier", func(c *node, p *strparse.Parser) {
			l.Beziers = append(l.Beziers, ps.bezier(c, p))
		})
		obj.Value = l
	case "loopset":
		obj.Value = ps.loopSet(n, p)
	case "polygon":
		ps.done(p)
		poly := &geom.Polygon{}
		ps.each(n, "contour", func(c *node, p *strparse.Parser) {
			ps.done(p)
			poly.Contours = append(poly.Contours, ps.contour(c))
		})
		obj.Value = poly
	case "contour":
		ps.done(p)
		c := ps.contour(n)
		obj.Value = &c
	case "points":
		ps.done(p)
		c := ps.contour(n)
		obj.Value = c.Points
	case "shell":
		ps.done(p)
		sh := ps.shell(n)
		obj.Value = &sh
	case "surface":
		s := ps.surface(n, p)
		obj.Value = &s
	case "curve":
		c := ps.curve(n, p)
		obj.Value = &c
	case "trims":
		ps.done(p)
		var list []geom.TrimBy
		ps.each(n, "trim", func(c *node, p *strparse.Parser) {
			list = append(list, ps.trim(p))
			ps.leaf(c)
		})
		obj.Value = list
	case "trim":
		t := ps.trim(p)
		ps.leaf(n)
		obj.Value = &t
	case "edges":
		ps.done(p)
		var list []geom.Edge
		ps.each(n, "edge", func(c *node, p *strparse.Parser) {
			list = append(list, ps.edge(p))
			ps.leaf(c)
		})
		obj.Value = list
	case "edge":
		e := ps.edge(p)
		ps.leaf(n)
		obj.Value = &e
	case "mesh":
		ps.done(p)
		m := &geom.Mesh{}
		ps.each(n, "tri", func(c *node, p *strparse.Parser) {
			m.Triangles = append(m.Triangles, ps.triangle(p))
			ps.leaf(c)
		})
		obj.Value = m
	case "triangle":
		t := ps.triangle(p)
		ps.leaf(n)
		obj.Value = &t
	case "bsp3":
		ps.done(p)
		obj.Value = ps.bsp3Tree(n)
	case "bsp2":
		ps.done(p)
		obj.Value = ps.bsp2Tree(n)
	case "bspuv":
		ps.done(p)
		obj.Value = ps.bspUvTree(n)
	case "boolean":
		obj.Value = ps.boolean(n, p)
	case "generate":
		obj.Value = ps.generate(n, p)
	default:
		ps.failf("unknown object kind %q", kind)
	}
	ps.sc.Objects = append(ps.sc.Objects, obj)
	return nil
}

// done fails unless all of p's tokens were consumed.
func (ps *parser) done(p *strparse.Parser) {
	if !p.Done() {
		ps.failf("unexpected %q", p.Remaining())
	}
}

// leaf fails if n has children.
func (ps *parser) leaf(n *node) {
	if c := n.Children(); len(c) > 0 {
		ps.line = c[0].Line()
		ps.failf("unexpected nested line %q", c[0].Value())
	}
}

// each calls fn with every child of n, which must all start with one of the
// given keywords. fn receives the tokens following the keyword.
func (ps *parser) each(n *node, keyword string, fn func(c *node, p *strparse.Parser)) {
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		if kw != keyword {
			ps.failf("expected %q, got %q", keyword, kw)
		}
		fn(c, p)
	})
}

// eachOf calls fn with the keyword and remaining tokens of every child of n.
func (ps *parser) eachOf(n *node, fn func(keyword string, c *node, p *strparse.Parser)) {
	children := n.Children()
	for i := range children {
		c := &children[i]
		p := ps.tokens(c)
		fn(p.Next(), c, p)
	}
}

// fields calls fn with the key of every remaining key=value pair of p. fn
// must consume the value.
func fields(p *strparse.Parser, fn func(key string)) {
	for !p.Done() {
		key := p.Next()
		p.Expect("=")
		fn(key)
	}
}

func unknownField(p *strparse.Parser, key string) {
	p.Errf("unknown field %q", key)
}

func enumValue[T any](p *strparse.Parser, parse func(string) (T, bool)) T {
	s := p.Next()
	v, ok := parse(s)
	if !ok {
		p.Errf("unknown value %q", s)
	}
	return v
}

func vec3(p *strparse.Parser) geom.Vector {
	v := p.Tuple(3)
	return geom.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func quat(p *strparse.Parser) geom.Quaternion {
	v := p.Tuple(4)
	return geom.Quaternion{W: v[0], Vx: v[1], Vy: v[2], Vz: v[3]}
}

func point2(p *strparse.Parser) geom.Point2 {
	v := p.Tuple(2)
	return geom.Point2{X: v[0], Y: v[1]}
}

func color(p *strparse.Parser) geom.Color {
	v := p.Tuple(4)
	var c [4]uint8
	for i := range v {
		if v[i] < 0 || v[i] > 255 || v[i] != float64(int(v[i])) {
			p.Errf("invalid color component %v", v[i])
		}
		c[i] = uint8(v[i])
	}
	return geom.RGBA(c[0], c[1], c[2], c[3])
}
