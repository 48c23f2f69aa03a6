// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package scenario

import (
	"fmt"

	"github.com/geomkit/sdump"
	"github.com/geomkit/sdump/geom"
)

// Dump dumps every object of the scenario, in order.
func (s *Scenario) Dump(d *sdump.Dumper) {
	for _, o := range s.Objects {
		DumpObject(d, o)
	}
}

// DumpObject dumps o with the Dumper method matching its value.
func DumpObject(d *sdump.Dumper, o Object) {
	switch v := o.Value.(type) {
	case *geom.Entity:
		d.Entity(o.Name, v)
	case []geom.Entity:
		d.EntityList(o.Name, v)
	case *geom.Param:
		d.Param(o.Name, v)
	case []geom.Param:
		d.Params(o.Name, v)
	case *geom.Request:
		d.Request(o.Name, v)
	case geom.Vector:
		d.Vector(o.Name, v)
	case geom.Quaternion:
		d.Quaternion(o.Name, v)
	case []float64:
		d.DoubleList(o.Name, v)
	case *geom.Bezier:
		d.Bezier(o.Name, v)
	case *geom.BezierList:
		d.BezierList(o.Name, v)
	case *geom.BezierLoopSet:
		d.BezierLoopSet(o.Name, v)
	case *geom.Polygon:
		d.Polygon(o.Name, v)
	case *geom.Contour:
		d.Contour(o.Name, v)
	case []geom.Point:
		d.Points(o.Name, v)
	case *geom.Shell:
		d.Shell(o.Name, v)
	case *geom.Surface:
		d.Surface(o.Name, v)
	case *geom.Curve:
		d.Curve(o.Name, v)
	case []geom.TrimBy:
		d.TrimByList(o.Name, v)
	case *geom.TrimBy:
		d.TrimBy(o.Name, v)
	case []geom.Edge:
		d.Edges(o.Name, v)
	case *geom.Edge:
		d.Edge(o.Name, v)
	case *geom.Mesh:
		d.Mesh(o.Name, v)
	case *geom.Triangle:
		d.Triangle(o.Name, v)
	case *geom.Bsp3Tree:
		d.Bsp3(o.Name, v)
	case *geom.Bsp2Tree:
		d.Bsp2(o.Name, v)
	case *geom.BspUvTree:
		d.BspUv(o.Name, v)
	case *Boolean:
		d.MakeFromBoolean(o.Name, &v.A, &v.B, &v.R, v.Type)
	case *Generate:
		d.GenerateForBoolean(o.Name, &v.Prevs, &v.Thiss, &v.Outs, v.How)
	default:
		panic(fmt.Sprintf("scenario: unexpected %T for %s %s", o.Value, o.Kind, o.Name))
	}
}
