// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump

import (
	"strings"

	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/scalar"
)

// treeNode is a node of a partition tree arena.
type treeNode interface {
	Links() geom.Children
}

// preorder visits the subtree of nodes rooted at id: the node itself, then
// its pos, neg and more subtrees. Absent ids end the recursion. The root is
// visited with the given label and depth, children with their link name and
// depth+1.
func preorder[N treeNode](
	nodes []N, id geom.NodeID, label string, depth int, visit func(n *N, label string, depth int),
) {
	n, ok := geom.Lookup(nodes, id)
	if !ok {
		return
	}
	visit(n, label, depth)
	links := (*n).Links()
	preorder(nodes, links.Pos, "pos", depth+1, visit)
	preorder(nodes, links.Neg, "neg", depth+1, visit)
	preorder(nodes, links.More, "more", depth+1, visit)
}

func indent(depth int) string {
	return strings.Repeat(" ", depth)
}

// Bsp3 dumps every node of t in preorder. Each node is indented by its depth
// and followed by its plane normal, its triangle and its edge tree.
func (d *Dumper) Bsp3(name string, t *geom.Bsp3Tree) {
	if t == nil {
		return
	}
	preorder(t.Nodes, t.Root, name, 0, func(n *geom.Bsp3, label string, depth int) {
		pad := indent(depth)
		d.linef("%s%s d=%s", pad, label, scalar.Float(n.D))
		d.Vector(pad+"n", n.N)
		d.Triangle(pad+"tri", &n.Tri)
		d.bsp2(t.Edges, n.Edges, "edges", depth)
	})
}

// Bsp2 dumps every node of t in preorder.
func (d *Dumper) Bsp2(name string, t *geom.Bsp2Tree) {
	if t == nil {
		return
	}
	d.bsp2(t.Nodes, t.Root, name, 0)
}

func (d *Dumper) bsp2(nodes []geom.Bsp2, root geom.NodeID, name string, depth int) {
	preorder(nodes, root, name, depth, func(n *geom.Bsp2, label string, depth int) {
		pad := indent(depth)
		d.linef("%s%s d=%s", pad, label, scalar.Float(n.D))
		d.Vector(pad+"np", n.Np)
		d.Vector(pad+"no", n.No)
		d.Edge(pad+"edge", &n.Edge)
	})
}

// BspUv dumps the segment of every node of t in preorder, one line per node.
func (d *Dumper) BspUv(name string, t *geom.BspUvTree) {
	if t == nil {
		return
	}
	preorder(t.Nodes, t.Root, name, 0, func(n *geom.BspUv, label string, depth int) {
		d.linef("%s%s a%s b%s", indent(depth), label, scalar.Point2(n.A), scalar.Point2(n.B))
	})
}
