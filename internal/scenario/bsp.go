// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package scenario

import (
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/strparse"
)

// Partition trees are written as a single root line nested under the tree,
// with each node's children nested under it and introduced by the name of
// their link (pos, neg or more):
//
//	bsp3 t
//	  root d=1 n=(0, 0, 1) a=(0, 0, 1) b=(1, 0, 1) c=(0, 1, 1)
//	    edges d=0 np=(0, 0, 1) no=(0, 1, 0) a=(0, 0, 1) b=(1, 0, 1)
//	    neg d=0 n=(0, 0, 1)
//
// A tree without a root line is empty. Nodes are added to the arena in
// preorder.

// link returns the field of c that the link keyword refers to.
func (ps *parser) link(c *geom.Children, kw string) *geom.NodeID {
	switch kw {
	case "pos":
		return &c.Pos
	case "neg":
		return &c.Neg
	case "more":
		return &c.More
	default:
		ps.failf("expected pos, neg or more, got %q", kw)
		return nil
	}
}

// root calls fn with the root line of the tree n, if any.
func (ps *parser) root(n *node, fn func(c *node, p *strparse.Parser) geom.NodeID) geom.NodeID {
	root := geom.NoNode
	ps.each(n, "root", func(c *node, p *strparse.Parser) {
		if root != geom.NoNode {
			ps.failf("more than one root")
		}
		root = fn(c, p)
	})
	return root
}

func (ps *parser) bsp3Tree(n *node) *geom.Bsp3Tree {
	t := &geom.Bsp3Tree{}
	t.Root = ps.root(n, func(c *node, p *strparse.Parser) geom.NodeID {
		return ps.bsp3Node(t, c, p)
	})
	return t
}

func (ps *parser) bsp3Node(t *geom.Bsp3Tree, n *node, p *strparse.Parser) geom.NodeID {
	var b geom.Bsp3
	fields(p, func(key string) {
		switch key {
		case "d":
			b.D = p.Float()
		case "n":
			b.N = vec3(p)
		default:
			if !triangleField(p, key, &b.Tri) {
				unknownField(p, key)
			}
		}
	})
	id := t.Add(b)
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		if kw == "edges" {
			if t.Nodes[id-1].Edges != geom.NoNode {
				ps.failf("more than one edge tree")
			}
			t.Nodes[id-1].Edges = ps.bsp2Node(&t.Edges, c, p)
			return
		}
		if *ps.link(&t.Nodes[id-1].Children, kw) != geom.NoNode {
			ps.failf("duplicate %s link", kw)
		}
		// The arena may grow while the child is parsed, so the link is
		// looked up again afterwards.
		child := ps.bsp3Node(t, c, p)
		*ps.link(&t.Nodes[id-1].Children, kw) = child
	})
	return id
}

func (ps *parser) bsp2Tree(n *node) *geom.Bsp2Tree {
	t := &geom.Bsp2Tree{}
	t.Root = ps.root(n, func(c *node, p *strparse.Parser) geom.NodeID {
		return ps.bsp2Node(&t.Nodes, c, p)
	})
	return t
}

func (ps *parser) bsp2Node(nodes *[]geom.Bsp2, n *node, p *strparse.Parser) geom.NodeID {
	var b geom.Bsp2
	fields(p, func(key string) {
		switch key {
		case "d":
			b.D = p.Float()
		case "np":
			b.Np = vec3(p)
		case "no":
			b.No = vec3(p)
		case "a":
			b.Edge.A = vec3(p)
		case "b":
			b.Edge.B = vec3(p)
		default:
			unknownField(p, key)
		}
	})
	*nodes = append(*nodes, b)
	id := geom.NodeID(len(*nodes))
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		if *ps.link(&(*nodes)[id-1].Children, kw) != geom.NoNode {
			ps.failf("duplicate %s link", kw)
		}
		child := ps.bsp2Node(nodes, c, p)
		*ps.link(&(*nodes)[id-1].Children, kw) = child
	})
	return id
}

func (ps *parser) bspUvTree(n *node) *geom.BspUvTree {
	t := &geom.BspUvTree{}
	t.Root = ps.root(n, func(c *node, p *strparse.Parser) geom.NodeID {
		return ps.bspUvNode(t, c, p)
	})
	return t
}

func (ps *parser) bspUvNode(t *geom.BspUvTree, n *node, p *strparse.Parser) geom.NodeID {
	var b geom.BspUv
	fields(p, func(key string) {
		switch key {
		case "a":
			b.A = point2(p)
		case "b":
			b.B = point2(p)
		default:
			unknownField(p, key)
		}
	})
	id := t.Add(b)
	ps.eachOf(n, func(kw string, c *node, p *strparse.Parser) {
		if *ps.link(&t.Nodes[id-1].Children, kw) != geom.NoNode {
			ps.failf("duplicate %s link", kw)
		}
		child := ps.bspUvNode(t, c, p)
		*ps.link(&t.Nodes[id-1].Children, kw) = child
	})
	return id
}
