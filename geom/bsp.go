// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

// NodeID identifies a node in a partition tree arena. Ids are 1-based so that
// the zero value of a link is absent: the node with id i is stored at index
// i-1.
type NodeID int32

// NoNode is the NodeID of an absent node.
const NoNode NodeID = 0

// Children holds the three child links of a partition tree node. More links
// the nodes that are coincident with this node's partition.
type Children struct {
	Pos, Neg, More NodeID
}

// Leaf returns Children with all three links absent.
func Leaf() Children {
	return Children{}
}

// Links returns the child links.
func (c Children) Links() Children {
	return c
}

// Lookup returns the node with the given id. It returns false if id is NoNode
// or lies outside the arena.
func Lookup[N any](nodes []N, id NodeID) (*N, bool) {
	if id <= NoNode || int(id) > len(nodes) {
		return nil, false
	}
	return &nodes[id-1], true
}

// Bsp3 is a node of a 3D partition tree over mesh triangles.
type Bsp3 struct {
	// N and D define the partition plane N.p = D.
	N Vector
	D float64
	// Tri is the triangle that lies in the partition plane.
	Tri Triangle
	// Edges is the root, in the owning tree's Edges arena, of the 2D tree
	// over the edges of coplanar triangles.
	Edges NodeID
	Children
}

// Bsp2 is a node of a 2D partition tree over the edges of coplanar triangles.
type Bsp2 struct {
	// No is the normal of the partition line within the plane whose normal is
	// Np; D is the offset of the line along No.
	Np, No Vector
	D      float64
	Edge   Edge
	Children
}

// BspUv is a node of a partition tree in the (u, v) space of a surface.
type BspUv struct {
	A, B Point2
	Children
}

// Bsp3Tree is an arena holding a 3D partition tree and the 2D edge trees
// hanging off its nodes.
type Bsp3Tree struct {
	Root  NodeID
	Nodes []Bsp3
	Edges []Bsp2
}

// Node returns the node with the given id.
func (t *Bsp3Tree) Node(id NodeID) (*Bsp3, bool) {
	return Lookup(t.Nodes, id)
}

// Add appends n to the arena and returns its id.
func (t *Bsp3Tree) Add(n Bsp3) NodeID {
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes))
}

// AddEdge appends n to the edge arena and returns its id.
func (t *Bsp3Tree) AddEdge(n Bsp2) NodeID {
	t.Edges = append(t.Edges, n)
	return NodeID(len(t.Edges))
}

// Bsp2Tree is an arena holding a 2D partition tree.
type Bsp2Tree struct {
	Root  NodeID
	Nodes []Bsp2
}

// Node returns the node with the given id.
func (t *Bsp2Tree) Node(id NodeID) (*Bsp2, bool) {
	return Lookup(t.Nodes, id)
}

// Add appends n to the arena and returns its id.
func (t *Bsp2Tree) Add(n Bsp2) NodeID {
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes))
}

// BspUvTree is an arena holding a (u, v) partition tree.
type BspUvTree struct {
	Root  NodeID
	Nodes []BspUv
}

// Node returns the node with the given id.
func (t *BspUvTree) Node(id NodeID) (*BspUv, bool) {
	return Lookup(t.Nodes, id)
}

// Add appends n to the arena and returns its id.
func (t *BspUvTree) Add(n BspUv) NodeID {
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes))
}
