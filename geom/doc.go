// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package geom defines read-only views of the structures owned by a parametric
// geometry kernel: sketch entities and their owners, solver parameters,
// boundary representation shells, meshes and binary space partition trees.
//
// The dump packages only ever read these values. Cross references between
// kernel objects are carried as opaque handles which are used for display;
// the only handle that is ever resolved is an entity's owner, and that goes
// through the Kernel interface.
//
// # Partition trees
//
// The three partition tree shapes (Bsp3Tree, Bsp2Tree, BspUvTree) are stored
// as arenas. Children are referenced by NodeID and NoNode marks an absent
// child, so a tree can be walked without touching raw pointers:
//
//	n, ok := tree.Node(tree.Root)
//	for ok {
//		...
//		n, ok = tree.Node(n.Pos)
//	}
package geom
