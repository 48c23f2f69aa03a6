// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump_test

import (
	"fmt"
	"log"

	"github.com/geomkit/sdump"
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/vfs"
)

func Example() {
	fs := vfs.NewMem()
	d := sdump.New(&sdump.Options{FS: fs, Root: "dumps/", Enabled: true})

	var m geom.Mesh
	m.Triangles = append(m.Triangles, geom.Triangle{
		Meta: geom.TriMeta{Face: 7, Color: geom.RGBA(255, 0, 0, 255)},
		A:    geom.Vector{X: 1},
		B:    geom.Vector{Y: 1},
		C:    geom.Vector{Z: 1},
	})
	d.Mesh("mesh", &m)
	if err := d.Save("mesh.txt", 1); err != nil {
		log.Fatal(err)
	}

	data, err := vfs.ReadFile(fs, "dumps/mesh.txt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// mesh Count=1
	//   tr[0] face=00000007 color=000000ff
	//   a (x=1.0000 y=0.0000 z=0.0000)
	//   b (x=0.0000 y=1.0000 z=0.0000)
	//   c (x=0.0000 y=0.0000 z=1.0000)
	//   an (x=0.0000 y=0.0000 z=0.0000)
	//   bn (x=0.0000 y=0.0000 z=0.0000)
	//   cn (x=0.0000 y=0.0000 z=0.0000)
}
