// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package sdump renders snapshots of geometry kernel structures as human
// readable text.
//
// A Dumper owns a text accumulator. Its dump methods (Entity, Shell, Mesh,
// Bsp3 and so on) append one line per non-default field of the inspected
// object, and Save writes everything accumulated since the last Clear to a
// file under the dumper's root directory:
//
//	d := sdump.New(&sdump.Options{Root: "/tmp/dumps/"})
//	d.Init()
//	d.MakeFromBoolean("union", &a, &b, &r, geom.SurfaceUnion)
//	if err := d.Save("union.txt", 1); err != nil {
//		...
//	}
//
// Dumps never modify the objects they inspect. Zero valued fields are
// suppressed, and floating point values within 1e-8 of zero print as zero, so
// that dumps of two runs can be compared textually (see Diff).
//
// A Dumper is not safe for concurrent use.
package sdump
