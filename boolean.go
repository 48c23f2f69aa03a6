// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump

import "github.com/geomkit/sdump/geom"

// MakeFromBoolean dumps the operands a and b and the result r of a boolean
// operation between two shells.
func (d *Dumper) MakeFromBoolean(name string, a, b, r *geom.Shell, typ geom.SurfaceCombine) {
	d.linef("%s type=%s", name, typ)
	d.Shell("  a", a)
	d.Shell("  b", b)
	d.Shell("  r", r)
}

// GenerateForBoolean dumps the shell of the previous group, the shell of the
// current group and the shell they were merged into.
func (d *Dumper) GenerateForBoolean(name string, prevs, thiss, outs *geom.Shell, how geom.GroupCombine) {
	d.linef("%s how=%s", name, how)
	d.Shell("  prevs", prevs)
	d.Shell("  thiss", thiss)
	d.Shell("  outs", outs)
}
