// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package indenttree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestIndentTree(t *testing.T) {
	datadriven.RunTest(t, "testdata/parse", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "parse":
			nodes, err := Parse(d.Input)
			if err != nil {
				return fmt.Sprintf("error: %s", err)
			}
			var buf strings.Builder
			var dfs func(n Node, depth int)
			dfs = func(n Node, depth int) {
				fmt.Fprintf(&buf, "%s%s (line %d)\n", strings.Repeat(".", depth), n.Value(), n.Line())
				for _, c := range n.Children() {
					dfs(c, depth+1)
				}
			}
			for _, c := range nodes {
				dfs(c, 0)
			}
			return buf.String()

		default:
			t.Fatalf("unknown command: %s", d.Cmd)
			return ""
		}
	})
}
