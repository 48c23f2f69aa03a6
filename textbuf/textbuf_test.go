// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package textbuf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/geomkit/sdump/lcgrand"
	"github.com/stretchr/testify/require"
)

func TestAccumulator(t *testing.T) {
	var a Accumulator
	summary := func() string {
		return fmt.Sprintf("len=%d lines=%d fragments=%d", a.Len(), a.Lines(), a.Fragments())
	}
	datadriven.RunTest(t, "testdata/accumulator", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "append":
			for _, l := range crstrings.Lines(td.Input) {
				a.Append(l)
			}
			return summary()
		case "append-line":
			for _, l := range crstrings.Lines(td.Input) {
				a.AppendLine(l)
			}
			return summary()
		case "new-line":
			a.NewLine()
			return summary()
		case "clear":
			a.Clear()
			return summary()
		case "string":
			return fmt.Sprintf("%q", a.String())
		case "join":
			var delim string
			td.MaybeScanArgs(t, "delim", &delim)
			return fmt.Sprintf("%q", a.Join(delim))
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestJoin(t *testing.T) {
	var a Accumulator
	require.Equal(t, "", a.Join(","))
	require.Equal(t, "", a.Join(""))

	a.Add("a", "b", "c")
	require.Equal(t, "a,b,c", a.Join(","))
	require.Equal(t, a.String(), a.Join(""))
	require.Equal(t, "a, b, c", a.Join(", "))

	a.Clear()
	a.Append("only")
	require.Equal(t, "only", a.Join("--"))
}

func TestChaining(t *testing.T) {
	var a Accumulator
	a.Append("x=").Append("1").NewLine().AppendLine("y=2")
	require.Equal(t, "x=1\ny=2\n", a.String())
	require.Equal(t, 2, a.Lines())
}

// TestLengthInvariant checks that the rendered length always matches the
// tracked length, and that each line-terminated append adds exactly one line,
// over random sequences of operations.
func TestLengthInvariant(t *testing.T) {
	var rng lcgrand.Source
	rng.Seed(20260101)
	for iter := 0; iter < 50; iter++ {
		var a Accumulator
		var fragLen, lineCalls int
		ops := 1 + rng.IntBelow(40)
		for i := 0; i < ops; i++ {
			s := strings.Repeat("ab", rng.IntBelow(5))
			switch rng.IntBelow(4) {
			case 0:
				a.Append(s)
				fragLen += len(s)
			case 1:
				a.AppendLine(s)
				fragLen += len(s)
				lineCalls++
			case 2:
				a.NewLine()
				lineCalls++
			case 3:
				a.Add(s, s)
				fragLen += 2 * len(s)
			}
			require.Equal(t, lineCalls, a.Lines())
			require.Equal(t, a.Len(), len(a.String()))
		}
		require.Equal(t, fragLen+lineCalls, len(a.String()))
		if a.Fragments() > 0 {
			require.Equal(t, a.Len()+a.Fragments()-1, len(a.Join(";")))
		}
	}
}

func BenchmarkString(b *testing.B) {
	var a Accumulator
	for i := 0; i < 10000; i++ {
		a.AppendLine("  ctrl[0, 0] (x=1.0000, y=2.0000, z=3.0000) weight=1.0000")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.String()
	}
}
