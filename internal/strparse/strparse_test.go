// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParserOffsets(t *testing.T) {
	tests := []struct {
		sep   string
		input string
		want  []token
	}{
		{sep: "|", input: "a   |  b   |c",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "|", offset: 4},
				{tok: "b", offset: 7},
				{tok: "|", offset: 11},
				{tok: "c", offset: 12},
			},
		},
		{sep: "|", input: "a|b|c",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "|", offset: 1},
				{tok: "b", offset: 2},
				{tok: "|", offset: 3},
				{tok: "c", offset: 4},
			},
		},
		{sep: "()", input: "a    (   (  b )            ) c       ",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "(", offset: 5},
				{tok: "(", offset: 9},
				{tok: "b", offset: 12},
				{tok: ")", offset: 14},
				{tok: ")", offset: 27},
				{tok: "c", offset: 29},
			},
		},
	}
	for _, test := range tests {
		p := MakeParser(test.sep, test.input)
		require.Equal(t, test.want, p.tokens)
	}
}

func TestParserValues(t *testing.T) {
	p := MakeParser("=(),", "tri face=0x0000002a color=ff00ff00 a=(1, -2.5, 3e2) visible=true n=7")
	p.Expect("tri", "face", "=")
	require.Equal(t, uint32(42), p.Hex())
	p.Expect("color", "=")
	require.Equal(t, uint32(0xff00ff00), p.Hex())
	p.Expect("a", "=")
	require.Equal(t, []float64{1, -2.5, 300}, p.Tuple(3))
	p.Expect("visible", "=")
	require.True(t, p.Bool())
	require.Equal(t, "n", p.Peek())
	require.Equal(t, "n = 7", p.Remaining())
	require.True(t, p.Done())
}

func parseCatching(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	fn()
	return nil
}

func TestParserErrors(t *testing.T) {
	p := MakeParser("(),", "(1, x)")
	err := parseCatching(func() { p.Tuple(2) })
	require.Error(t, err)
	require.Contains(t, err.Error(), `at token "x"`)

	p = MakeParser("", "zz")
	err = parseCatching(func() { p.Hex() })
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot parse hex number")
}
