// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package lcgrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	var s Source
	s.Seed(1)
	require.Equal(t, uint32(134775814), s.Draw())
	require.Equal(t, uint32(3698175007), s.Draw())
	require.Equal(t, uint32(870078620), s.Draw())
	require.Equal(t, uint32(1172187917), s.Draw())
	require.Equal(t, uint32(2884733762), s.Draw())

	// The zero value is seeded with 0.
	var z Source
	require.Equal(t, uint32(1), z.Draw())
	require.Equal(t, uint32(134775814), z.Draw())
	require.Equal(t, uint32(134775814), z.State())
}

func TestReseedReproduces(t *testing.T) {
	a, b := New(987654321), New(987654321)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Draw(), b.Draw())
	}
	first := New(5).Draw()
	a.Seed(5)
	require.Equal(t, first, a.Draw())
}

func TestFloat64(t *testing.T) {
	s := New(7)
	require.Equal(t, float64(943430692)/(1<<32), s.Float64())
	require.Equal(t, 0.8390596334356815, s.Float64())

	s.Seed(12345)
	for i := 0; i < 10000; i++ {
		f := s.Float64()
		require.True(t, f >= 0 && f < 1, "%v out of range", f)
	}
}

func TestIntBelow(t *testing.T) {
	s := New(42)
	var got []int
	for i := 0; i < 8; i++ {
		got = append(got, s.IntBelow(10))
	}
	require.Equal(t, []int{3, 8, 2, 1, 0, 8, 7, 0}, got)

	s.Seed(1)
	var seen [10]bool
	for i := 0; i < 100000; i++ {
		v := s.IntBelow(10)
		require.True(t, v >= 0 && v < 10, "%d out of range", v)
		seen[v] = true
	}
	for v, ok := range seen {
		require.True(t, ok, "%d never drawn", v)
	}

	before := s.State()
	require.Equal(t, 0, s.IntBelow(0))
	require.Equal(t, 0, s.IntBelow(-3))
	require.NotEqual(t, before, s.State())
	require.Equal(t, 0, s.IntBelow(1))
}

func BenchmarkDraw(b *testing.B) {
	s := New(1)
	for i := 0; i < b.N; i++ {
		s.Draw()
	}
}
