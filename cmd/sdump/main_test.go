// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/geomkit/sdump"
	"github.com/geomkit/sdump/internal/scenario"
	"github.com/geomkit/sdump/vfs"
	"github.com/geomkit/sdump/vfs/errorfs"
	"github.com/stretchr/testify/require"
)

const testScenario = `
vector v (1, 2, 3)
mesh m
  tri face=1 a=(1, 0, 0)
`

func setupFS(t *testing.T) *vfs.MemFS {
	mem := vfs.NewMem()
	fs = mem
	t.Cleanup(func() {
		fs = vfs.Default
		optionsFile, rootDir, verbose, injectDSL = "", "", false, ""
		randomConfig.triangles, randomConfig.surfaces = 10, 4
	})
	require.NoError(t, vfs.WriteFile(mem, "in.scn", []byte(testScenario)))
	return mem
}

func TestRender(t *testing.T) {
	mem := setupFS(t)
	rootDir = "out/"

	sc, err := readScenario(fs, "in.scn")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, saveScenario(&buf, sc, "a.txt"))
	require.True(t, strings.HasPrefix(buf.String(), "out/a.txt: 2 objects, 9 lines, fingerprint "))

	data, err := vfs.ReadFile(mem, "out/a.txt")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "v (x=1.0000 y=2.0000 z=3.0000)\nm Count=1\n"))

	// Rendering the same scenario again yields an identical dump.
	buf.Reset()
	require.NoError(t, saveScenario(&buf, sc, "b.txt"))
	diff, err := sdump.CompareDumps(fs, "out/a.txt", "out/b.txt", 3)
	require.NoError(t, err)
	require.Equal(t, "", diff)

	_, err = readScenario(fs, "missing.scn")
	require.Error(t, err)
}

func TestRenderOptionsFile(t *testing.T) {
	mem := setupFS(t)
	require.NoError(t, vfs.WriteFile(mem, "sdump.ini", []byte(`
[Viewer]
  zoom=3
[Dump]
  root=from-ini/
`)))
	optionsFile = "sdump.ini"

	sc := scenario.Random(3, 2, 1)
	var buf bytes.Buffer
	require.NoError(t, saveScenario(&buf, sc, "r.txt"))
	_, err := mem.Stat("from-ini/r.txt")
	require.NoError(t, err)

	// Unknown keys of the [Dump] section are rejected.
	require.NoError(t, vfs.WriteFile(mem, "sdump.ini", []byte("[Dump]\n  colour=red\n")))
	require.Error(t, saveScenario(&buf, sc, "r.txt"))
}

func TestRenderInject(t *testing.T) {
	mem := setupFS(t)
	rootDir = "out/"
	injectDSL = `writes(pathMatch("b.txt", always))`

	sc, err := readScenario(fs, "in.scn")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, saveScenario(&buf, sc, "a.txt"))
	err = saveScenario(&buf, sc, "b.txt")
	require.True(t, errors.Is(err, errorfs.ErrInjected), "%v", err)
	require.Contains(t, err.Error(), "sdump: saving out/b.txt")

	_, err = mem.Stat("out/a.txt")
	require.NoError(t, err)
	_, err = mem.Stat("out/b.txt")
	require.Error(t, err)

	// Reads are not affected, so the scenario itself is still readable.
	injectDSL = "reads(always)"
	require.NoError(t, saveScenario(&buf, sc, "b.txt"))

	injectDSL = "sometimes"
	err = saveScenario(&buf, sc, "c.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--inject")
	require.False(t, errors.Is(err, errorfs.ErrInjected))
}

func TestRandomCounts(t *testing.T) {
	setupFS(t)
	randomConfig.seed = 1

	randomConfig.triangles, randomConfig.surfaces = -1, 4
	_, err := randomScenario()
	require.EqualError(t, err, "sdump: --triangles must be non-negative, got -1")

	randomConfig.triangles, randomConfig.surfaces = 2, -3
	_, err = randomScenario()
	require.EqualError(t, err, "sdump: --surfaces must be non-negative, got -3")

	randomConfig.triangles, randomConfig.surfaces = 0, 0
	sc, err := randomScenario()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, saveScenario(&buf, sc, "empty.txt"))
}

func TestStats(t *testing.T) {
	setupFS(t)
	sc, err := readScenario(fs, "in.scn")
	require.NoError(t, err)

	stats := objectStats(sc)
	require.Len(t, stats, 2)
	require.Equal(t, 1, stats[0].lines)
	require.Equal(t, 8, stats[1].lines)

	var buf bytes.Buffer
	writeStats(&buf, sc)
	out := buf.String()
	require.Contains(t, out, "KIND")
	require.Contains(t, out, "mesh")
	require.Contains(t, out, "vector")
}
