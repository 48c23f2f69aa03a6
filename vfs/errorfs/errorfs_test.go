// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package errorfs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/geomkit/sdump/vfs"
	"github.com/stretchr/testify/require"
)

// recordingInjector records every operation it sees and never injects.
type recordingInjector struct {
	ops []string
}

func (r *recordingInjector) MaybeError(op Op, path string) error {
	r.ops = append(r.ops, op.String()+" "+path)
	return nil
}

func TestWriteFileOps(t *testing.T) {
	rec := &recordingInjector{}
	fs := Wrap(vfs.NewMem(), rec)
	require.NoError(t, vfs.WriteFile(fs, "dumps/a.txt", []byte("hello")))
	require.Equal(t, []string{
		"mkdirall dumps",
		"create dumps/a.txt",
		"file.write dumps/a.txt",
		"file.sync dumps/a.txt",
	}, rec.ops)
}

func TestInjection(t *testing.T) {
	testCases := []struct {
		dsl      string
		wantFail bool
		// contents left behind in the underlying FS
		wantData string
	}{
		{dsl: "always", wantFail: true},
		{dsl: "onIndex(2, always)", wantFail: true, wantData: ""},
		{dsl: "onIndex(7, always)", wantFail: false, wantData: "hello"},
		{dsl: "reads(always)", wantFail: false, wantData: "hello"},
		{dsl: `writes(pathMatch("*.txt", onIndex(1, always)))`, wantFail: true, wantData: ""},
		{dsl: `pathMatch("*.log", always)`, wantFail: false, wantData: "hello"},
		{dsl: `any(pathMatch("*.log", always), onIndex(3, always))`, wantFail: true, wantData: "hello"},
	}
	for _, tc := range testCases {
		t.Run(tc.dsl, func(t *testing.T) {
			inj, err := ParseInjectorFromDSL(tc.dsl)
			require.NoError(t, err)
			mem := vfs.NewMem()
			err = vfs.WriteFile(Wrap(mem, inj), "dumps/a.txt", []byte("hello"))
			if !tc.wantFail {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrInjected), "%v", err)
			}
			if tc.dsl == "always" {
				return
			}
			data, err := vfs.ReadFile(mem, "dumps/a.txt")
			require.NoError(t, err)
			require.Equal(t, tc.wantData, string(data))
		})
	}
}

func TestParseInjectorErrors(t *testing.T) {
	for _, d := range []string{
		"never",
		"onIndex(x, always)",
		"pathMatch(always)",
		"always(",
	} {
		_, err := ParseInjectorFromDSL(d)
		require.Error(t, err, d)
	}
}

func TestOnIndex(t *testing.T) {
	ii := OnIndex(1, Always())
	require.NoError(t, ii.MaybeError(OpOpen, "a"))
	require.Equal(t, int32(0), ii.Index())
	require.ErrorIs(t, ii.MaybeError(OpOpen, "a"), ErrInjected)
	require.NoError(t, ii.MaybeError(OpOpen, "a"))
}
