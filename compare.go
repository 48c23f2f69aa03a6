// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/geomkit/sdump/vfs"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between the dumps a and b, with context
// unchanged lines around every change. It returns "" if the dumps are equal.
func Diff(a, b string, context int) string {
	return unifiedDiff(a, b, "a", "b", context)
}

// CompareDumps reads the saved dumps at paths a and b from fs and returns
// their unified diff, as Diff does.
func CompareDumps(fs vfs.FS, a, b string, context int) (string, error) {
	before, err := vfs.ReadFile(fs, a)
	if err != nil {
		return "", errors.Wrapf(err, "sdump: reading %s", redact.Safe(a))
	}
	after, err := vfs.ReadFile(fs, b)
	if err != nil {
		return "", errors.Wrapf(err, "sdump: reading %s", redact.Safe(b))
	}
	return unifiedDiff(string(before), string(after), a, b, context), nil
}

func unifiedDiff(a, b, fromFile, toFile string, context int) string {
	// Writing to the in-memory buffer cannot fail.
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  context,
	})
	return diff
}
