// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	DefaultLogger.Infof("saved %s", "a.txt")
	DefaultLogger.Errorf("failed %d", 3)
	require.Equal(t, "saved a.txt\nfailed 3\n", buf.String())

	buf.Reset()
	NoopLogger{}.Infof("ignored")
	NoopLogger{}.Errorf("ignored")
	require.Empty(t, buf.String())
}
