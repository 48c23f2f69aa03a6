// Copyright 2012 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package vfs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestMemFS(t *testing.T) {
	fs := NewMem()
	var f File
	datadriven.RunTest(t, "testdata/memfs", func(t *testing.T, td *datadriven.TestData) string {
		var err error
		switch td.Cmd {
		case "create":
			f, err = fs.Create(td.CmdArgs[0].String())
		case "mkdirall":
			err = fs.MkdirAll(td.CmdArgs[0].String(), 0755)
		case "open":
			f, err = fs.Open(td.CmdArgs[0].String())
		case "remove":
			err = fs.Remove(td.CmdArgs[0].String())
		case "f.write":
			_, err = f.Write([]byte(strings.TrimSpace(td.Input)))
		case "f.close":
			f, err = nil, f.Close()
		case "read":
			var data []byte
			data, err = ReadFile(fs, td.CmdArgs[0].String())
			if err == nil {
				return string(data)
			}
		case "list":
			var names []string
			names, err = fs.List(td.CmdArgs[0].String())
			if err == nil {
				return strings.Join(names, "\n")
			}
		case "stat":
			fi, err := fs.Stat(td.CmdArgs[0].String())
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%s size=%d dir=%t", fi.Name(), fi.Size(), fi.IsDir())
		case "string":
			return fs.String()
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
		if err != nil {
			return err.Error()
		}
		return "OK"
	})
}

func TestMemFSOverwrite(t *testing.T) {
	fs := NewMem()
	require.NoError(t, WriteFile(fs, "dumps/a.txt", []byte("first version")))
	require.NoError(t, WriteFile(fs, "dumps/a.txt", []byte("second")))
	data, err := ReadFile(fs, "dumps/a.txt")
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	names, err := fs.List("dumps")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, names)

	require.NoError(t, fs.Remove("dumps/a.txt"))
	_, err = fs.Stat("dumps/a.txt")
	require.Error(t, err)
}

func TestDefaultFS(t *testing.T) {
	dir := t.TempDir()
	name := Default.PathJoin(dir, "sub", "dump.txt")
	require.NoError(t, WriteFile(Default, name, []byte("line\n")))
	// Create truncates.
	require.NoError(t, WriteFile(Default, name, []byte("x")))
	data, err := ReadFile(Default, name)
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
	require.Equal(t, "dump.txt", Default.PathBase(name))
	require.Equal(t, Default.PathJoin(dir, "sub"), Default.PathDir(name))
}
