// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"

	"github.com/geomkit/sdump"
	"github.com/spf13/cobra"
)

var diffContext int

var diffCmd = &cobra.Command{
	Use:   "diff <dump-a> <dump-b>",
	Short: "compare two saved dumps",
	Long: `
Print a unified diff between two saved dumps. Nothing is printed if they are
equal.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := sdump.CompareDumps(fs, args[0], args[1], diffContext)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), diff)
		return nil
	},
}
