// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// sdump renders scenario files describing geometry kernel objects into dumps,
// and compares and summarizes dumps.
package main

import (
	"log"
	"os"

	"github.com/geomkit/sdump/vfs"
	"github.com/spf13/cobra"
)

var (
	optionsFile string
	rootDir     string
	verbose     bool
	injectDSL   string
)

// fs is the file system every command reads and writes.
var fs vfs.FS = vfs.Default

var rootCmd = &cobra.Command{
	Use:   "sdump [command] (flags)",
	Short: "geometry kernel dump tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		renderCmd,
		randomCmd,
		diffCmd,
		statsCmd,
		plotCmd,
	)

	for _, cmd := range []*cobra.Command{renderCmd, randomCmd} {
		cmd.Flags().StringVar(
			&optionsFile, "options", "", "INI file holding a [Dump] section")
		cmd.Flags().StringVar(
			&rootDir, "root", "", "directory to save dumps under (overrides the options file)")
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "log every save and report save latency")
		cmd.Flags().StringVar(
			&injectDSL, "inject", "", `fail dump writes matching an error injection rule, e.g. writes(pathMatch("*.txt", always))`)
	}

	randomCmd.Flags().Uint32Var(
		&randomConfig.seed, "seed", 1, "seed of the random source")
	randomCmd.Flags().IntVar(
		&randomConfig.triangles, "triangles", 10, "number of mesh triangles")
	randomCmd.Flags().IntVar(
		&randomConfig.surfaces, "surfaces", 4, "number of shell surfaces")

	diffCmd.Flags().IntVarP(
		&diffContext, "context", "U", 3, "number of unchanged lines around each change")

	plotCmd.Flags().IntVar(
		&plotHeight, "height", 10, "height of the plot in lines")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
