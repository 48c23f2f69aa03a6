// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"io"

	"github.com/geomkit/sdump"
	"github.com/geomkit/sdump/internal/base"
	"github.com/geomkit/sdump/internal/scenario"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <scenario>",
	Short: "print the dump size of every object of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := readScenario(fs, args[0])
		if err != nil {
			return err
		}
		writeStats(cmd.OutOrStdout(), sc)
		return nil
	},
}

var plotHeight int

var plotCmd = &cobra.Command{
	Use:   "plot <scenario>",
	Short: "plot the dump size of every object of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := readScenario(fs, args[0])
		if err != nil {
			return err
		}
		stats := objectStats(sc)
		if len(stats) == 0 {
			return nil
		}
		values := make([]float64, len(stats))
		for i := range stats {
			values[i] = float64(stats[i].lines)
		}
		fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(values, asciigraph.Height(plotHeight)))
		return nil
	},
}

type objectStat struct {
	obj         scenario.Object
	lines       int
	bytes       int
	fingerprint uint64
}

// objectStats dumps every object of sc on its own.
func objectStats(sc *scenario.Scenario) []objectStat {
	d := sdump.New(&sdump.Options{FS: fs, Logger: base.NoopLogger{}, Kernel: &sc.Sketch})
	stats := make([]objectStat, len(sc.Objects))
	for i, o := range sc.Objects {
		d.Clear()
		scenario.DumpObject(d, o)
		stats[i] = objectStat{
			obj:         o,
			lines:       d.Lines(),
			bytes:       len(d.String()),
			fingerprint: d.Fingerprint(),
		}
	}
	return stats
}

func writeStats(w io.Writer, sc *scenario.Scenario) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Line", "Kind", "Name", "Lines", "Bytes", "Fingerprint"})
	var lines, bytes int
	for _, s := range objectStats(sc) {
		tbl.Append([]string{
			fmt.Sprint(s.obj.Line),
			s.obj.Kind,
			s.obj.Name,
			fmt.Sprint(s.lines),
			fmt.Sprint(s.bytes),
			fmt.Sprintf("%016x", s.fingerprint),
		})
		lines += s.lines
		bytes += s.bytes
	}
	tbl.SetFooter([]string{"", "", "total", fmt.Sprint(lines), fmt.Sprint(bytes), ""})
	tbl.Render()
}
