// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/geomkit/sdump"
	"github.com/geomkit/sdump/internal/base"
	"github.com/geomkit/sdump/internal/scenario"
	"github.com/geomkit/sdump/vfs"
	"github.com/geomkit/sdump/vfs/errorfs"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <scenario> <name>",
	Short: "dump the objects of a scenario file",
	Long: `
Parse a scenario file, dump every object it describes and save the dump as
<name> under the dump root.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := readScenario(fs, args[0])
		if err != nil {
			return err
		}
		return saveScenario(cmd.OutOrStdout(), sc, args[1])
	},
}

var randomConfig struct {
	seed      uint32
	triangles int
	surfaces  int
}

var randomCmd = &cobra.Command{
	Use:   "random <name>",
	Short: "dump a random mesh and shell",
	Long: `
Generate a random mesh and a random shell from a seeded source, dump them and
save the dump as <name> under the dump root. The same seed always produces the
same dump.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := randomScenario()
		if err != nil {
			return err
		}
		return saveScenario(cmd.OutOrStdout(), sc, args[0])
	},
}

func randomScenario() (*scenario.Scenario, error) {
	if randomConfig.triangles < 0 {
		return nil, errors.Errorf("sdump: --triangles must be non-negative, got %d", randomConfig.triangles)
	}
	if randomConfig.surfaces < 0 {
		return nil, errors.Errorf("sdump: --surfaces must be non-negative, got %d", randomConfig.surfaces)
	}
	return scenario.Random(randomConfig.seed, randomConfig.triangles, randomConfig.surfaces), nil
}

func readScenario(fs vfs.FS, path string) (*scenario.Scenario, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	sc, err := scenario.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", errors.Safe(path))
	}
	return sc, nil
}

// dumpOptions builds the dumper options from the --options file and the
// --root, --verbose and --inject flags. Injected errors apply to dump writes
// only; the options file is read from the unwrapped file system.
func dumpOptions() (*sdump.Options, error) {
	opts := &sdump.Options{FS: fs, Logger: base.NoopLogger{}, Enabled: true}
	if optionsFile != "" {
		data, err := vfs.ReadFile(fs, optionsFile)
		if err != nil {
			return nil, err
		}
		// The options file may be shared with other tools, so only keys of
		// the [Dump] section are checked.
		hooks := &sdump.ParseHooks{
			SkipUnknown: func(name, value string) bool {
				return !strings.HasPrefix(name, "Dump.")
			},
		}
		if err := opts.Parse(string(data), hooks); err != nil {
			return nil, errors.Wrapf(err, "%s", errors.Safe(optionsFile))
		}
	}
	if rootDir != "" {
		opts.Root = rootDir
	}
	if verbose {
		opts.Logger = sdump.DefaultLogger
	}
	if injectDSL != "" {
		inj, err := errorfs.ParseInjectorFromDSL(injectDSL)
		if err != nil {
			return nil, errors.Wrap(err, "--inject")
		}
		opts.FS = errorfs.Wrap(opts.FS, inj)
	}
	return opts, nil
}

func saveScenario(w io.Writer, sc *scenario.Scenario, name string) error {
	opts, err := dumpOptions()
	if err != nil {
		return err
	}
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sdump_save_latency_nanoseconds",
		Help:    "Latency of saving a dump.",
		Buckets: prometheus.ExponentialBuckets(float64(time.Microsecond), 4, 12),
	})
	opts.SaveLatency = latency
	opts.Kernel = &sc.Sketch

	d := sdump.New(opts)
	sc.Dump(d)
	if err := d.Save(name, 1); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s%s: %d objects, %d lines, fingerprint %016x\n",
		d.Root(), name, len(sc.Objects), d.Lines(), d.Fingerprint())
	if verbose {
		var m dto.Metric
		if err := latency.Write(&m); err != nil {
			return err
		}
		h := m.GetHistogram()
		fmt.Fprintf(w, "saves: %d, total latency %s\n",
			h.GetSampleCount(), time.Duration(h.GetSampleSum()))
	}
	return nil
}
