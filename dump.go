// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sdump

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/geomkit/sdump/textbuf"
	"github.com/geomkit/sdump/vfs"
)

// Dumper accumulates the text of dumped objects and saves it to files.
//
// A new Dumper is disabled. The enabled flag is advisory: dump methods append
// text regardless of it, and callers check Enabled before deciding whether to
// dump at all.
type Dumper struct {
	opts Options
	log  textbuf.Accumulator

	on bool
	// count is the sequence marker passed to the last Save.
	count int
	// breaks counts BreakPoint calls that matched the current line.
	breaks int
	root   string
}

// New returns a Dumper configured by opts, which may be nil.
func New(opts *Options) *Dumper {
	d := &Dumper{}
	if opts != nil {
		d.opts = *opts
	}
	d.opts.EnsureDefaults()
	d.root = d.opts.Root
	if d.opts.Enabled {
		d.Init()
	}
	return d
}

// Init enables the dumper, resets the save marker and breakpoint counter,
// discards any accumulated text and restores the configured root.
func (d *Dumper) Init() {
	d.on = true
	d.count = 0
	d.breaks = 0
	d.Clear()
	d.root = d.opts.Root
}

// Enabled returns true once Init has been called.
func (d *Dumper) Enabled() bool {
	return d.on
}

// Clear discards the accumulated text. Counters and the enabled flag are left
// untouched.
func (d *Dumper) Clear() {
	d.log.Clear()
}

// BreakPoint increments the breakpoint counter if the number of accumulated
// lines lies within [lo, hi]. A debugger can set a conditional breakpoint on
// the counter to stop at a given point of a dump.
func (d *Dumper) BreakPoint(lo, hi int) {
	if n := d.log.Lines(); n >= lo && n <= hi {
		d.breaks++
	}
}

// Breaks returns the number of BreakPoint calls that matched.
func (d *Dumper) Breaks() int { return d.breaks }

// Count returns the sequence marker recorded by the last Save.
func (d *Dumper) Count() int { return d.count }

// Root returns the prefix Save prepends to file names.
func (d *Dumper) Root() string { return d.root }

// SetRoot sets the prefix Save prepends to file names until the next Init.
func (d *Dumper) SetRoot(root string) { d.root = root }

// Lines returns the number of accumulated lines.
func (d *Dumper) Lines() int { return d.log.Lines() }

// String returns the accumulated text.
func (d *Dumper) String() string { return d.log.String() }

// Fingerprint returns a hash of the accumulated text. Dumps of equal objects
// have equal fingerprints.
func (d *Dumper) Fingerprint() uint64 {
	return xxhash.Sum64String(d.log.String())
}

// Save writes the accumulated text followed by a newline to Root()+filename
// and records n as the current sequence marker. The accumulated text is kept.
// The marker is recorded even if the write fails.
func (d *Dumper) Save(filename string, n int) error {
	path := d.root + filename
	text := d.log.String()
	start := time.Now()
	err := vfs.WriteFile(d.opts.FS, path, []byte(text+"\n"))
	if d.opts.SaveLatency != nil {
		d.opts.SaveLatency.Observe(float64(time.Since(start)))
	}
	d.count = n
	if err != nil {
		err = errors.Wrapf(err, "sdump: saving %s", redact.Safe(path))
		d.opts.Logger.Errorf("sdump: save %s failed: %v", path, err)
		return err
	}
	d.opts.Logger.Infof("sdump: saved %s (%d lines, fingerprint %016x)",
		path, d.log.Lines(), xxhash.Sum64String(text))
	return nil
}

// line appends s as one line.
func (d *Dumper) line(s string) {
	d.log.AppendLine(s)
}

// linef formats and appends one line.
func (d *Dumper) linef(format string, args ...interface{}) {
	d.log.AppendLine(fmt.Sprintf(format, args...))
}

// field appends s as one line unless it is empty. It is used with the
// scalar.Format functions, which return "" for default values.
func (d *Dumper) field(s string) {
	if s != "" {
		d.log.AppendLine(s)
	}
}
