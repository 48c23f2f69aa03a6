// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sdump

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/geomkit/sdump/geom"
	"github.com/geomkit/sdump/internal/base"
	"github.com/geomkit/sdump/vfs"
	"github.com/prometheus/client_golang/prometheus"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
var DefaultLogger = base.DefaultLogger

// DefaultRoot is the directory dumps are saved under when Options.Root is
// unset. It always ends in a path separator.
var DefaultRoot = filepath.Join(os.TempDir(), "sdump") + string(filepath.Separator)

// Options holds the optional parameters for a Dumper. The zero value is ready
// for use.
type Options struct {
	// FS is the file system dumps are saved to. The default is vfs.Default.
	FS vfs.FS

	// Root is prepended verbatim to the file name passed to Save, so a
	// directory root must end with a separator. The default is DefaultRoot.
	Root string

	// Logger receives a line for every saved or failed dump. The default is
	// DefaultLogger.
	Logger Logger

	// Kernel resolves the requests and groups that own dumped entities. The
	// default is an empty sketch, under which every owner prints as UNKNOWN.
	Kernel geom.Kernel

	// SaveLatency, if set, records the latency of Save in nanoseconds.
	SaveLatency prometheus.Histogram

	// Enabled makes New return a dumper on which Init has already been called.
	Enabled bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() {
	if o.FS == nil {
		o.FS = vfs.Default
	}
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	if o.Kernel == nil {
		o.Kernel = &geom.Sketch{}
	}
}

// String returns a string representation of the Options that can be parsed by
// Options.Parse.
func (o *Options) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[Dump]\n")
	fmt.Fprintf(&buf, "  root=%s\n", o.Root)
	fmt.Fprintf(&buf, "  enabled=%t\n", o.Enabled)
	return buf.String()
}

// ParseHooks contains callbacks used while parsing options.
type ParseHooks struct {
	// SkipUnknown, if set, is consulted for every unrecognized key, named
	// "section.key". Returning true ignores the key instead of failing.
	SkipUnknown func(name, value string) bool
}

// Parse parses the options from the specified string. Options not mentioned in
// s keep their current values.
func (o *Options) Parse(s string, hooks *ParseHooks) error {
	return parseOptions(s, func(section, key, value string) error {
		var err error
		switch {
		case section == "Dump" && key == "root":
			o.Root = value
		case section == "Dump" && key == "enabled":
			o.Enabled, err = strconv.ParseBool(value)
		default:
			if hooks != nil && hooks.SkipUnknown != nil && hooks.SkipUnknown(section+"."+key, value) {
				return nil
			}
			return errors.Errorf("sdump: unknown option: %s.%s",
				errors.Safe(section), errors.Safe(key))
		}
		if err != nil {
			return errors.Wrapf(err, "sdump: invalid value for %s.%s", errors.Safe(section), errors.Safe(key))
		}
		return nil
	})
}

// parseOptions visits the key=value pairs of an INI-style string, passing each
// with the name of its enclosing section.
func parseOptions(s string, visitKeyValue func(section, key, value string) error) error {
	var section string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			// Skip blank lines and comments.
			continue
		}
		n := len(line)
		if line[0] == '[' && line[n-1] == ']' {
			section = line[1 : n-1]
			continue
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			const maxLen = 50
			if len(line) > maxLen {
				line = line[:maxLen-3] + "..."
			}
			return errors.Errorf("sdump: invalid key=value syntax: %q", errors.Safe(line))
		}
		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])
		if err := visitKeyValue(section, key, value); err != nil {
			return err
		}
	}
	return nil
}
