// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package lcgrand implements the 32-bit linear congruential generator used by
// Delphi's Random, so that diagnostic scenarios can be reproduced bit for bit
// from a seed across runs and implementations.
//
// The recurrence is state = state*0x08088405 + 1 (mod 2^32). Each draw returns
// the new state.
package lcgrand

// Multiplier is the LCG multiplier.
const Multiplier = 0x08088405

const twoNeg32 = 1.0 / (1 << 32)

// Source is a deterministic pseudo-random source. The zero value is seeded
// with 0. A Source is not safe for concurrent use.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Seed resets the state to v.
func (s *Source) Seed(v uint32) {
	s.state = v
}

// State returns the current state, i.e. the value of the last draw.
func (s *Source) State() uint32 {
	return s.state
}

// Draw advances the generator and returns the new state.
func (s *Source) Draw() uint32 {
	s.state = s.state*Multiplier + 1
	return s.state
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Draw()) * twoNeg32
}

// IntBelow returns a value in [0, n), computed as the high 32 bits of the
// 64-bit product n*Draw(), which avoids the bias of a modulo reduction. It
// returns 0 if n <= 0; a draw is consumed either way.
func (s *Source) IntBelow(n int) int {
	d := s.Draw()
	if n <= 0 {
		return 0
	}
	return int((uint64(uint32(n)) * uint64(d)) >> 32)
}
