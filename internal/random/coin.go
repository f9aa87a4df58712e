// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package random

import (
	"math/rand/v2"
	"sync"
)

// SeededCoin flips a fair coin from a PCG stream.
type SeededCoin struct {
	mu   sync.Mutex
	seed int64
	rng  *rand.Rand
}

// NewCoin returns a coin whose flips are fully determined by seed.
func NewCoin(seed int64) *SeededCoin {
	return &SeededCoin{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Flip returns true or false with equal probability.
func (c *SeededCoin) Flip() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(2) == 1
}

// Seed reports the seed the coin was created with.
func (c *SeededCoin) Seed() int64 {
	return c.seed
}

// ScriptedCoin replays a fixed sequence of flips. Once the script is
// exhausted the final value repeats.
type ScriptedCoin struct {
	mu    sync.Mutex
	draws []bool
	next  int
}

// Script returns a coin that yields draws in order.
func Script(draws ...bool) *ScriptedCoin {
	cp := make([]bool, len(draws))
	copy(cp, draws)
	return &ScriptedCoin{draws: cp}
}

// Flip returns the next scripted value. An empty script always yields false.
func (c *ScriptedCoin) Flip() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.draws) == 0 {
		return false
	}
	if c.next >= len(c.draws) {
		return c.draws[len(c.draws)-1]
	}
	v := c.draws[c.next]
	c.next++
	return v
}

// Remaining reports how many scripted flips have not been consumed yet.
func (c *ScriptedCoin) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.draws) - c.next
}
