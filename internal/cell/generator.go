// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package cell

import (
	"slices"
	"time"

	"github.com/ManuGH/lifeordeath/internal/id"
	xglog "github.com/ManuGH/lifeordeath/internal/log"
	"github.com/ManuGH/lifeordeath/internal/random"
	"github.com/rs/zerolog"
)

// streakThreshold is the run length that fires a marker insert or removal.
const streakThreshold = 3

// Coin decides the kind of each new cell: true draws a dead cell, false a live one.
type Coin interface {
	Flip() bool
}

// Outcome describes what a single Trigger did to the log.
type Outcome struct {
	Drawn      Kind
	Appended   []Entry
	Removed    *Entry
	LiveStreak int
	DeadStreak int
}

// Generator produces cells on demand.
type Generator struct {
	coin   Coin
	newID  func() string
	logger zerolog.Logger

	entries    []Entry
	liveStreak int
	deadStreak int
}

// Option configures a Generator.
type Option func(*Generator)

// WithCoin injects the coin used for every draw.
func WithCoin(c Coin) Option {
	return func(g *Generator) {
		if c != nil {
			g.coin = c
		}
	}
}

// WithIDFunc injects the identity generator for new entries.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New returns a Generator with an empty log and both streaks at zero.
// Without WithCoin it flips a coin seeded from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{
		newID:  id.New,
		logger: xglog.WithComponent("cell"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.coin == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		g.coin = random.NewCoin(seed)
	}
	return g
}

// Trigger draws one cell and applies the streak rules.
func (g *Generator) Trigger() Outcome {
	kind := KindLive
	if g.coin.Flip() {
		kind = KindDead
	}

	if kind == KindLive {
		g.liveStreak++
		g.deadStreak = 0
	} else {
		g.deadStreak++
		g.liveStreak = 0
	}

	out := Outcome{Drawn: kind}
	if g.liveStreak == streakThreshold {
		out.Appended = []Entry{g.push(kind), g.push(KindMarker)}
		g.liveStreak = 0
	} else {
		out.Appended = []Entry{g.push(kind)}
	}

	// Evaluated independently of the live branch; in practice only one fires.
	if g.deadStreak == streakThreshold {
		if removed, ok := g.removeLast(KindMarker); ok {
			out.Removed = &removed
		}
		g.deadStreak = 0
	}

	out.LiveStreak, out.DeadStreak = g.liveStreak, g.deadStreak

	ev := g.logger.Debug().
		Str(xglog.FieldEvent, "cell.triggered").
		Stringer(xglog.FieldDrawn, kind).
		Int(xglog.FieldAppended, len(out.Appended)).
		Int(xglog.FieldLiveStreak, g.liveStreak).
		Int(xglog.FieldDeadStreak, g.deadStreak).
		Int(xglog.FieldLogLength, len(g.entries))
	if out.Removed != nil {
		ev = ev.Str(xglog.FieldRemoved, out.Removed.ID)
	}
	ev.Msg("cell triggered")

	return out
}

func (g *Generator) push(kind Kind) Entry {
	e := Entry{ID: g.newID(), Kind: kind}
	g.entries = append(g.entries, e)
	return e
}

// removeLast drops the most recent entry of the given kind, keeping the
// order of everything else. It reports false when no such entry exists.
func (g *Generator) removeLast(kind Kind) (Entry, bool) {
	i := g.LastIndex(kind)
	if i < 0 {
		return Entry{}, false
	}
	e := g.entries[i]
	g.entries = slices.Delete(g.entries, i, i+1)
	return e, true
}

// LastIndex scans the log from the end and returns the index of the most
// recent entry of kind, or -1.
func (g *Generator) LastIndex(kind Kind) int {
	for i := len(g.entries) - 1; i >= 0; i-- {
		if g.entries[i].Kind == kind {
			return i
		}
	}
	return -1
}

// Entries returns a copy of the log in display order.
func (g *Generator) Entries() []Entry {
	return slices.Clone(g.entries)
}

// Len returns the number of entries in the log.
func (g *Generator) Len() int {
	return len(g.entries)
}

// Last returns the newest entry.
func (g *Generator) Last() (Entry, bool) {
	if len(g.entries) == 0 {
		return Entry{}, false
	}
	return g.entries[len(g.entries)-1], true
}

// Streaks returns the current live and dead streak counters.
func (g *Generator) Streaks() (live, dead int) {
	return g.liveStreak, g.deadStreak
}
