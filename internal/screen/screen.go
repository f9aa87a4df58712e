// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package screen wires the cell generator to the terminal display.
package screen

import (
	"context"
	"fmt"

	"github.com/ManuGH/lifeordeath/internal/cell"
	"github.com/ManuGH/lifeordeath/internal/display"
	xglog "github.com/ManuGH/lifeordeath/internal/log"
	"github.com/ManuGH/lifeordeath/internal/metrics"
	"github.com/rs/zerolog"
)

// Screen is one interactive session: a generator, its display and the
// auto-scroll hook between them.
type Screen struct {
	gen      *cell.Generator
	term     *display.Terminal
	follower *display.Follower
	logger   zerolog.Logger
}

// New returns a Screen drawing gen on term. The follower scrolls term to
// each new tail entry.
func New(gen *cell.Generator, term *display.Terminal, logger zerolog.Logger) *Screen {
	return &Screen{
		gen:      gen,
		term:     term,
		follower: display.NewFollower(term.ScrollTo),
		logger:   logger,
	}
}

// Press triggers the generator once and redraws the screen.
func (s *Screen) Press() (cell.Outcome, error) {
	out := s.gen.Trigger()
	entries := s.gen.Entries()
	metrics.RecordPress(out, len(entries))

	ev := s.logger.Info().
		Str(xglog.FieldEvent, "screen.pressed").
		Stringer(xglog.FieldDrawn, out.Drawn).
		Int(xglog.FieldAppended, len(out.Appended)).
		Int(xglog.FieldLogLength, len(entries))
	if out.Removed != nil {
		ev = ev.Str(xglog.FieldRemoved, out.Removed.ID)
	}
	ev.Msg("cell created")

	// Scroll before drawing so the frame already shows the newest row.
	s.follower.Observe(entries)
	if err := s.term.Draw(entries); err != nil {
		return out, err
	}
	return out, nil
}

// Render redraws the current snapshot without triggering.
func (s *Screen) Render() error {
	return s.term.Draw(s.gen.Entries())
}

// Entries returns the current log snapshot.
func (s *Screen) Entries() []cell.Entry {
	return s.gen.Entries()
}

// Run draws the initial screen and then handles presses one at a time
// until ctx is done or presses is closed.
func (s *Screen) Run(ctx context.Context, presses <-chan struct{}) error {
	s.logger = xglog.WithContext(ctx, s.logger)
	if err := s.Render(); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}
	s.logger.Info().Str(xglog.FieldEvent, "screen.started").Msg("screen ready")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-presses:
			if !ok {
				s.logger.Info().
					Str(xglog.FieldEvent, "screen.closed").
					Int(xglog.FieldLogLength, s.gen.Len()).
					Msg("input closed")
				return nil
			}
			if _, err := s.Press(); err != nil {
				return err
			}
		}
	}
}
