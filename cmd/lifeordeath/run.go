// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/lifeordeath/internal/cell"
	"github.com/ManuGH/lifeordeath/internal/config"
	"github.com/ManuGH/lifeordeath/internal/display"
	"github.com/ManuGH/lifeordeath/internal/id"
	xglog "github.com/ManuGH/lifeordeath/internal/log"
	"github.com/ManuGH/lifeordeath/internal/random"
	"github.com/ManuGH/lifeordeath/internal/screen"
	"golang.org/x/term"
)

// run plays one session: every line read from in is a button press, "q"
// or end of input quits.
func run(ctx context.Context, cfg config.AppConfig, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = xglog.ContextWithSessionID(ctx, id.New())
	logger := xglog.WithComponentFromContext(ctx, "screen")

	cat, err := display.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	presenter, err := display.NewPresenter(cat, cfg.Locale)
	if err != nil {
		return fmt.Errorf("resolve locale: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	logger.Info().
		Str(xglog.FieldEvent, "session.started").
		Int64(xglog.FieldSeed, seed).
		Str(xglog.FieldLocale, presenter.Locale().String()).
		Msg("session started")

	gen := cell.New(
		cell.WithCoin(random.NewCoin(seed)),
		cell.WithLogger(xglog.WithComponentFromContext(ctx, "cell")),
	)
	// Escape codes only make sense on a real terminal.
	terminal := display.NewTerminal(out, presenter,
		display.WithWindow(cfg.Window),
		display.WithClear(cfg.Clear && isTerminal(out)),
	)

	presses := make(chan struct{})
	go readPresses(ctx, in, presses)

	return screen.New(gen, terminal, logger).Run(ctx, presses)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readPresses turns input lines into presses and closes presses when the
// input ends, the user quits or ctx is done.
func readPresses(ctx context.Context, in io.Reader, presses chan<- struct{}) {
	defer close(presses)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "q", "quit", "exit":
			return
		}
		select {
		case presses <- struct{}{}:
		case <-ctx.Done():
			return
		}
	}
}
