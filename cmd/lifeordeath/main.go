// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/lifeordeath/internal/config"
	xglog "github.com/ManuGH/lifeordeath/internal/log"
	"github.com/ManuGH/lifeordeath/internal/metrics"
	"github.com/ManuGH/lifeordeath/internal/version"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "config" {
		os.Exit(runConfigCLI(os.Args[2:]))
	}

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Configure logger with safe defaults until config is loaded
	xglog.Configure(xglog.Config{
		Level:   "info",
		Service: "lifeordeath",
		Version: version.Version,
	})
	logger := xglog.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := strings.TrimSpace(*configPath)
	cfg, err := config.NewLoader(path, version.Version).Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(xglog.FieldEvent, "config.load_failed").
			Str(xglog.FieldPath, path).
			Msg("failed to load configuration")
	}

	// Re-configure logger with loaded configuration
	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: cfg.Version,
	})
	logger = xglog.WithComponent("main")

	source := "env+defaults"
	if path != "" {
		source = "file"
	}
	logger.Info().
		Str(xglog.FieldEvent, "config.loaded").
		Str("source", source).
		Str(xglog.FieldPath, path).
		Str(xglog.FieldLocale, cfg.Locale).
		Msg("loaded configuration")

	runErr := run(ctx, cfg, os.Stdin, os.Stdout)

	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "metrics.write_failed").
			Str(xglog.FieldPath, cfg.MetricsTextfile).
			Msg("failed to write metrics textfile")
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Fatal().
			Err(runErr).
			Str(xglog.FieldEvent, "screen.failed").
			Msg("session ended with error")
	}
	logger.Info().Str(xglog.FieldEvent, "shutdown.complete").Msg("bye")
}
