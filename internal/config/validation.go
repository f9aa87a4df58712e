// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks a resolved configuration.
func Validate(cfg AppConfig) error {
	if cfg.Window < 1 {
		return fmt.Errorf("%w: window must be >= 1, got %d", ErrInvalidConfig, cfg.Window)
	}
	if strings.TrimSpace(cfg.Locale) == "" {
		return fmt.Errorf("%w: locale must not be empty", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: logLevel %q: %v", ErrInvalidConfig, cfg.LogLevel, err)
	}
	return nil
}
