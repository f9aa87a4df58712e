// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// Environment keys.
const (
	EnvLogLevel        = "LIFEORDEATH_LOG_LEVEL"
	EnvLogService      = "LIFEORDEATH_LOG_SERVICE"
	EnvLocale          = "LIFEORDEATH_LOCALE"
	EnvSeed            = "LIFEORDEATH_SEED"
	EnvWindow          = "LIFEORDEATH_WINDOW"
	EnvClear           = "LIFEORDEATH_CLEAR"
	EnvMetricsTextfile = "LIFEORDEATH_METRICS_TEXTFILE"
)

// AppConfig is the resolved runtime configuration.
type AppConfig struct {
	Version string

	LogLevel   string
	LogService string

	// Locale selects the label catalog (BCP 47, e.g. "en-US", "ru").
	Locale string
	// Seed fixes the coin. Zero draws a fresh seed per session.
	Seed int64
	// Window is the number of rows visible on screen.
	Window int
	// Clear redraws the whole terminal on every press.
	Clear bool

	// MetricsTextfile, when set, receives a Prometheus text dump on exit.
	MetricsTextfile string
}

// FileConfig mirrors the YAML file. Pointer fields distinguish "unset" from
// an explicit zero value.
type FileConfig struct {
	LogLevel        string `yaml:"logLevel"`
	LogService      string `yaml:"logService"`
	Locale          string `yaml:"locale"`
	Seed            *int64 `yaml:"seed"`
	Window          int    `yaml:"window"`
	Clear           *bool  `yaml:"clear"`
	MetricsTextfile string `yaml:"metricsTextfile"`
}
