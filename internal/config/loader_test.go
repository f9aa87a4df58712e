// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogService, EnvLocale, EnvSeed, EnvWindow, EnvClear, EnvMetricsTextfile} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("", "v1.2.3").Load()
	require.NoError(t, err)

	assert.Equal(t, AppConfig{
		Version:    "v1.2.3",
		LogLevel:   "info",
		LogService: "lifeordeath",
		Locale:     "en-US",
		Window:     8,
		Clear:      true,
	}, cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", `
logLevel: debug
locale: ru
seed: 42
window: 3
clear: false
metricsTextfile: /tmp/lifeordeath.prom
`)

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Window)
	assert.False(t, cfg.Clear)
	assert.Equal(t, "/tmp/lifeordeath.prom", cfg.MetricsTextfile)
	assert.Equal(t, "lifeordeath", cfg.LogService, "unset file keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yml", "locale: ru\nwindow: 3\nseed: 1\n")
	t.Setenv(EnvLocale, "en-US")
	t.Setenv(EnvWindow, "5")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvClear, "no")

	l := NewLoader(path, "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 5, cfg.Window)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.False(t, cfg.Clear)
	assert.Contains(t, l.ConsumedEnvKeys, EnvSeed)
	assert.Contains(t, l.ConsumedEnvKeys, EnvMetricsTextfile)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Window)
}

// TestStrictConfig_FailsOnUnknownFields verifies that strict mode rejects
// configuration files with unknown fields.
func TestStrictConfig_FailsOnUnknownFields(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "locale: en-US\nunknownField: should_fail\n")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConfigField), "got: %v", err)
}

func TestStrictConfig_FailsOnMultipleDocuments(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "locale: en-US\n---\nlocale: ru\n")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoad_RejectsNonYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.json", "{}")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only YAML supported")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"), "").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	valid := AppConfig{LogLevel: "info", Locale: "en-US", Window: 1}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{name: "zero window", mutate: func(c *AppConfig) { c.Window = 0 }, wantErr: true},
		{name: "blank locale", mutate: func(c *AppConfig) { c.Locale = "  " }, wantErr: true},
		{name: "bad log level", mutate: func(c *AppConfig) { c.LogLevel = "loud" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoad_InvalidWindowFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWindow, "0")

	_, err := NewLoader("", "").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
