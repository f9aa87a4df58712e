// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config provides configuration management for lifeordeath.
//
// Values are resolved with precedence ENV > YAML file > defaults. The YAML
// file is parsed strictly: unknown keys and trailing documents are errors.
package config
