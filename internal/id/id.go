// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package id generates opaque identities for cell entries.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// New returns a random UUIDv4 string.
func New() string {
	return uuid.New().String()
}

// Sequential returns a generator yielding prefix-1, prefix-2, ...
// Scripted sessions and tests use it for stable, readable ids.
func Sequential(prefix string) func() string {
	var n atomic.Uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(n.Add(1), 10)
	}
}
