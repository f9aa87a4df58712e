// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package display turns a snapshot of the cell log into labelled rows and
// draws them on a terminal.
//
// Labels come from YAML catalogs embedded under locales/, registered with
// golang.org/x/text/message. Rendering is a pure function of the snapshot:
// drawing the same entries twice yields the same output.
//
// Auto-scroll is explicit. A Follower is told about every new snapshot and
// calls its ScrollFunc when the newest entry changed.
package display
