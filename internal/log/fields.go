// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldSessionID = "session_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Cell fields
	FieldKind       = "kind"
	FieldDrawn      = "drawn"
	FieldAppended   = "appended"
	FieldRemoved    = "removed"
	FieldLiveStreak = "live_streak"
	FieldDeadStreak = "dead_streak"
	FieldLogLength  = "log_length"

	// Config fields
	FieldPath   = "path"
	FieldLocale = "locale"
	FieldSeed   = "seed"
)
