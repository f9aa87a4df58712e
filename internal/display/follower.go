// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package display

import "github.com/ManuGH/lifeordeath/internal/cell"

// ScrollFunc brings the entry with the given id into view.
type ScrollFunc func(id string)

// Follower runs a post-update hook whenever a snapshot ends with an entry
// it has not seen at the tail before.
type Follower struct {
	scroll ScrollFunc
	lastID string
}

// NewFollower returns a Follower that calls scroll on every new tail entry.
func NewFollower(scroll ScrollFunc) *Follower {
	return &Follower{scroll: scroll}
}

// Observe inspects a snapshot and reports whether the hook fired.
func (f *Follower) Observe(entries []cell.Entry) bool {
	if len(entries) == 0 {
		f.lastID = ""
		return false
	}
	tail := entries[len(entries)-1].ID
	if tail == f.lastID {
		return false
	}
	f.lastID = tail
	if f.scroll != nil {
		f.scroll(tail)
	}
	return true
}

// LastID returns the id of the tail entry seen by the previous Observe.
func (f *Follower) LastID() string {
	return f.lastID
}
