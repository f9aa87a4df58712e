// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package cell

// Kind tags an entry in the log.
type Kind uint8

const (
	KindDead Kind = iota
	KindLive
	KindMarker
)

var kindNames = [...]string{
	KindDead:   "dead",
	KindLive:   "live",
	KindMarker: "marker",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindDead, KindLive, KindMarker}
}

// Entry is one item of the log.
type Entry struct {
	ID   string
	Kind Kind
}
