// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package display

import (
	"github.com/ManuGH/lifeordeath/internal/cell"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one rendered entry.
type Row struct {
	ID       string
	Kind     cell.Kind
	Title    string
	Subtitle string
	Icon     string
}

var icons = map[cell.Kind]string{
	cell.KindDead:   "skull",
	cell.KindLive:   "boom",
	cell.KindMarker: "live",
}

// Icon returns the icon name drawn next to entries of kind k.
func Icon(k cell.Kind) string {
	if icon, ok := icons[k]; ok {
		return icon
	}
	return "unknown"
}

// Presenter maps entries to localized rows.
type Presenter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPresenter resolves locale against cat and binds a printer to it.
func NewPresenter(cat *Catalog, locale string) (*Presenter, error) {
	tag, err := cat.Match(locale)
	if err != nil {
		return nil, err
	}
	return &Presenter{tag: tag, printer: cat.Printer(tag)}, nil
}

// Locale returns the resolved locale tag.
func (p *Presenter) Locale() language.Tag {
	return p.tag
}

// Title returns the screen header.
func (p *Presenter) Title() string {
	return p.printer.Sprintf(KeyScreenTitle)
}

// Button returns the caption of the trigger button.
func (p *Presenter) Button() string {
	return p.printer.Sprintf(KeyScreenButton)
}

// Row renders a single entry.
func (p *Presenter) Row(e cell.Entry) Row {
	prefix := "cell." + e.Kind.String()
	return Row{
		ID:       e.ID,
		Kind:     e.Kind,
		Title:    p.printer.Sprintf(prefix + ".title"),
		Subtitle: p.printer.Sprintf(prefix + ".subtitle"),
		Icon:     Icon(e.Kind),
	}
}

// Rows renders entries in order.
func (p *Presenter) Rows(entries []cell.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = p.Row(e)
	}
	return rows
}
