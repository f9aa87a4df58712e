// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/lifeordeath/internal/cell"
)

const (
	clearScreen = "\x1b[H\x1b[2J"

	// DefaultWindow is the number of rows visible at once.
	DefaultWindow = 8
)

// Terminal draws the screen as plain text lines.
type Terminal struct {
	out       io.Writer
	presenter *Presenter
	window    int
	clear     bool
	anchor    string
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithWindow sets how many rows are visible. Values below 1 are ignored.
func WithWindow(n int) TerminalOption {
	return func(t *Terminal) {
		if n > 0 {
			t.window = n
		}
	}
}

// WithClear makes Draw clear the terminal before writing.
func WithClear(clear bool) TerminalOption {
	return func(t *Terminal) {
		t.clear = clear
	}
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer, p *Presenter, opts ...TerminalOption) *Terminal {
	t := &Terminal{out: out, presenter: p, window: DefaultWindow}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ScrollTo anchors the visible window so that the entry with id is the
// bottom row. Unknown ids anchor to the newest entry.
func (t *Terminal) ScrollTo(id string) {
	t.anchor = id
}

// Lines renders the screen for entries without writing it.
func (t *Terminal) Lines(entries []cell.Entry) []string {
	lines := make([]string, 0, t.window+4)
	lines = append(lines, fmt.Sprintf("== %s ==", t.presenter.Title()))

	end := len(entries)
	if t.anchor != "" {
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].ID == t.anchor {
				end = i + 1
				break
			}
		}
	}
	start := end - t.window
	if start < 0 {
		start = 0
	}

	if start > 0 {
		lines = append(lines, fmt.Sprintf("   ... %d earlier", start))
	}
	for _, row := range t.presenter.Rows(entries[start:end]) {
		lines = append(lines, FormatRow(row))
	}
	if later := len(entries) - end; later > 0 {
		lines = append(lines, fmt.Sprintf("   ... %d later", later))
	}

	lines = append(lines, fmt.Sprintf("[ %s ]", t.presenter.Button()))
	return lines
}

// Draw writes the rendered screen to the terminal.
func (t *Terminal) Draw(entries []cell.Entry) error {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}
	for _, line := range t.Lines(entries) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("draw screen: %w", err)
	}
	return nil
}

// FormatRow renders a row as "(icon) Title: subtitle".
func FormatRow(r Row) string {
	return fmt.Sprintf(" (%s) %s: %s", r.Icon, r.Title, r.Subtitle)
}
