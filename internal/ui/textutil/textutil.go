// Package textutil provides unicode-aware text helpers for laying out table
// rows in the terminal.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Cell fits s into exactly width columns: truncated when too long, padded on
// the right with spaces when too short.
func Cell(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Row joins cells fitted to widths with a two-space gutter. Extra cells are
// appended unfitted; missing cells render blank.
func Row(widths []int, cells ...string) string {
	parts := make([]string, 0, max(len(widths), len(cells)))
	for i, w := range widths {
		c := ""
		if i < len(cells) {
			c = cells[i]
		}
		parts = append(parts, Cell(c, w))
	}
	if len(cells) > len(widths) {
		parts = append(parts, cells[len(widths):]...)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// Initial returns the first letter of name, used as an avatar.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
