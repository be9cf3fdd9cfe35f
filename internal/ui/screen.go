package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cycle steps i through n options, wrapping in both directions.
func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// moveCursor applies j/k style movement to a cursor over n rows.
func moveCursor(k string, cur, n int) (int, bool) {
	switch k {
	case "j", "down":
		if cur < n-1 {
			return cur + 1, true
		}
		return cur, true
	case "k", "up":
		if cur > 0 {
			return cur - 1, true
		}
		return cur, true
	}
	return cur, false
}

// clampCursor keeps cur inside a list that may have shrunk after filtering.
func clampCursor(cur, n int) int {
	if cur >= n {
		cur = n - 1
	}
	return max(cur, 0)
}

// tabs renders a row of options with the active one highlighted.
func tabs(options []string, active int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == active {
			parts[i] = Styles.Active.Render(" " + o + " ")
		} else {
			parts[i] = Styles.Muted.Render(" " + o + " ")
		}
	}
	return strings.Join(parts, " ")
}

// heading renders a screen title with an optional right-hand note.
func heading(title, note string) string {
	h := Styles.Title.Render(title)
	if note != "" {
		h += "  " + Styles.Muted.Render(note)
	}
	return h
}

// hints renders the key help line at the bottom of a screen.
func hints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+": "+pairs[i+1])
	}
	return Styles.Hint.Render(strings.Join(parts, "  "))
}

// section renders a titled block.
func section(title, body string) string {
	return Styles.Section.Render(title) + "\n" + body
}

// searchField is a screen-local search box toggled with /.
type searchField struct {
	input textinput.Model
}

func newSearchField(placeholder string) searchField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.Width = 30
	return searchField{input: ti}
}

func (s *searchField) active() bool { return s.input.Focused() }

func (s *searchField) value() string { return s.input.Value() }

func (s *searchField) focus() tea.Cmd { return s.input.Focus() }

// update feeds a key to the focused field. Enter keeps the query and leaves
// the field; esc clears it. changed reports whether the query may differ.
func (s *searchField) update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			s.input.Blur()
			return nil, false
		case "esc":
			s.input.Reset()
			s.input.Blur()
			return nil, true
		}
	}
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	return cmd, s.input.Value() != before
}

func (s *searchField) view() string {
	if !s.active() && s.value() == "" {
		return Styles.Muted.Render("/ search")
	}
	return s.input.View()
}

// joinColumns lays blocks side by side with a gap.
func joinColumns(blocks ...string) string {
	spaced := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
