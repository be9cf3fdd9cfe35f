package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/boundary"
	"medcare/internal/clinic"
)

const (
	defaultFailureLogWidth  = 72
	defaultFailureLogHeight = 16
)

// FailureLog lists the failures contained by screen boundaries this session,
// newest at the bottom. Shown as an overlay (SPC f l); Esc dismisses.
type FailureLog struct {
	entries  []boundary.Entry
	viewport viewport.Model
}

// Ensure FailureLog implements View.
var _ View = (*FailureLog)(nil)

// NewFailureLog creates the overlay from a snapshot of the journal.
func NewFailureLog(entries []boundary.Entry) *FailureLog {
	vp := viewport.New(defaultFailureLogWidth, defaultFailureLogHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1)
	l := &FailureLog{entries: entries, viewport: vp}
	l.refreshContent()
	return l
}

// Init implements View.
func (l *FailureLog) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (l *FailureLog) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return l, func() tea.Msg { return DismissModalMsg{} }
		case "g", "home":
			l.viewport.GotoTop()
			return l, nil
		case "G", "end":
			l.viewport.GotoBottom()
			return l, nil
		}
	case tea.WindowSizeMsg:
		l.viewport.Width = max(msg.Width-4, 40)
		l.viewport.Height = max(msg.Height/2+4, 12)
		l.refreshContent()
		return l, nil
	}

	// j/k and paging are handled by the viewport keymap.
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// View implements View.
func (l *FailureLog) View() string {
	header := Styles.TitleWarning.Render(fmt.Sprintf("Contained failures (%d)", len(l.entries))) +
		Styles.Hint.Render("  j/k: scroll  Esc: close")
	return header + "\n" + l.viewport.View()
}

// refreshContent rebuilds the viewport content from the entries.
func (l *FailureLog) refreshContent() {
	var lines []string
	for i, e := range l.entries {
		fc := e.Context
		head := fmt.Sprintf("[%s] %s %s %s",
			fc.At.Format("15:04:05"),
			ToneStyle(phaseTone(fc.Phase)).Render("✗"),
			Styles.Section.Render(fc.Boundary),
			Styles.Muted.Render(string(fc.Phase)))
		lines = append(lines, head)
		if fc.Attempt > 0 {
			lines = append(lines, fmt.Sprintf("      attempt: %d", fc.Attempt))
		}
		if fc.MsgType != "" {
			lines = append(lines, "      message: "+fc.MsgType)
		}
		lines = append(lines, "      id: "+fc.ID)
		lines = append(lines, "      "+Styles.Details.Render(firstLine(e.Err.Error())))
		if i < len(l.entries)-1 {
			lines = append(lines, "")
		}
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Empty.Render("No failures this session")
	}
	l.viewport.SetContent(content)
	l.viewport.GotoBottom()
}

func phaseTone(p boundary.Phase) clinic.Tone {
	if p == boundary.PhaseRetry {
		return clinic.ToneDanger
	}
	return clinic.ToneWarning
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
