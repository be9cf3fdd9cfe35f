package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(h, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	hm := help.New()
	hm.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	hm.Styles.ShortDesc = Styles.Muted
	hm.Styles.ShortSeparator = Styles.Muted

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Muted.Render(h.Sequence()) + " " + hm.ShortHelpView(bindings))
}

// HelpOverlay lists every binding for the current mode. Esc or ? closes it.
type HelpOverlay struct {
	Registry *KeybindRegistry
	Mode     AppMode
	extra    [][2]string
}

var _ View = (*HelpOverlay)(nil)

// NewHelpOverlay creates the full keybinding reference.
func NewHelpOverlay(reg *KeybindRegistry, mode AppMode) *HelpOverlay {
	return &HelpOverlay{
		Registry: reg,
		Mode:     mode,
		extra: [][2]string{
			{"tab", "Switch sidebar/content focus"},
			{"j/k", "Move"},
			{"enter", "Open / Try again"},
			{"backspace", "Back"},
		},
	}
}

// Init implements View.
func (o *HelpOverlay) Init() tea.Cmd { return nil }

// Update implements View.
func (o *HelpOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "?", "q":
			return o, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return o, nil
}

// View implements View.
func (o *HelpOverlay) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Keybindings") + "\n\n")
	for _, kb := range o.Registry.All(o.Mode) {
		h := kb.Help()
		b.WriteString(Styles.Selected.Render(padKey(h.Key)) + Styles.Normal.Render(h.Desc) + "\n")
	}
	for _, e := range o.extra {
		b.WriteString(Styles.Selected.Render(padKey(e[0])) + Styles.Normal.Render(e[1]) + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("esc: close"))
	return Styles.Box.Render(b.String())
}

func padKey(k string) string {
	const w = 12
	if len(k) >= w {
		return k + " "
	}
	return k + strings.Repeat(" ", w-len(k))
}
