package boundary

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	retryLabel      = "Try again"
	recoveringLabel = "Recovering..."
)

// FallbackState is what a fallback renderer gets to draw with.
type FallbackState struct {
	Name       string
	Recovering bool // the retry action is disabled and relabeled
	Width      int
}

// Label returns the retry action's label for the current state.
func (s FallbackState) Label() string {
	if s.Recovering {
		return recoveringLabel
	}
	return retryLabel
}

var fallbackStyles = struct {
	box      lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
}{
	box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 4).
		Margin(1).
		Align(lipgloss.Center),
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
	muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("33")).
		Padding(0, 2),
	disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Background(lipgloss.Color("237")).
		Padding(0, 2),
}

// RenderFallback is the default fallback: a generic message and one action.
func RenderFallback(s FallbackState) string {
	button := fallbackStyles.button.Render(s.Label())
	hint := fallbackStyles.muted.Render("enter/r: " + retryLabel)
	if s.Recovering {
		button = fallbackStyles.disabled.Render(s.Label())
		hint = fallbackStyles.muted.Render(" ")
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		fallbackStyles.title.Render("Something went wrong"),
		fallbackStyles.muted.Render(s.Name),
		"",
		button,
		hint,
	)
	box := fallbackStyles.box
	if s.Width > 8 {
		box = box.Width(s.Width - 4)
	}
	return box.Render(body)
}
