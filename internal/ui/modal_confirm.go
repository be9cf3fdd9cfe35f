package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question before an action with side effects.
// y or Enter emits OnConfirm's message; n or Esc dismisses.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // warning line under the label, optional
	OnConfirm func() tea.Msg
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal builds a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails sets the warning line.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewBroadcastConfirmModal asks before alerting the chosen response team.
func NewBroadcastConfirmModal(team, priority string) *ConfirmModal {
	return NewConfirmModal(
		"Broadcast emergency alert?",
		fmt.Sprintf("To: %s\nPriority: %s", team, priority),
		func() tea.Msg { return BroadcastSentMsg{Team: team, Priority: priority} },
	).WithDetails("Every pager on the selected team will sound")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "n":
		return m, send(DismissModalMsg{})
	case "enter", "y":
		return m, m.OnConfirm
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	parts := []string{Styles.TitleWarning.Render(m.Title), Styles.Label.Render(m.Label)}
	if m.Details != "" {
		parts = append(parts, Styles.Details.Render(m.Details))
	}
	parts = append(parts, Styles.Hint.Render("y/Enter: confirm  n/Esc: cancel"))
	return Styles.BoxDanger.Render(strings.Join(parts, "\n\n"))
}
