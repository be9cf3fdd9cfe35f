package ui

import tea "github.com/charmbracelet/bubbletea"

// handleKey routes a key press. Order: quit, open overlay, focused header
// input, a screen capturing text, keybinds, focus keys, then the focused panel.
func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.Overlays.Len() > 0 {
		cmd, _ := m.Overlays.UpdateTop(msg)
		return cmd
	}
	if m.Header.Focused() {
		_, cmd := m.Header.Update(msg)
		return cmd
	}
	if m.Focus.Is(FocusContent) && m.Content != nil && m.Content.Capturing() {
		return m.updateContent(msg)
	}

	if consumed, cmd := m.KeyHandler.Handle(msg, m.Mode()); consumed {
		return cmd
	}

	switch msg.String() {
	case "tab":
		m.Focus.Next()
		return nil
	case "shift+tab":
		m.Focus.Prev()
		return nil
	case "backspace":
		return m.back()
	}

	if m.Focus.Is(FocusSidebar) {
		_, cmd := m.Sidebar.Update(msg)
		return cmd
	}
	return m.updateContent(msg)
}
