package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Panel IDs.
const (
	PanelHeader  = "header"
	PanelSidebar = FocusSidebar
	PanelContent = FocusContent
)

const (
	headerHeight = 3
	sidebarWidth = 24
	statusHeight = 1
)

// ShellLayout is the dashboard frame: header across the top, sidebar on the
// left, content filling the rest, one status line at the bottom.
type ShellLayout struct {
	Header  View
	Sidebar View
	Content View
}

var _ Layout = ShellLayout{}

// Panels implements Layout.
func (l ShellLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelHeader, View: l.Header, Fill: true, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, w, headerHeight
		}},
		{ID: PanelSidebar, View: l.Sidebar, Fill: true, Bounds: func(w, h int) (int, int, int, int) {
			return 0, headerHeight, sidebarWidth, max(h-headerHeight-statusHeight, 0)
		}},
		{ID: PanelContent, View: l.Content, Bounds: func(w, h int) (int, int, int, int) {
			return sidebarWidth, headerHeight, max(w-sidebarWidth, 0), max(h-headerHeight-statusHeight, 0)
		}},
	}
}

// FocusOrder implements Layout.
func (l ShellLayout) FocusOrder() []string {
	return []string{PanelSidebar, PanelContent}
}

// PanelSize returns the size message a panel's view should receive for a
// terminal of width x height.
func PanelSize(l Layout, id string, width, height int) (tea.WindowSizeMsg, bool) {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p.Size(width, height), true
		}
	}
	return tea.WindowSizeMsg{}, false
}

// Render draws the panels in place: header, then sidebar and content side by
// side. status is called after the panels have rendered.
func (l ShellLayout) Render(width, height int, status func() string) string {
	panels := l.Panels()
	header := panels[0].Render(width, height)
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels[1].Render(width, height), panels[2].Render(width, height))
	line := ""
	if status != nil {
		line = status()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, line)
}
