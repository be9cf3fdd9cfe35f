package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BoundsFunc places a panel in a terminal of the given size and returns
// x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a fixed region of the dashboard frame. View may be nil while the
// region is empty (the content panel before the first navigation).
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
	// Fill pads the rendered view out to the full panel width.
	Fill bool
}

// Size returns the size message the panel's view should get.
func (p Panel) Size(width, height int) tea.WindowSizeMsg {
	_, _, w, h := p.Bounds(width, height)
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// Render draws the view clipped to the panel's bounds.
func (p Panel) Render(width, height int) string {
	if p.View == nil {
		return ""
	}
	size := p.Size(width, height)
	s := lipgloss.NewStyle().MaxWidth(size.Width)
	if size.Height > 0 {
		s = s.MaxHeight(size.Height)
	}
	if p.Fill {
		s = s.Width(size.Width)
	}
	return s.Render(p.View.View())
}
