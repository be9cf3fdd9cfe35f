package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"medcare/internal/boundary"
)

// navigate mounts a fresh screen for path in the content panel. Navigating to
// the route already shown only moves focus to it.
func (m *AppModel) navigate(path string, push bool) tea.Cmd {
	r, ok := FindRoute(m.Routes, path)
	if !ok {
		m.status = fmt.Sprintf("No screen at %s", path)
		m.logger.Warn("unknown route", zap.String("path", path))
		return nil
	}
	m.Focus.SetFocus(FocusContent)
	if m.Content != nil && m.Sidebar.Current == r.Path {
		return nil
	}
	if push {
		m.History.Push(r.Path)
	}
	m.Sidebar.SetCurrent(r.Path)
	m.Content = m.mount(r)
	m.logger.Debug("navigate", zap.String("path", r.Path), zap.Int("history", m.History.Len()))

	var cmds []tea.Cmd
	if m.width > 0 || m.height > 0 {
		if size, ok := PanelSize(m.layout(), PanelContent, m.width, m.height); ok {
			_, cmd := m.Content.Update(size)
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.Content.Init())
	return tea.Batch(cmds...)
}

// mount guards the route's screen. The builder runs again on every retry.
func (m *AppModel) mount(r Route) *GuardedView {
	fx, faults, path := m.Fixtures, m.Faults, r.Path
	return Guard(r.Label, func() (View, error) {
		return withFault(r.Build(fx), path, faults), nil
	}, m.guardOpts...)
}

// back returns to the previous route.
func (m *AppModel) back() tea.Cmd {
	path := m.History.Back()
	if path == "" {
		m.status = "No previous screen"
		return nil
	}
	m.status = ""
	return m.navigate(path, false)
}

// quickAccess jumps to the first route matching the header search.
func (m *AppModel) quickAccess(query string) tea.Cmd {
	r, ok := MatchRoute(m.Routes, query)
	if !ok {
		m.status = fmt.Sprintf("No screen matches %q", query)
		return nil
	}
	m.status = ""
	return m.navigate(r.Path, true)
}

// toggleFault arms or disarms the render fault on the current route. An armed
// screen fails on its next render; disarming lets the next retry succeed.
func (m *AppModel) toggleFault() {
	path := m.CurrentRoute()
	if path == "" {
		return
	}
	if m.Faults.Toggle(path) {
		m.status = "Fault armed on " + path
	} else {
		m.status = "Fault cleared on " + path
	}
	m.logger.Info("fault drill toggled", zap.String("path", path), zap.Bool("armed", m.Faults.Armed(path)))
}

// handleRecover delivers a pending retry to the mounted screen's boundary.
// A retry for a screen that was navigated away from is dropped with it.
func (m *AppModel) handleRecover(msg boundary.RecoverMsg) tea.Cmd {
	if m.Content == nil || msg.Target() != m.Content.Boundary() {
		m.logger.Debug("dropping recovery for unmounted screen")
		return nil
	}
	return m.updateContent(msg)
}

// resize sends each panel its share of the terminal.
func (m *AppModel) resize() tea.Cmd {
	l := m.layout()
	var cmds []tea.Cmd
	for _, p := range l.Panels() {
		if p.View == nil {
			continue
		}
		size, _ := PanelSize(l, p.ID, m.width, m.height)
		_, cmd := p.View.Update(size)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) updateContent(msg tea.Msg) tea.Cmd {
	if m.Content == nil {
		return nil
	}
	_, cmd := m.Content.Update(msg)
	return cmd
}
