package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Sidebar lists the routes and highlights the one being shown. The cursor is
// independent of the highlight until enter navigates to it.
type Sidebar struct {
	Routes  []Route
	Current string // path of the route in the content panel
	Cursor  int
	Focused bool
	height  int
}

var _ View = (*Sidebar)(nil)

// NewSidebar creates a sidebar over routes.
func NewSidebar(routes []Route) *Sidebar {
	return &Sidebar{Routes: routes}
}

// SetCurrent highlights path and moves the cursor onto it.
func (s *Sidebar) SetCurrent(path string) {
	s.Current = path
	for i, r := range s.Routes {
		if r.Path == path {
			s.Cursor = i
			return
		}
	}
}

// Init implements View.
func (s *Sidebar) Init() tea.Cmd { return nil }

// Update implements View.
func (s *Sidebar) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if s.Cursor < len(s.Routes)-1 {
				s.Cursor++
			}
		case "k", "up":
			if s.Cursor > 0 {
				s.Cursor--
			}
		case "g", "home":
			s.Cursor = 0
		case "G", "end":
			s.Cursor = max(len(s.Routes)-1, 0)
		case "enter":
			if s.Cursor < len(s.Routes) {
				path := s.Routes[s.Cursor].Path
				return s, func() tea.Msg { return NavigateMsg{Path: path} }
			}
		}
	}
	return s, nil
}

// View implements View.
func (s *Sidebar) View() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Navigation") + "\n\n")
	for i, r := range s.Routes {
		cursor := "  "
		if s.Focused && i == s.Cursor {
			cursor = Styles.Selected.Render("▸ ")
		}
		label := Styles.Normal.Render(r.Label)
		if r.Path == s.Current {
			label = Styles.Active.Render(r.Label)
		}
		b.WriteString(cursor + label + "\n")
	}
	return b.String()
}
