package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/clinic"
)

// OverviewScreen is the dashboard landing page: greeting, headline numbers
// and the recent activity feed.
type OverviewScreen struct {
	fx    *clinic.Fixtures
	width int
}

var _ View = (*OverviewScreen)(nil)

// NewOverviewScreen creates the landing page.
func NewOverviewScreen(f *clinic.Fixtures) *OverviewScreen {
	return &OverviewScreen{fx: f}
}

// Init implements View.
func (s *OverviewScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *OverviewScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = m.Width
	}
	return s, nil
}

// View implements View.
func (s *OverviewScreen) View() string {
	var b strings.Builder
	b.WriteString(heading("Welcome back, "+s.fx.Clinician, "Here's what's happening today") + "\n\n")

	cards := make([]string, len(s.fx.Overview))
	for i, st := range s.fx.Overview {
		cards[i] = statCard(st)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	var feed strings.Builder
	for _, a := range s.fx.Activities {
		feed.WriteString(fmt.Sprintf("%s %s  %s\n",
			activityIcon(a.Kind),
			Styles.Normal.Render(a.Content),
			Styles.Muted.Render(a.Time)))
	}
	if len(s.fx.Activities) == 0 {
		feed.WriteString(Styles.Empty.Render("No recent activity") + "\n")
	}
	b.WriteString(section("Recent Activity", feed.String()))
	return b.String()
}

// statCard renders a headline number with its change against last period.
func statCard(st clinic.Stat) string {
	change := Styles.Muted.Render("– 0%")
	switch {
	case st.Change > 0:
		change = Styles.Up.Render(fmt.Sprintf("↑ %d%%", st.Change))
	case st.Change < 0:
		change = Styles.Down.Render(fmt.Sprintf("↓ %d%%", -st.Change))
	}
	if st.Period != "" {
		change += Styles.Muted.Render(" vs " + st.Period)
	}
	body := Styles.Muted.Render(st.Title) + "\n" +
		Styles.Title.Render(fmt.Sprint(st.Value)) + "\n" +
		change
	return Styles.BoxCompact.Width(22).Render(body)
}

func activityIcon(kind string) string {
	switch kind {
	case "appointment":
		return ToneStyle(clinic.ToneInfo).Render("◷")
	case "patient":
		return ToneStyle(clinic.ToneSuccess).Render("☺")
	case "record":
		return ToneStyle(clinic.ToneNeutral).Render("▤")
	case "message":
		return ToneStyle(clinic.ToneInfo).Render("✉")
	case "alert":
		return ToneStyle(clinic.ToneWarning).Render("⚠")
	default:
		return Styles.Muted.Render("•")
	}
}
