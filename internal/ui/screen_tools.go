package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/clinic"
)

// calculatorDelay is how long a calculator shows its loading spinner.
const calculatorDelay = 400 * time.Millisecond

// calculatorReadyMsg ends a calculator's loading state.
type calculatorReadyMsg struct {
	name string
}

// ClinicalToolsScreen shows the bedside tool palette, recent clinical actions,
// medical calculators and active safety alerts.
type ClinicalToolsScreen struct {
	fx       *clinic.Fixtures
	cursor   int // calculator cursor
	active   string
	loading  bool
	spinner  spinner.Model
	calcWait time.Duration
}

var _ View = (*ClinicalToolsScreen)(nil)

// NewClinicalToolsScreen creates the clinical tools screen.
func NewClinicalToolsScreen(f *clinic.Fixtures) *ClinicalToolsScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	return &ClinicalToolsScreen{fx: f, spinner: s, calcWait: calculatorDelay}
}

// Calculator returns the opened calculator, "" while none is open or one is loading.
func (s *ClinicalToolsScreen) Calculator() string {
	if s.loading {
		return ""
	}
	return s.active
}

// Loading reports whether a calculator is being opened.
func (s *ClinicalToolsScreen) Loading() bool { return s.loading }

// Init implements View.
func (s *ClinicalToolsScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *ClinicalToolsScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case calculatorReadyMsg:
		if msg.name == s.active {
			s.loading = false
		}
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.cursor >= len(s.fx.Calculators) {
				return s, nil
			}
			name := s.fx.Calculators[s.cursor]
			s.active = name
			s.loading = true
			return s, tea.Batch(s.spinner.Tick, tea.Tick(s.calcWait, func(time.Time) tea.Msg {
				return calculatorReadyMsg{name: name}
			}))
		case "esc":
			s.active, s.loading = "", false
			return s, nil
		default:
			s.cursor, _ = moveCursor(msg.String(), s.cursor, len(s.fx.Calculators))
		}
	}
	return s, nil
}

// View implements View.
func (s *ClinicalToolsScreen) View() string {
	var b strings.Builder
	b.WriteString(heading("Clinical Tools", "") + "\n\n")

	buttons := make([]string, len(s.fx.Tools))
	for i, t := range s.fx.Tools {
		buttons[i] = Styles.BoxCompact.Render(t)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...) + "\n\n")

	var actions strings.Builder
	for _, a := range s.fx.Actions {
		actions.WriteString(fmt.Sprintf("%s  %s  %s\n", Styles.Muted.Render(a.Time),
			Styles.Normal.Render(a.Action), Badge(string(a.Status), a.Status.Tone())))
		detail := a.Patient.Name + " · " + a.Provider
		if a.Values != "" {
			detail += " · " + a.Values
		}
		actions.WriteString("   " + Styles.Muted.Render(detail) + "\n")
	}
	if len(s.fx.Actions) == 0 {
		actions.WriteString(Styles.Empty.Render("No recent actions") + "\n")
	}

	var calcs strings.Builder
	for i, c := range s.fx.Calculators {
		line := "  " + Styles.Normal.Render(c)
		if c == s.active {
			line = "  " + Styles.Active.Render(c)
		}
		if i == s.cursor {
			line = Styles.Selected.Render("▸ ") + line[2:]
		}
		calcs.WriteString(line + "\n")
	}
	switch {
	case s.loading:
		calcs.WriteString("\n" + s.spinner.View() + " Loading " + s.active + "...\n")
	case s.active != "":
		calcs.WriteString("\n" + Styles.Up.Render(s.active+" ready") + "\n")
	}

	b.WriteString(joinColumns(
		section("Recent Clinical Actions", actions.String()),
		Styles.BoxCompact.Render(section("Medical Calculators", calcs.String())),
	) + "\n")

	if len(s.fx.SafetyAlerts) > 0 {
		var alerts strings.Builder
		alerts.WriteString(ToneStyle(clinic.ToneCaution).Bold(true).Render("⚠ Active Safety Alerts"))
		for _, a := range s.fx.SafetyAlerts {
			alerts.WriteString("\n" + ToneStyle(clinic.ToneCaution).Render("• "+a))
		}
		b.WriteString(alerts.String() + "\n\n")
	}
	b.WriteString(hints("j/k", "move", "enter", "open calculator", "esc", "close"))
	return b.String()
}
