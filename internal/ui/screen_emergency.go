package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/clinic"
	"medcare/internal/ui/textutil"
)

var incidentColumns = []int{8, 15, 19, 15, 9}

// EmergencyScreen is the emergency response board: alert bar, queue,
// quick-response protocols and the broadcast selectors.
type EmergencyScreen struct {
	fx        *clinic.Fixtures
	cursor    int // protocol cursor
	protocol  string
	team      int
	priority  int
	broadcast *BroadcastSentMsg // last confirmed broadcast
}

var _ View = (*EmergencyScreen)(nil)

// NewEmergencyScreen creates the emergency board.
func NewEmergencyScreen(f *clinic.Fixtures) *EmergencyScreen {
	return &EmergencyScreen{fx: f}
}

// Protocol returns the activated protocol, "" if none.
func (s *EmergencyScreen) Protocol() string { return s.protocol }

// Team returns the selected broadcast audience.
func (s *EmergencyScreen) Team() string { return pick(s.fx.Teams, s.team) }

// Priority returns the selected broadcast priority.
func (s *EmergencyScreen) Priority() string { return pick(s.fx.Priorities, s.priority) }

// LastBroadcast returns the most recent confirmed broadcast.
func (s *EmergencyScreen) LastBroadcast() (BroadcastSentMsg, bool) {
	if s.broadcast == nil {
		return BroadcastSentMsg{}, false
	}
	return *s.broadcast, true
}

func pick(options []string, i int) string {
	if i < 0 || i >= len(options) {
		return ""
	}
	return options[i]
}

// Init implements View.
func (s *EmergencyScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *EmergencyScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case BroadcastSentMsg:
		s.broadcast = &msg
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			s.protocol = pick(s.fx.Protocols, s.cursor)
		case "t":
			s.team = cycle(s.team, 1, len(s.fx.Teams))
		case "p":
			s.priority = cycle(s.priority, 1, len(s.fx.Priorities))
		case "b":
			team, priority := s.Team(), s.Priority()
			return s, func() tea.Msg { return ShowBroadcastConfirmMsg{Team: team, Priority: priority} }
		default:
			s.cursor, _ = moveCursor(msg.String(), s.cursor, len(s.fx.Protocols))
		}
	}
	return s, nil
}

// View implements View.
func (s *EmergencyScreen) View() string {
	var b strings.Builder
	active, pending, critical := s.fx.IncidentCounts()
	bar := fmt.Sprintf("⚠ CRITICAL ALERTS   Active: %d   Pending: %d   Critical: %d", active, pending, critical)
	b.WriteString(Styles.AlertBar.Render(bar) + "\n")
	if latest, ok := s.fx.LatestIncident(); ok {
		b.WriteString(ToneStyle(clinic.ToneDanger).Render(
			fmt.Sprintf("Latest: %s · %s · %s", latest.Type, latest.Location, latest.Time)) + "\n")
	}
	b.WriteString("\n")

	var queue strings.Builder
	queue.WriteString(Styles.Muted.Render(textutil.Row(incidentColumns, "Time", "Type", "Location", "Patient", "Team", "Status")) + "\n")
	for _, in := range s.fx.Incidents {
		patient := "-"
		if in.Patient != nil {
			patient = in.Patient.Name
		}
		queue.WriteString(textutil.Row(incidentColumns, in.Time, in.Type, in.Location, patient, in.ResponseTeam) +
			"  " + Badge(string(in.Status), in.Status.Tone()))
		if in.ETA != "" {
			queue.WriteString(Styles.Muted.Render("  ETA " + in.ETA))
		}
		queue.WriteString("\n")
	}
	if len(s.fx.Incidents) == 0 {
		queue.WriteString(Styles.Empty.Render("Queue is clear") + "\n")
	}

	var protocols strings.Builder
	for i, p := range s.fx.Protocols {
		marker := "  "
		if i == s.cursor {
			marker = Styles.Selected.Render("▸ ")
		}
		label := Styles.Normal.Render(p)
		if p == s.protocol {
			label = ToneStyle(clinic.ToneDanger).Bold(true).Render(p)
		}
		protocols.WriteString(marker + label + "\n")
	}

	b.WriteString(joinColumns(
		section("Emergency Queue", queue.String()),
		Styles.BoxCompact.Render(section("Quick Response", protocols.String())),
	) + "\n")

	comm := fmt.Sprintf("%s %s   %s %s   %s",
		Styles.Muted.Render("Team:"), Styles.Active.Render(s.Team()),
		Styles.Muted.Render("Priority:"), Styles.Active.Render(s.Priority()),
		ToneStyle(clinic.ToneDanger).Render("[ Broadcast ]"))
	if s.broadcast != nil {
		comm += "\n" + Styles.Up.Render(fmt.Sprintf("Broadcast sent to %s (%s)", s.broadcast.Team, s.broadcast.Priority))
	}
	b.WriteString(section("Emergency Communication", comm) + "\n\n")
	b.WriteString(hints("j/k", "move", "enter", "activate protocol", "t", "team", "p", "priority", "b", "broadcast"))
	return b.String()
}
