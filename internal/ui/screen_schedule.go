package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/clinic"
)

// ScheduleView is the schedule's zoom level.
type ScheduleView int

const (
	ScheduleDay ScheduleView = iota
	ScheduleWeek
	ScheduleMonth
)

var scheduleViews = []string{"Day", "Week", "Month"}

func (v ScheduleView) String() string {
	if int(v) < len(scheduleViews) {
		return scheduleViews[v]
	}
	return "Unknown"
}

// ScheduleScreen is the doctor's schedule with a Day/Week/Month toggle.
type ScheduleScreen struct {
	fx     *clinic.Fixtures
	view   ScheduleView
	cursor int
}

var _ View = (*ScheduleScreen)(nil)

// NewScheduleScreen creates the schedule, opened on the day view.
func NewScheduleScreen(f *clinic.Fixtures) *ScheduleScreen {
	return &ScheduleScreen{fx: f}
}

// Mode returns the active zoom level.
func (s *ScheduleScreen) Mode() ScheduleView { return s.view }

// Next returns the first appointment still to come.
func (s *ScheduleScreen) Next() (clinic.Appointment, bool) {
	for _, a := range s.fx.Appointments {
		switch a.Status {
		case "Completed", "Cancelled", "No Show", "In Progress":
			continue
		}
		return a, true
	}
	return clinic.Appointment{}, false
}

// Init implements View.
func (s *ScheduleScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *ScheduleScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "v":
		s.view = ScheduleView(cycle(int(s.view), 1, len(scheduleViews)))
	case "V":
		s.view = ScheduleView(cycle(int(s.view), -1, len(scheduleViews)))
	case "1", "2", "3":
		s.view = ScheduleView(k.String()[0] - '1')
	default:
		s.cursor, _ = moveCursor(k.String(), s.cursor, len(s.fx.Appointments))
	}
	return s, nil
}

// View implements View.
func (s *ScheduleScreen) View() string {
	var b strings.Builder
	b.WriteString(heading("Schedule Overview", "") + "  " +
		Styles.Up.Render(fmt.Sprintf("Available: %dhrs", s.fx.Schedule.AvailableHours)) + "  " +
		ToneStyle(clinic.ToneInfo).Render(fmt.Sprintf("Booked: %dhrs", s.fx.Schedule.BookedHours)) + "\n")
	if next, ok := s.Next(); ok {
		b.WriteString(Styles.Muted.Render("Next: "+next.Patient.Name+" - "+next.Start) + "\n")
	}
	b.WriteString("\n" + tabs(scheduleViews, int(s.view)) + "\n\n")

	switch s.view {
	case ScheduleDay:
		b.WriteString(s.dayView())
	case ScheduleWeek:
		b.WriteString(s.weekView())
	default:
		b.WriteString(s.monthView())
	}
	b.WriteString("\n" + hints("v/V", "view", "1-3", "day/week/month", "j/k", "move"))
	return b.String()
}

func (s *ScheduleScreen) dayView() string {
	if len(s.fx.Appointments) == 0 {
		return Styles.Empty.Render("Nothing scheduled") + "\n"
	}
	var b strings.Builder
	for i, a := range s.fx.Appointments {
		slot := a.Status.Slot()
		title := a.Start + " - " + a.End + "  " + a.Patient.Name + "  " + Styles.Muted.Render(a.Type)
		if i == s.cursor {
			title = Styles.Selected.Render("▸ ") + title
		} else {
			title = "  " + title
		}
		b.WriteString(title + "  " + Badge(string(slot), slot.Tone()) + "\n")
		b.WriteString("    " + Styles.Muted.Render(roomLabel(a.Room)) + "\n")
		if a.Notes != "" {
			b.WriteString("    " + Styles.Normal.Render(a.Notes) + "\n")
		}
		if len(a.Equipment) > 0 {
			b.WriteString("    " + Styles.Details.Render("Equipment: "+strings.Join(a.Equipment, ", ")) + "\n")
		}
	}
	return b.String()
}

func (s *ScheduleScreen) weekView() string {
	var b strings.Builder
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	for i, d := range days {
		line := Styles.Section.Render(d) + "  "
		if i == 0 {
			line += fmt.Sprintf("%d appointments", len(s.fx.Appointments))
		} else {
			line += Styles.Muted.Render("open")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (s *ScheduleScreen) monthView() string {
	counts := make(map[clinic.SlotStatus]int)
	for _, a := range s.fx.Appointments {
		counts[a.Status.Slot()]++
	}
	var b strings.Builder
	b.WriteString(Styles.Section.Render("This month") + "\n")
	for _, slot := range []clinic.SlotStatus{"Booked", "In Progress"} {
		b.WriteString(fmt.Sprintf("  %s %d\n", Badge(string(slot), slot.Tone()), counts[slot]))
	}
	return b.String()
}

func roomLabel(r clinic.Room) string {
	parts := []string{"Room " + r.Number}
	if r.Floor != "" {
		parts = append(parts, r.Floor+" floor")
	}
	if r.Wing != "" {
		parts = append(parts, r.Wing+" wing")
	}
	return strings.Join(parts, ", ")
}
