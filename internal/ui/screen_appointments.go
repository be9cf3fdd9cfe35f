package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/clinic"
	"medcare/internal/ui/textutil"
)

var appointmentColumns = []int{19, 16, 13, 8, 10}

// AppointmentsScreen lists today's appointments with a status filter.
type AppointmentsScreen struct {
	fx      *clinic.Fixtures
	filters []clinic.AppointmentStatus // "" first, meaning all
	filter  int
	cursor  int
}

var _ View = (*AppointmentsScreen)(nil)

// NewAppointmentsScreen creates the appointments screen.
func NewAppointmentsScreen(f *clinic.Fixtures) *AppointmentsScreen {
	return &AppointmentsScreen{
		fx:      f,
		filters: append([]clinic.AppointmentStatus{""}, clinic.AppointmentStatuses()...),
	}
}

// Filter returns the active status filter, "" for all.
func (s *AppointmentsScreen) Filter() clinic.AppointmentStatus { return s.filters[s.filter] }

// Visible returns the appointments passing the filter.
func (s *AppointmentsScreen) Visible() []clinic.Appointment {
	return s.fx.FilterAppointments(s.Filter())
}

// Init implements View.
func (s *AppointmentsScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *AppointmentsScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "f":
		s.filter = cycle(s.filter, 1, len(s.filters))
	case "F":
		s.filter = cycle(s.filter, -1, len(s.filters))
	default:
		s.cursor, _ = moveCursor(k.String(), s.cursor, len(s.Visible()))
		return s, nil
	}
	s.cursor = clampCursor(s.cursor, len(s.Visible()))
	return s, nil
}

// View implements View.
func (s *AppointmentsScreen) View() string {
	labels := make([]string, len(s.filters))
	for i, f := range s.filters {
		labels[i] = string(f)
		if f == "" {
			labels[i] = "All"
		}
	}

	visible := s.Visible()
	var b strings.Builder
	b.WriteString(heading("Appointments", "Today") + "\n\n")
	b.WriteString(tabs(labels, s.filter) + "\n\n")
	b.WriteString(Styles.Muted.Render(textutil.Row(appointmentColumns, "Time", "Patient", "Type", "Room", "Provider", "Status")) + "\n")
	for i, a := range visible {
		row := textutil.Row(appointmentColumns,
			a.Start+" - "+a.End, a.Patient.Name, a.Type, a.Room.Number, a.Provider)
		marker := "  "
		if i == s.cursor {
			marker = Styles.Selected.Render("▸ ")
			row = Styles.Selected.Render(row)
		}
		b.WriteString(marker + row + "  " + Badge(string(a.Status), a.Status.Tone()) + "\n")
	}
	if len(visible) == 0 {
		b.WriteString(Styles.Empty.Render("No appointments match this filter") + "\n")
	} else {
		a := visible[clampCursor(s.cursor, len(visible))]
		detail := "Patient ID: " + a.Patient.ID
		if a.Patient.Contact != "" {
			detail += "  Contact: " + a.Patient.Contact
		}
		if a.Notes != "" {
			detail += "\nNotes: " + a.Notes
		}
		if len(a.Equipment) > 0 {
			detail += "\nEquipment: " + strings.Join(a.Equipment, ", ")
		}
		b.WriteString("\n" + Styles.BoxCompact.Render(detail) + "\n")
	}
	b.WriteString("\n" + hints("j/k", "move", "f/F", "filter"))
	return b.String()
}
