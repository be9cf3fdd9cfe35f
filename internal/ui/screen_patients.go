package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/clinic"
)

// patientItem implements list.Item for clinic.Patient.
type patientItem struct {
	clinic.Patient
}

func (p patientItem) FilterValue() string { return p.Name }
func (p patientItem) Title() string {
	return fmt.Sprintf("%s  %s, %d  %s", p.ID, p.Name, p.Age, Badge(string(p.Status), p.Status.Tone()))
}
func (p patientItem) Description() string {
	desc := fmt.Sprintf("%s · last %s · next %s", p.Department, p.LastVisit, p.NextVisit)
	if len(p.Alerts) > 0 {
		desc += " · ⚠ " + strings.Join(p.Alerts, ", ")
	}
	return desc
}

// PatientsScreen is the patient overview: headline numbers, department and
// status filters, a name search and the filtered list.
type PatientsScreen struct {
	fx       *clinic.Fixtures
	list     list.Model
	search   searchField
	depts    []string               // "" first, meaning all
	statuses []clinic.PatientStatus // "" first, meaning all
	dept     int
	status   int
}

var _ View = (*PatientsScreen)(nil)

// NewPatientsScreen creates the patient overview.
func NewPatientsScreen(f *clinic.Fixtures) *PatientsScreen {
	l := list.New(nil, NewCompactListDelegate(), 80, 14)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := &PatientsScreen{
		fx:       f,
		list:     l,
		search:   newSearchField("Search patients..."),
		depts:    append([]string{""}, f.Departments...),
		statuses: append([]clinic.PatientStatus{""}, clinic.PatientStatuses()...),
	}
	s.refresh()
	return s
}

// Filter returns the active filter.
func (s *PatientsScreen) Filter() clinic.PatientFilter {
	return clinic.PatientFilter{
		Department: s.depts[s.dept],
		Status:     s.statuses[s.status],
		Query:      s.search.value(),
	}
}

// Visible returns the patients currently listed.
func (s *PatientsScreen) Visible() []clinic.Patient {
	items := s.list.Items()
	out := make([]clinic.Patient, len(items))
	for i, it := range items {
		out[i] = it.(patientItem).Patient
	}
	return out
}

// Selected returns the index of the highlighted patient.
func (s *PatientsScreen) Selected() int {
	return s.list.Index()
}

// Capturing implements InputCapturer.
func (s *PatientsScreen) Capturing() bool { return s.search.active() }

func (s *PatientsScreen) refresh() tea.Cmd {
	patients := s.fx.FilterPatients(s.Filter())
	items := make([]list.Item, len(patients))
	for i, p := range patients {
		items[i] = patientItem{Patient: p}
	}
	return s.list.SetItems(items)
}

// Init implements View.
func (s *PatientsScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *PatientsScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if s.search.active() {
		cmd, changed := s.search.update(msg)
		if changed {
			return s, tea.Batch(cmd, s.refresh())
		}
		return s, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.list.SetWidth(msg.Width)
		s.list.SetHeight(max(msg.Height-10, 4)) // stats, filters and hint
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			return s, s.search.focus()
		case "d":
			s.dept = cycle(s.dept, 1, len(s.depts))
			return s, s.refresh()
		case "s":
			s.status = cycle(s.status, 1, len(s.statuses))
			return s, s.refresh()
		case "x":
			s.dept, s.status = 0, 0
			s.search.input.Reset()
			return s, s.refresh()
		}
	}

	// The list handles j/k/g/G and paging natively.
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View implements View.
func (s *PatientsScreen) View() string {
	var b strings.Builder
	b.WriteString(heading("Patient Overview", fmt.Sprintf("%d patients", len(s.fx.Patients))) + "\n\n")

	stats := make([]string, len(s.fx.PatientStats))
	for i, st := range s.fx.PatientStats {
		stats[i] = statCard(st)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...) + "\n")

	f := s.Filter()
	dept, status := f.Department, string(f.Status)
	if dept == "" {
		dept = "All Departments"
	}
	if status == "" {
		status = "All Statuses"
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s\n\n",
		Styles.Muted.Render("Department:"), Styles.Active.Render(dept),
		Styles.Muted.Render("Status:"), Styles.Active.Render(status),
		s.search.view()))

	if len(s.list.Items()) == 0 {
		b.WriteString(Styles.Empty.Render("No patients match the current filters") + "\n")
	} else {
		b.WriteString(s.list.View() + "\n")
	}
	b.WriteString(hints("j/k", "move", "d", "department", "s", "status", "/", "search", "x", "clear"))
	return b.String()
}
