package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/clinic"
	"medcare/internal/ui/textutil"
)

var recordColumns = []int{5, 16, 12, 11, 12}

// RecordsScreen browses medical records by type tab, status and search text.
type RecordsScreen struct {
	fx       *clinic.Fixtures
	types    []string
	statuses []clinic.RecordStatus // "" first, meaning all
	tab      int
	status   int
	cursor   int
	search   searchField
}

var _ View = (*RecordsScreen)(nil)

// NewRecordsScreen creates the records screen, opened on the clinical notes tab.
func NewRecordsScreen(f *clinic.Fixtures) *RecordsScreen {
	return &RecordsScreen{
		fx:       f,
		types:    append([]string{"All Records"}, clinic.RecordTypes()...),
		statuses: append([]clinic.RecordStatus{""}, clinic.RecordStatuses()...),
		tab:      1,
		search:   newSearchField("Search records..."),
	}
}

// Filter returns the active record filter.
func (s *RecordsScreen) Filter() clinic.RecordFilter {
	rf := clinic.RecordFilter{Status: s.statuses[s.status], Query: s.search.value()}
	if s.tab > 0 {
		rf.Type = s.types[s.tab]
	}
	return rf
}

// Visible returns the records passing the filter.
func (s *RecordsScreen) Visible() []clinic.Record {
	return s.fx.FilterRecords(s.Filter())
}

// Capturing implements InputCapturer.
func (s *RecordsScreen) Capturing() bool { return s.search.active() }

// Init implements View.
func (s *RecordsScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *RecordsScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if s.search.active() {
		cmd, _ := s.search.update(msg)
		s.cursor = clampCursor(s.cursor, len(s.Visible()))
		return s, cmd
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "/":
		return s, s.search.focus()
	case "t", "right", "l":
		s.tab = cycle(s.tab, 1, len(s.types))
	case "T", "left", "h":
		s.tab = cycle(s.tab, -1, len(s.types))
	case "s":
		s.status = cycle(s.status, 1, len(s.statuses))
	default:
		s.cursor, _ = moveCursor(k.String(), s.cursor, len(s.Visible()))
		return s, nil
	}
	s.cursor = clampCursor(s.cursor, len(s.Visible()))
	return s, nil
}

// View implements View.
func (s *RecordsScreen) View() string {
	var b strings.Builder
	b.WriteString(heading("Medical Records", "") + "\n\n")
	b.WriteString(tabs(s.types, s.tab) + "\n\n")

	status := string(s.statuses[s.status])
	if status == "" {
		status = "All Statuses"
	}
	b.WriteString(Styles.Muted.Render("Status: ") + Styles.Active.Render(status) + "  " + s.search.view() + "\n\n")

	visible := s.Visible()
	b.WriteString(Styles.Muted.Render(textutil.Row(recordColumns, "ID", "Patient", "Category", "Date", "Access", "Status")) + "\n")
	for i, r := range visible {
		row := textutil.Row(recordColumns, r.ID, r.PatientName, r.Category, r.Date, r.AccessLevel)
		marker := "  "
		if i == s.cursor {
			marker = Styles.Selected.Render("▸ ")
			row = Styles.Selected.Render(row)
		}
		b.WriteString(marker + row + "  " + Badge(string(r.Status), r.Status.Tone()) + "\n")
	}
	if len(visible) == 0 {
		b.WriteString(Styles.Empty.Render("No records found") + "\n")
	} else {
		r := visible[clampCursor(s.cursor, len(visible))]
		detail := r.Type + " · " + r.PatientID + " · modified " + r.LastModified
		if len(r.Tags) > 0 {
			detail += "\nTags: " + strings.Join(r.Tags, ", ")
		}
		b.WriteString("\n" + Styles.BoxCompact.Render(detail) + "\n")
	}
	b.WriteString("\n" + hints("j/k", "move", "t/T", "type", "s", "status", "/", "search"))
	return b.String()
}
