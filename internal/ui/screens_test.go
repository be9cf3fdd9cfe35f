package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcare/internal/boundary"
	"medcare/internal/clinic"
)

func fixtures(t *testing.T) *clinic.Fixtures {
	t.Helper()
	fx, err := clinic.Default()
	require.NoError(t, err)
	return fx
}

func TestRoutes_EveryScreenRenders(t *testing.T) {
	fx := fixtures(t)
	for _, r := range Routes() {
		t.Run(r.Label, func(t *testing.T) {
			v := r.Build(fx)
			require.NotNil(t, v)
			v.Init()
			v, _ = v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			assert.NotEmpty(t, v.View())
		})
	}
}

func TestRoutes_KeysAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, r := range Routes() {
		if prev, ok := seen[r.Key]; ok {
			t.Fatalf("key %q used by %s and %s", r.Key, prev, r.Path)
		}
		seen[r.Key] = r.Path
	}
}

func TestMatchRoute(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"patients", "/patients", true},
		{"  EMERG ", "/emergency", true},
		{"records", "/records", true},
		{"clinical-tools", "/clinical-tools", true},
		{"billing", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r, ok := MatchRoute(Routes(), tt.query)
		assert.Equal(t, tt.ok, ok, tt.query)
		assert.Equal(t, tt.want, r.Path, tt.query)
	}
}

func TestOverviewScreen(t *testing.T) {
	s := NewOverviewScreen(fixtures(t))
	out := s.View()
	assert.Contains(t, out, "Welcome back, Dr. Smith")
	assert.Contains(t, out, "Appointments Today")
	assert.Contains(t, out, "↑ 20%")
	assert.Contains(t, out, "↓ 10%")
	assert.Contains(t, out, "Recent Activity")
	assert.Contains(t, out, "System maintenance scheduled for tonight")
}

func TestAppointmentsScreen_FilterCycles(t *testing.T) {
	s := NewAppointmentsScreen(fixtures(t))
	assert.Len(t, s.Visible(), 4)
	assert.Equal(t, clinic.AppointmentStatus(""), s.Filter())

	s.Update(keyMsg("f"))
	assert.Equal(t, clinic.AppointmentStatus("Scheduled"), s.Filter())
	assert.Empty(t, s.Visible())
	assert.Contains(t, s.View(), "No appointments match")

	s.Update(keyMsg("f"))
	assert.Equal(t, clinic.AppointmentStatus("Confirmed"), s.Filter())
	require.Len(t, s.Visible(), 1)
	assert.Contains(t, s.View(), "Post-surgery check")

	s.Update(keyMsg("F"))
	s.Update(keyMsg("F"))
	assert.Equal(t, clinic.AppointmentStatus(""), s.Filter(), "F steps back to all")
	s.Update(keyMsg("F"))
	assert.Equal(t, clinic.AppointmentStatus("No Show"), s.Filter(), "F wraps backwards")
}

func TestAppointmentsScreen_CursorShowsDetails(t *testing.T) {
	s := NewAppointmentsScreen(fixtures(t))
	s.Update(keyMsg("j"))
	assert.Contains(t, s.View(), "Blood pressure review")
	for i := 0; i < 10; i++ {
		s.Update(keyMsg("j"))
	}
	assert.Equal(t, 3, s.cursor)
}

func TestPatientsScreen_Filters(t *testing.T) {
	s := NewPatientsScreen(fixtures(t))
	assert.Len(t, s.Visible(), 6)

	s.Update(keyMsg("d"))
	assert.Equal(t, "Cardiology", s.Filter().Department)
	assert.Len(t, s.Visible(), 3)

	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	assert.Equal(t, clinic.PatientStatus("Critical"), s.Filter().Status)
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "Michael Brown", s.Visible()[0].Name)
	assert.Contains(t, s.View(), "Fall risk")

	s.Update(keyMsg("x"))
	assert.Len(t, s.Visible(), 6)
}

func TestPatientsScreen_Search(t *testing.T) {
	s := NewPatientsScreen(fixtures(t))
	s.Update(keyMsg("/"))
	require.True(t, s.Capturing())

	typeKeys(s, "john")
	assert.Equal(t, "john", s.Filter().Query)
	require.Len(t, s.Visible(), 2, "John Smith and Mary Johnson")

	// d is text while searching, not the department filter.
	typeKeys(s, "d")
	assert.Empty(t, s.Filter().Department)
	assert.Empty(t, s.Visible())
	assert.Contains(t, s.View(), "No patients match")

	s.Update(keyMsg("esc"))
	assert.False(t, s.Capturing())
	assert.Len(t, s.Visible(), 6)
}

func TestPatientsScreen_ListNavigation(t *testing.T) {
	s := NewPatientsScreen(fixtures(t))
	s.Update(keyMsg("j"))
	s.Update(keyMsg("j"))
	assert.Equal(t, 2, s.Selected())
	_, cmd := s.Update(keyMsg("q"))
	assert.Nil(t, cmd, "q must not quit from inside the list")
}

func TestRecordsScreen_TabsStatusAndSearch(t *testing.T) {
	s := NewRecordsScreen(fixtures(t))
	assert.Equal(t, "Clinical Notes", s.Filter().Type)
	require.Len(t, s.Visible(), 1)

	s.Update(keyMsg("T"))
	assert.Empty(t, s.Filter().Type, "All Records tab")
	assert.Len(t, s.Visible(), 4)

	s.Update(keyMsg("s"))
	assert.Equal(t, clinic.RecordStatus("Active"), s.Filter().Status)
	assert.Len(t, s.Visible(), 1)
	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	s.Update(keyMsg("s"))
	assert.Empty(t, s.Filter().Status)

	s.Update(keyMsg("/"))
	typeKeys(s, "mri")
	s.Update(keyMsg("enter"))
	assert.False(t, s.Capturing())
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "R003", s.Visible()[0].ID)
	assert.Contains(t, s.View(), "Restricted")
}

func TestScheduleScreen_ViewToggle(t *testing.T) {
	s := NewScheduleScreen(fixtures(t))
	assert.Equal(t, ScheduleDay, s.Mode())
	out := s.View()
	assert.Contains(t, out, "Available: 4hrs")
	assert.Contains(t, out, "Booked: 6hrs")
	assert.Contains(t, out, "Next: Sarah Johnson - 10:30 AM")
	assert.Contains(t, out, "Room 305, 3rd floor, East wing")
	assert.Contains(t, out, "Equipment: ECG Machine")

	s.Update(keyMsg("v"))
	assert.Equal(t, ScheduleWeek, s.Mode())
	assert.Contains(t, s.View(), "4 appointments")

	s.Update(keyMsg("v"))
	assert.Equal(t, ScheduleMonth, s.Mode())
	assert.Contains(t, s.View(), "This month")

	s.Update(keyMsg("v"))
	assert.Equal(t, ScheduleDay, s.Mode())

	s.Update(keyMsg("2"))
	assert.Equal(t, ScheduleWeek, s.Mode())
	assert.Equal(t, "Week", s.Mode().String())
}

func TestCommunicationScreen(t *testing.T) {
	s := NewCommunicationScreen(fixtures(t))
	assert.Len(t, s.Visible(), 4)
	_, ok := s.Template()
	assert.False(t, ok)

	s.Update(keyMsg("f"))
	require.Len(t, s.Visible(), 1, "Unread")
	assert.Equal(t, "M001", s.Visible()[0].ID)

	s.Update(keyMsg("t"))
	tmpl, ok := s.Template()
	require.True(t, ok)
	assert.Equal(t, "Appointment Confirmation", tmpl)

	s.Update(keyMsg("enter"))
	draft, ok := s.Draft("M001")
	require.True(t, ok)
	assert.Equal(t, "Appointment Confirmation", draft)
	assert.Contains(t, s.View(), "Draft: Appointment Confirmation")

	s.Update(keyMsg("f"))
	s.Update(keyMsg("f"))
	s.Update(keyMsg("f"))
	s.Update(keyMsg("/"))
	typeKeys(s, "chest")
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "Michael Brown", s.Visible()[0].From.Name)
}

func TestClinicalToolsScreen_CalculatorLoading(t *testing.T) {
	s := NewClinicalToolsScreen(fixtures(t))
	s.calcWait = 0
	s.Update(keyMsg("j"))

	_, cmd := s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, s.Loading())
	assert.Empty(t, s.Calculator())
	assert.Contains(t, s.View(), "Loading Creatinine Clearance...")

	_, tick := s.Update(spinner.TickMsg{ID: s.spinner.ID()})
	assert.NotNil(t, tick, "spinner keeps ticking while loading")

	s.Update(calculatorReadyMsg{name: "Creatinine Clearance"})
	assert.False(t, s.Loading())
	assert.Equal(t, "Creatinine Clearance", s.Calculator())
	assert.Contains(t, s.View(), "Creatinine Clearance ready")

	_, tick = s.Update(spinner.TickMsg{ID: s.spinner.ID()})
	assert.Nil(t, tick, "spinner stops once loaded")
}

func TestClinicalToolsScreen_StaleReadyIgnored(t *testing.T) {
	s := NewClinicalToolsScreen(fixtures(t))
	s.Update(keyMsg("enter"))
	s.Update(keyMsg("j"))
	s.Update(keyMsg("enter"))
	s.Update(calculatorReadyMsg{name: "BMI Calculator"})
	assert.True(t, s.Loading())

	out := s.View()
	assert.Contains(t, out, "Blood Pressure Reading")
	assert.Contains(t, out, "Drug interaction warning")
}

func TestEmergencyScreen(t *testing.T) {
	s := NewEmergencyScreen(fixtures(t))
	out := s.View()
	assert.Contains(t, out, "Active: 2")
	assert.Contains(t, out, "Pending: 1")
	assert.Contains(t, out, "Critical: 1")
	assert.Contains(t, out, "Latest: Code Blue")
	assert.Contains(t, out, "ETA 2 minutes")

	s.Update(keyMsg("j"))
	s.Update(keyMsg("enter"))
	assert.Equal(t, "Fire Emergency Protocol", s.Protocol())

	assert.Equal(t, "All Teams", s.Team())
	s.Update(keyMsg("t"))
	s.Update(keyMsg("t"))
	assert.Equal(t, "Response Team B", s.Team())
	s.Update(keyMsg("p"))
	assert.Equal(t, "High Priority", s.Priority())

	_, cmd := s.Update(keyMsg("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, ShowBroadcastConfirmMsg{Team: "Response Team B", Priority: "High Priority"}, cmd())
	_, sent := s.LastBroadcast()
	assert.False(t, sent, "nothing is recorded until confirmed")

	s.Update(BroadcastSentMsg{Team: "Response Team B", Priority: "High Priority"})
	assert.Contains(t, s.View(), "Broadcast sent to Response Team B (High Priority)")
}

func TestHeader_QuickAccess(t *testing.T) {
	h := NewHeader(fixtures(t))
	_, cmd := h.Update(keyMsg("p"))
	assert.Nil(t, cmd)
	assert.Empty(t, h.Query(), "keys are ignored until focused")

	h.Focus()
	typeKeys(h, "sched")
	_, cmd = h.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, QuickAccessMsg{Query: "sched"}, cmd())
	assert.False(t, h.Focused())
	assert.Empty(t, h.Query())

	h.Focus()
	typeKeys(h, "x")
	h.Update(keyMsg("esc"))
	assert.False(t, h.Focused())
	assert.Empty(t, h.Query())

	out := h.View()
	assert.Contains(t, out, "MedCare Pro")
	assert.Contains(t, out, "(5)")
	assert.Contains(t, out, "(3)")
	assert.Contains(t, out, "Dr. Smith")
}

func TestSidebar(t *testing.T) {
	s := NewSidebar(Routes())
	s.SetCurrent("/records")
	assert.Equal(t, 3, s.Cursor)

	s.Update(keyMsg("k"))
	s.Update(keyMsg("k"))
	assert.Equal(t, "/records", s.Current, "moving the cursor does not navigate")

	_, cmd := s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Path: "/appointments"}, cmd())

	s.Update(keyMsg("G"))
	assert.Equal(t, len(Routes())-1, s.Cursor)
	s.Update(keyMsg("j"))
	assert.Equal(t, len(Routes())-1, s.Cursor)

	out := s.View()
	assert.Contains(t, out, "Medical Records")
	assert.Contains(t, out, "Emergency")
}

func TestFaultSet(t *testing.T) {
	f := NewFaultSet("/records")
	assert.True(t, f.Armed("/records"))
	assert.False(t, f.Armed("/"))

	assert.True(t, f.Toggle("/"))
	assert.Equal(t, []string{"/", "/records"}, f.Paths())
	assert.False(t, f.Toggle("/records"))
	assert.Equal(t, []string{"/"}, f.Paths())

	var none *FaultSet
	assert.False(t, none.Armed("/"))
}

func TestFaultyView_PanicsOnlyWhileArmed(t *testing.T) {
	faults := NewFaultSet()
	v := withFault(NewOverviewScreen(fixtures(t)), "/", faults)
	assert.NotPanics(t, func() { v.View() })

	faults.Toggle("/")
	assert.PanicsWithValue(t, InjectedFault{Path: "/"}, func() { v.View() })

	faults.Toggle("/")
	assert.NotPanics(t, func() { v.View() })
}

func TestConfirmModal(t *testing.T) {
	m := NewBroadcastConfirmModal("All Teams", "Critical Priority")
	out := m.View()
	assert.Contains(t, out, "Broadcast emergency alert?")
	assert.Contains(t, out, "To: All Teams")

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, BroadcastSentMsg{Team: "All Teams", Priority: "Critical Priority"}, cmd())

	_, cmd = m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())

	_, cmd = m.Update(keyMsg("j"))
	assert.Nil(t, cmd)
}

func TestFailureLog(t *testing.T) {
	empty := NewFailureLog(nil)
	assert.Contains(t, empty.View(), "No failures this session")

	at := time.Date(2026, 3, 15, 9, 41, 7, 0, time.UTC)
	l := NewFailureLog([]boundary.Entry{{
		Err: errors.New("render panic\nsecond line"),
		Context: boundary.FailureContext{
			ID: "f-9", Boundary: "Emergency", Phase: boundary.PhaseRetry, Attempt: 2, At: at,
		},
	}})
	out := l.View()
	assert.Contains(t, out, "Contained failures (1)")
	assert.Contains(t, out, "09:41:07")
	assert.Contains(t, out, "Emergency")
	assert.Contains(t, out, "attempt: 2")
	assert.Contains(t, out, "render panic")
	assert.NotContains(t, out, "second line")

	_, cmd := l.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())
}
