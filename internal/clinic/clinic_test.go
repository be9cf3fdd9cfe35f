package clinic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedFixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Dr. Smith", f.Clinician)
	assert.Len(t, f.Overview, 4)
	assert.NotEmpty(t, f.Patients)
	assert.NotEmpty(t, f.Incidents)
	assert.Len(t, f.Protocols, 6)
	assert.Len(t, f.Templates, 6)
	assert.Len(t, f.Calculators, 7)
}

func TestDefault_EmergencyAndScheduleSettings(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Critical Priority", "High Priority", "Medium Priority"}, f.Priorities)
	assert.Equal(t, []string{"All Teams", "Response Team A", "Response Team B"}, f.Teams)
	assert.Len(t, f.SafetyAlerts, 2)
	assert.Contains(t, f.SafetyAlerts[0], "Warfarin")
	assert.Equal(t, ScheduleSummary{AvailableHours: 4, BookedHours: 6}, f.Schedule)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("clinician: x\npatinets: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode fixtures")
}

func TestStatusTones(t *testing.T) {
	tests := []struct {
		name string
		got  Tone
		want Tone
	}{
		{"patient active", PatientStatus("Active").Tone(), ToneSuccess},
		{"patient awaiting tests", PatientStatus("Awaiting Tests").Tone(), ToneCaution},
		{"patient unknown", PatientStatus("Discharged").Tone(), ToneNeutral},
		{"incident critical blinks", IncidentStatus("Critical").Tone(), ToneAlarm},
		{"incident resolved", IncidentStatus("Resolved").Tone(), ToneSuccess},
		{"priority urgent", Priority("Urgent").Tone(), ToneDanger},
		{"priority fyi", Priority("FYI").Tone(), ToneNeutral},
		{"record confidential", RecordStatus("Confidential").Tone(), ToneDanger},
		{"action in progress", ActionStatus("In Progress").Tone(), ToneInfo},
		{"appointment no show", AppointmentStatus("No Show").Tone(), ToneDanger},
		{"slot booked", SlotStatus("Booked").Tone(), ToneInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestAppointmentStatus_Slot(t *testing.T) {
	assert.Equal(t, SlotStatus("In Progress"), AppointmentStatus("In Progress").Slot())
	assert.Equal(t, SlotStatus("Booked"), AppointmentStatus("Confirmed").Slot())
	assert.Equal(t, SlotStatus("Booked"), AppointmentStatus("Cancelled").Slot())
}

func TestFilterPatients(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	all := f.FilterPatients(PatientFilter{})
	assert.Len(t, all, len(f.Patients))

	cardio := f.FilterPatients(PatientFilter{Department: "Cardiology"})
	require.NotEmpty(t, cardio)
	for _, p := range cardio {
		assert.Equal(t, "Cardiology", p.Department)
	}

	critical := f.FilterPatients(PatientFilter{Status: "Critical"})
	require.Len(t, critical, 1)
	assert.Equal(t, "Michael Brown", critical[0].Name)

	byQuery := f.FilterPatients(PatientFilter{Query: "  JOHN "})
	names := make([]string, 0, len(byQuery))
	for _, p := range byQuery {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"John Smith", "Mary Johnson"}, names)

	assert.Empty(t, f.FilterPatients(PatientFilter{Department: "Neurology", Status: "Critical"}))
}

func TestFilterRecordsAndMessages(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	recs := f.FilterRecords(RecordFilter{Query: "mri"})
	require.Len(t, recs, 1)
	assert.Equal(t, "R003", recs[0].ID)

	assert.Len(t, f.FilterRecords(RecordFilter{Type: "Clinical Notes"}), 1)
	assert.Len(t, f.FilterRecords(RecordFilter{Status: "Archived"}), 1)

	unread := f.FilterMessages("Unread", "")
	require.Len(t, unread, 1)
	assert.Equal(t, "M001", unread[0].ID)

	assert.Len(t, f.FilterMessages("", "chest"), 1)
	assert.Len(t, f.FilterMessages("", ""), len(f.Messages))
}

func TestIncidentCounts(t *testing.T) {
	f := &Fixtures{Incidents: []Incident{
		{ID: "1", Status: "Critical"},
		{ID: "2", Status: "In Progress"},
		{ID: "3", Status: "Pending"},
		{ID: "4", Status: "Resolved"},
	}}
	active, pending, critical := f.IncidentCounts()
	assert.Equal(t, 2, active)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 1, critical)

	latest, ok := f.LatestIncident()
	require.True(t, ok)
	assert.Equal(t, "1", latest.ID)

	_, ok = (&Fixtures{}).LatestIncident()
	assert.False(t, ok)
}

func TestFindPatient(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	p, ok := f.FindPatient("P001")
	require.True(t, ok)
	assert.Equal(t, "John Smith", p.Name)

	_, ok = f.FindPatient("nope")
	assert.False(t, ok)
}
