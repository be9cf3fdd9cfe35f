// Package clinic holds the read-only sample data rendered by the dashboard
// screens, plus the status-to-tone tables the screens use for badges.
//
// Fixtures are loaded once from an embedded YAML document and handed to each
// view at construction; nothing in this package mutates them afterwards.
package clinic

// Patient is a row in the patient overview.
type Patient struct {
	ID         string        `yaml:"id"`
	Name       string        `yaml:"name"`
	Age        int           `yaml:"age"`
	Department string        `yaml:"department"`
	LastVisit  string        `yaml:"last_visit"`
	Status     PatientStatus `yaml:"status"`
	Alerts     []string      `yaml:"alerts"`
	NextVisit  string        `yaml:"next_visit"`
}

// PatientRef identifies a patient on another record.
type PatientRef struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Contact string `yaml:"contact,omitempty"`
}

// Appointment is a booked slot on the appointments screen and the doctor schedule.
type Appointment struct {
	ID        string            `yaml:"id"`
	Start     string            `yaml:"start"`
	End       string            `yaml:"end"`
	Patient   PatientRef        `yaml:"patient"`
	Type      string            `yaml:"type"`
	Room      Room              `yaml:"room"`
	Provider  string            `yaml:"provider"`
	Status    AppointmentStatus `yaml:"status"`
	Notes     string            `yaml:"notes,omitempty"`
	Equipment []string          `yaml:"equipment,omitempty"`
}

// Room locates an appointment.
type Room struct {
	Number string `yaml:"number"`
	Floor  string `yaml:"floor,omitempty"`
	Wing   string `yaml:"wing,omitempty"`
}

// Incident is an entry in the emergency queue.
type Incident struct {
	ID           string         `yaml:"id"`
	Time         string         `yaml:"time"`
	Type         string         `yaml:"type"`
	Location     string         `yaml:"location"`
	Patient      *PatientRef    `yaml:"patient,omitempty"`
	Status       IncidentStatus `yaml:"status"`
	ResponseTeam string         `yaml:"response_team"`
	ETA          string         `yaml:"eta,omitempty"`
}

// Message is a patient message in the communication inbox.
type Message struct {
	ID        string        `yaml:"id"`
	Timestamp string        `yaml:"timestamp"`
	From      PatientRef    `yaml:"from"`
	Type      string        `yaml:"type"`
	Priority  Priority      `yaml:"priority"`
	Status    MessageStatus `yaml:"status"`
	Preview   string        `yaml:"preview"`
}

// Record is a medical record entry.
type Record struct {
	ID           string       `yaml:"id"`
	PatientID    string       `yaml:"patient_id"`
	PatientName  string       `yaml:"patient_name"`
	Type         string       `yaml:"type"`
	Category     string       `yaml:"category"`
	Date         string       `yaml:"date"`
	Status       RecordStatus `yaml:"status"`
	LastModified string       `yaml:"last_modified"`
	AccessLevel  string       `yaml:"access_level"`
	Tags         []string     `yaml:"tags"`
}

// ClinicalAction is a recent bedside action.
type ClinicalAction struct {
	ID       string       `yaml:"id"`
	Time     string       `yaml:"time"`
	Action   string       `yaml:"action"`
	Patient  PatientRef   `yaml:"patient"`
	Status   ActionStatus `yaml:"status"`
	Provider string       `yaml:"provider"`
	Values   string       `yaml:"values,omitempty"`
}

// Activity is an item in the overview's recent activity feed.
type Activity struct {
	ID      int    `yaml:"id"`
	Kind    string `yaml:"kind"`
	Content string `yaml:"content"`
	Time    string `yaml:"time"`
}

// Stat is a headline number with its change against the previous period.
type Stat struct {
	Title  string `yaml:"title"`
	Value  int    `yaml:"value"`
	Change int    `yaml:"change"`
	Period string `yaml:"period,omitempty"`
}

// ScheduleSummary is the header of the doctor schedule.
type ScheduleSummary struct {
	AvailableHours int `yaml:"available_hours"`
	BookedHours    int `yaml:"booked_hours"`
}

// Fixtures is the whole sample data set.
type Fixtures struct {
	Clinician      string           `yaml:"clinician"`
	Notifications  int              `yaml:"notifications"`
	UnreadMessages int              `yaml:"unread_messages"`
	Overview       []Stat           `yaml:"overview"`
	PatientStats   []Stat           `yaml:"patient_stats"`
	Activities     []Activity       `yaml:"activities"`
	Patients       []Patient        `yaml:"patients"`
	Appointments   []Appointment    `yaml:"appointments"`
	Incidents      []Incident       `yaml:"incidents"`
	Messages       []Message        `yaml:"messages"`
	Records        []Record         `yaml:"records"`
	Actions        []ClinicalAction `yaml:"actions"`
	Departments    []string         `yaml:"departments"`
	Protocols      []string         `yaml:"protocols"`
	Templates      []string         `yaml:"templates"`
	Calculators    []string         `yaml:"calculators"`
	Tools          []string         `yaml:"tools"`
	Teams          []string         `yaml:"teams"`
	Priorities     []string         `yaml:"broadcast_priorities"`
	SafetyAlerts   []string         `yaml:"safety_alerts"`
	Schedule       ScheduleSummary  `yaml:"schedule"`
}
