package clinic

// Tone is the visual weight of a status badge. The ui package maps tones to
// terminal colors.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneInfo
	ToneCaution
	ToneWarning
	ToneDanger
	ToneAlarm // danger that should blink
)

func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneInfo:
		return "info"
	case ToneCaution:
		return "caution"
	case ToneWarning:
		return "warning"
	case ToneDanger:
		return "danger"
	case ToneAlarm:
		return "alarm"
	default:
		return "neutral"
	}
}

type (
	PatientStatus     string
	AppointmentStatus string
	IncidentStatus    string
	MessageStatus     string
	Priority          string
	RecordStatus      string
	ActionStatus      string
	SlotStatus        string
)

var patientTones = map[PatientStatus]Tone{
	"Active":         ToneSuccess,
	"New":            ToneInfo,
	"Follow-up":      ToneWarning,
	"Critical":       ToneDanger,
	"Inactive":       ToneNeutral,
	"Awaiting Tests": ToneCaution,
}

var appointmentTones = map[AppointmentStatus]Tone{
	"Scheduled":   ToneInfo,
	"Confirmed":   ToneInfo,
	"Checked In":  ToneCaution,
	"In Progress": ToneWarning,
	"Completed":   ToneSuccess,
	"Cancelled":   ToneNeutral,
	"No Show":     ToneDanger,
}

var incidentTones = map[IncidentStatus]Tone{
	"Critical":     ToneAlarm,
	"Active":       ToneDanger,
	"Pending":      ToneCaution,
	"In Progress":  ToneWarning,
	"Resolved":     ToneSuccess,
	"Under Review": ToneInfo,
}

var priorityTones = map[Priority]Tone{
	"Urgent": ToneDanger,
	"High":   ToneWarning,
	"Normal": ToneInfo,
	"Low":    ToneSuccess,
	"FYI":    ToneNeutral,
}

var recordTones = map[RecordStatus]Tone{
	"Active":         ToneSuccess,
	"Archived":       ToneNeutral,
	"Pending Review": ToneCaution,
	"Confidential":   ToneDanger,
}

var actionTones = map[ActionStatus]Tone{
	"Completed":   ToneSuccess,
	"Pending":     ToneCaution,
	"In Progress": ToneInfo,
	"Error":       ToneDanger,
}

var slotTones = map[SlotStatus]Tone{
	"Available":   ToneSuccess,
	"Booked":      ToneInfo,
	"In Progress": ToneWarning,
	"Break":       ToneNeutral,
	"Emergency":   ToneDanger,
	"Buffer":      ToneNeutral,
}

// Unknown statuses fall back to ToneNeutral.
func (s PatientStatus) Tone() Tone     { return patientTones[s] }
func (s AppointmentStatus) Tone() Tone { return appointmentTones[s] }
func (s IncidentStatus) Tone() Tone    { return incidentTones[s] }
func (p Priority) Tone() Tone          { return priorityTones[p] }
func (s RecordStatus) Tone() Tone      { return recordTones[s] }
func (s ActionStatus) Tone() Tone      { return actionTones[s] }
func (s SlotStatus) Tone() Tone        { return slotTones[s] }

// Slot maps an appointment onto the schedule grid: anything in progress keeps
// that status, everything else shows as booked.
func (s AppointmentStatus) Slot() SlotStatus {
	if s == "In Progress" {
		return "In Progress"
	}
	return "Booked"
}

// PatientStatuses lists the patient statuses in filter order.
func PatientStatuses() []PatientStatus {
	return []PatientStatus{"Active", "New", "Follow-up", "Critical", "Inactive", "Awaiting Tests"}
}

// AppointmentStatuses lists the appointment statuses in filter order.
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{"Scheduled", "Confirmed", "Checked In", "In Progress", "Completed", "Cancelled", "No Show"}
}

// RecordStatuses lists the record statuses in filter order.
func RecordStatuses() []RecordStatus {
	return []RecordStatus{"Active", "Archived", "Pending Review", "Confidential"}
}

// MessageStatuses lists the inbox filters after "All Messages".
func MessageStatuses() []MessageStatus {
	return []MessageStatus{"Unread", "Flagged", "Archived"}
}

// RecordTypes lists the record tabs.
func RecordTypes() []string {
	return []string{"Clinical Notes", "Lab Results", "Imaging", "Prescriptions", "Procedures", "Vaccinations", "Allergies", "Medical History"}
}
