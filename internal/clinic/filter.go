package clinic

import "strings"

// PatientFilter narrows the patient list. Empty fields match everything.
type PatientFilter struct {
	Department string
	Status     PatientStatus
	Query      string
}

// FilterPatients returns the patients that match the filter, in fixture order.
func (f *Fixtures) FilterPatients(pf PatientFilter) []Patient {
	var out []Patient
	for _, p := range f.Patients {
		if pf.Department != "" && p.Department != pf.Department {
			continue
		}
		if pf.Status != "" && p.Status != pf.Status {
			continue
		}
		if !matches(pf.Query, p.Name, p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAppointments returns appointments with the given status ("" for all).
func (f *Fixtures) FilterAppointments(status AppointmentStatus) []Appointment {
	var out []Appointment
	for _, a := range f.Appointments {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// RecordFilter narrows the records list. Empty fields match everything.
type RecordFilter struct {
	Type   string
	Status RecordStatus
	Query  string
}

// FilterRecords returns the records that match the filter.
func (f *Fixtures) FilterRecords(rf RecordFilter) []Record {
	var out []Record
	for _, r := range f.Records {
		if rf.Type != "" && r.Type != rf.Type {
			continue
		}
		if rf.Status != "" && r.Status != rf.Status {
			continue
		}
		if !matches(rf.Query, r.PatientName, r.PatientID, r.ID, strings.Join(r.Tags, " ")) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterMessages returns messages with the given status ("" for all) whose
// sender or preview contains query.
func (f *Fixtures) FilterMessages(status MessageStatus, query string) []Message {
	var out []Message
	for _, m := range f.Messages {
		if status != "" && m.Status != status {
			continue
		}
		if !matches(query, m.From.Name, m.Preview, m.Type) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matches reports whether query is a case-insensitive substring of any field.
func matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
