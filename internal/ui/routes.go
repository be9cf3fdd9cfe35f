package ui

import (
	"strings"

	"medcare/internal/clinic"
)

// Route is one entry of the sidebar navigation.
type Route struct {
	Path  string
	Label string
	Key   string // go-to key after SPC g
	Build func(*clinic.Fixtures) View
}

// Routes returns the dashboard's route table in sidebar order.
func Routes() []Route {
	return []Route{
		{Path: "/", Label: "Dashboard", Key: "d", Build: func(f *clinic.Fixtures) View { return NewOverviewScreen(f) }},
		{Path: "/appointments", Label: "Appointments", Key: "a", Build: func(f *clinic.Fixtures) View { return NewAppointmentsScreen(f) }},
		{Path: "/patients", Label: "Patients", Key: "p", Build: func(f *clinic.Fixtures) View { return NewPatientsScreen(f) }},
		{Path: "/records", Label: "Medical Records", Key: "r", Build: func(f *clinic.Fixtures) View { return NewRecordsScreen(f) }},
		{Path: "/schedule", Label: "Schedule", Key: "s", Build: func(f *clinic.Fixtures) View { return NewScheduleScreen(f) }},
		{Path: "/communication", Label: "Communication", Key: "c", Build: func(f *clinic.Fixtures) View { return NewCommunicationScreen(f) }},
		{Path: "/clinical-tools", Label: "Clinical Tools", Key: "t", Build: func(f *clinic.Fixtures) View { return NewClinicalToolsScreen(f) }},
		{Path: "/emergency", Label: "Emergency", Key: "e", Build: func(f *clinic.Fixtures) View { return NewEmergencyScreen(f) }},
	}
}

// FindRoute returns the route registered at path.
func FindRoute(routes []Route, path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// MatchRoute returns the first route whose label or path contains query,
// case-insensitively.
func MatchRoute(routes []Route, query string) (Route, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Route{}, false
	}
	for _, r := range routes {
		if strings.Contains(strings.ToLower(r.Label), q) || strings.Contains(r.Path, q) {
			return r, true
		}
	}
	return Route{}, false
}
