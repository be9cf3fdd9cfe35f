package clinic

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Default returns the embedded sample data set.
func Default() (*Fixtures, error) {
	return Decode(bytes.NewReader(defaultFixtures))
}

// Decode reads a fixture document. Unknown keys are an error.
func Decode(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &f, nil
}

// FindPatient returns the patient with the given id.
func (f *Fixtures) FindPatient(id string) (Patient, bool) {
	for _, p := range f.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// IncidentCounts tallies the emergency queue for the alert bar.
func (f *Fixtures) IncidentCounts() (active, pending, critical int) {
	for _, in := range f.Incidents {
		switch in.Status {
		case "Critical":
			critical++
			active++
		case "Active", "In Progress":
			active++
		case "Pending":
			pending++
		}
	}
	return active, pending, critical
}

// LatestIncident returns the first (newest) incident in the queue.
func (f *Fixtures) LatestIncident() (Incident, bool) {
	if len(f.Incidents) == 0 {
		return Incident{}, false
	}
	return f.Incidents[0], true
}
