package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics owns the registry the failure counter is registered on. The
// dashboard has no HTTP listener; the registry is written as a node-exporter
// textfile when the program exits.
type Metrics struct {
	Registry *prometheus.Registry
	textfile string
}

// NewMetrics creates a registry with the Go runtime collectors. textfile may
// be empty, in which case Flush does nothing.
func NewMetrics(textfile string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return &Metrics{Registry: reg, textfile: textfile}
}

// Flush writes the registry to the textfile.
func (m *Metrics) Flush() error {
	if m == nil || m.textfile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.textfile), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(m.textfile, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
