// Package config loads MedCare's settings: defaults, then an optional YAML
// file, then MEDCARE_* environment variables (a .env file in the working
// directory is read first).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigDir is the directory for the user config, relative to $HOME.
	UserConfigDir = ".config/medcare"
	// UserConfigFile is the config file name inside UserConfigDir.
	UserConfigFile = "config.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MEDCARE_"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Config is the complete MedCare configuration.
type Config struct {
	Log        LogConfig       `yaml:"log"`
	StartRoute string          `yaml:"start_route"`
	Faults     []string        `yaml:"faults"` // routes armed to fail on render
	Metrics    MetricsConfig   `yaml:"metrics"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`
}

// LogConfig configures the log file. The TUI owns the terminal, so logs
// never go to stdout.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File is the log path; "-" disables logging.
	File string `yaml:"file"`
}

// MetricsConfig configures the prometheus textfile written on exit.
type MetricsConfig struct {
	// Textfile is the output path; empty disables the export.
	Textfile string `yaml:"textfile"`
}

// TelemetryConfig configures tracing. The exporter endpoint comes from
// OTEL_EXPORTER_OTLP_ENDPOINT; tracing is off when it is unset.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name"`
}

// Default returns a Config with defaults filled in.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  defaultLogFile(),
		},
		StartRoute: "/",
		Telemetry: TelemetryConfig{
			ServiceName: "medcare",
		},
	}
}

// defaultLogFile follows the XDG state directory convention.
func defaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "medcare", "medcare.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "-"
	}
	return filepath.Join(home, ".local", "state", "medcare", "medcare.log")
}

// UserConfigPath returns ~/.config/medcare/config.yaml, or "" when the home
// directory is unknown.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// Load builds the configuration. An explicit path must exist; with path ""
// the user config is used when present.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes the YAML file at path over the current values. Keys
// absent from the file keep their current value.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from MEDCARE_* variables. MEDCARE_FAULTS is a
// comma-separated list of routes.
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)
	str("START_ROUTE", &c.StartRoute)
	str("METRICS_TEXTFILE", &c.Metrics.Textfile)
	str("SERVICE_NAME", &c.Telemetry.ServiceName)
	if v, ok := lookup(EnvPrefix + "FAULTS"); ok {
		c.Faults = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Faults = append(c.Faults, p)
			}
		}
	}
}

// Validate checks field formats. Route paths are checked against the route
// table by the UI, not here.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalid, c.Log.Level)
	}
	if c.Log.File == "" {
		return fmt.Errorf("%w: log.file is required (use \"-\" to disable)", ErrInvalid)
	}
	if !strings.HasPrefix(c.StartRoute, "/") {
		return fmt.Errorf("%w: start_route %q must start with /", ErrInvalid, c.StartRoute)
	}
	for _, p := range c.Faults {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: fault route %q must start with /", ErrInvalid, p)
		}
	}
	if c.Telemetry.ServiceName == "" {
		return fmt.Errorf("%w: telemetry.service_name is required", ErrInvalid)
	}
	return nil
}
