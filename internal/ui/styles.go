package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/clinic"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "33"  // Blue - titles, active navigation
	ColorHighlight = "39"  // Light blue - cursor, borders
	ColorDanger    = "196" // Red - alerts, errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - very dim text
	ColorWarning   = "208" // Orange
	ColorCaution   = "220" // Yellow
	ColorSuccess   = "42"  // Green
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles
	Brand        lipgloss.Style // Header product name

	Box        lipgloss.Style // Standard box with rounded border
	BoxDanger  lipgloss.Style // Warning/error box (danger border)
	BoxCompact lipgloss.Style // Compact box with less padding (cards, lists)
	AlertBar   lipgloss.Style // Full-width red banner on the emergency screen

	Selected lipgloss.Style // Cursor row
	Active   lipgloss.Style // Active navigation item / selected toggle
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Section  lipgloss.Style // Section headers
	Empty    lipgloss.Style // Empty state text
	Label    lipgloss.Style // Modal label/content
	Details  lipgloss.Style // Warning details
	Up       lipgloss.Style // Positive change
	Down     lipgloss.Style // Negative change
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	AlertBar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("160")).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color("17")).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Up: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Down: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

var toneColors = map[clinic.Tone]string{
	clinic.ToneNeutral: ColorMuted,
	clinic.ToneSuccess: ColorSuccess,
	clinic.ToneInfo:    ColorAccent,
	clinic.ToneCaution: ColorCaution,
	clinic.ToneWarning: ColorWarning,
	clinic.ToneDanger:  ColorDanger,
	clinic.ToneAlarm:   ColorDanger,
}

// ToneStyle returns the foreground style for a status tone.
func ToneStyle(t clinic.Tone) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(toneColors[t]))
	if t == clinic.ToneAlarm {
		s = s.Bold(true).Blink(true)
	}
	return s
}

// Badge renders a status pill, e.g. "(Active)" in the status's tone.
func Badge(text string, t clinic.Tone) string {
	return ToneStyle(t).Render("(" + text + ")")
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Muted
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
