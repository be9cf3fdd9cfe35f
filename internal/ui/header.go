package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medcare/internal/clinic"
	"medcare/internal/ui/textutil"
)

// Header is the top bar: product name, quick-access search, notification and
// message badges, and the signed-in clinician.
type Header struct {
	input         textinput.Model
	Clinician     string
	Notifications int
	Messages      int
	width         int
}

var _ View = (*Header)(nil)

// NewHeader creates the header from the fixture counters.
func NewHeader(f *clinic.Fixtures) *Header {
	ti := textinput.New()
	ti.Placeholder = "Quick access..."
	ti.Prompt = "⌕ "
	ti.Width = 28
	return &Header{
		input:         ti,
		Clinician:     f.Clinician,
		Notifications: f.Notifications,
		Messages:      f.UnreadMessages,
	}
}

// Focus gives the quick-access input the cursor.
func (h *Header) Focus() tea.Cmd {
	return h.input.Focus()
}

// Focused reports whether the quick-access input has the cursor.
func (h *Header) Focused() bool {
	return h.input.Focused()
}

// Query returns the current quick-access text.
func (h *Header) Query() string {
	return h.input.Value()
}

func (h *Header) release() {
	h.input.Reset()
	h.input.Blur()
}

// Init implements View.
func (h *Header) Init() tea.Cmd { return nil }

// Update implements View. Keys only reach the input while it is focused.
func (h *Header) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		return h, nil
	case tea.KeyMsg:
		if !h.input.Focused() {
			return h, nil
		}
		switch msg.String() {
		case "esc":
			h.release()
			return h, nil
		case "enter":
			q := strings.TrimSpace(h.input.Value())
			h.release()
			if q == "" {
				return h, nil
			}
			return h, func() tea.Msg { return QuickAccessMsg{Query: q} }
		}
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

// View implements View.
func (h *Header) View() string {
	left := Styles.Brand.Render("✚ MedCare Pro")
	search := h.input.View()
	badges := fmt.Sprintf("🔔 %s  ✉ %s  %s %s",
		Badge(fmt.Sprint(h.Notifications), clinic.ToneDanger),
		Badge(fmt.Sprint(h.Messages), clinic.ToneInfo),
		Styles.Selected.Render("["+textutil.Initial(h.Clinician)+"]"),
		Styles.Normal.Render(h.Clinician),
	)
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(search) - lipgloss.Width(badges) - 4
	if gap < 2 {
		gap = 2
	}
	row := left + "  " + search + strings.Repeat(" ", gap) + badges
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorDim)).
		Render(row)
}
