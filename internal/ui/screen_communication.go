package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/clinic"
	"medcare/internal/ui/textutil"
)

// CommunicationScreen is the patient message inbox with quick-response
// templates. Drafts stay on screen; nothing is sent.
type CommunicationScreen struct {
	fx       *clinic.Fixtures
	filters  []clinic.MessageStatus // "" first, meaning all
	filter   int
	cursor   int
	template int // -1 when none chosen
	drafts   map[string]string
	search   searchField
}

var _ View = (*CommunicationScreen)(nil)

// NewCommunicationScreen creates the inbox.
func NewCommunicationScreen(f *clinic.Fixtures) *CommunicationScreen {
	return &CommunicationScreen{
		fx:       f,
		filters:  append([]clinic.MessageStatus{""}, clinic.MessageStatuses()...),
		template: -1,
		drafts:   make(map[string]string),
		search:   newSearchField("Search messages..."),
	}
}

// Visible returns the messages passing the status filter and search.
func (s *CommunicationScreen) Visible() []clinic.Message {
	return s.fx.FilterMessages(s.filters[s.filter], s.search.value())
}

// Template returns the chosen quick-response template, if any.
func (s *CommunicationScreen) Template() (string, bool) {
	if s.template < 0 || s.template >= len(s.fx.Templates) {
		return "", false
	}
	return s.fx.Templates[s.template], true
}

// Draft returns the reply drafted for message id.
func (s *CommunicationScreen) Draft(id string) (string, bool) {
	d, ok := s.drafts[id]
	return d, ok
}

// Capturing implements InputCapturer.
func (s *CommunicationScreen) Capturing() bool { return s.search.active() }

// Init implements View.
func (s *CommunicationScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *CommunicationScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if s.search.active() {
		cmd, _ := s.search.update(msg)
		s.cursor = clampCursor(s.cursor, len(s.Visible()))
		return s, cmd
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "/":
		return s, s.search.focus()
	case "f":
		s.filter = cycle(s.filter, 1, len(s.filters))
		s.cursor = clampCursor(s.cursor, len(s.Visible()))
	case "t":
		s.template = cycle(s.template, 1, len(s.fx.Templates))
	case "enter":
		visible := s.Visible()
		tmpl, ok := s.Template()
		if ok && len(visible) > 0 {
			s.drafts[visible[s.cursor].ID] = tmpl
		}
	default:
		s.cursor, _ = moveCursor(k.String(), s.cursor, len(s.Visible()))
	}
	return s, nil
}

// View implements View.
func (s *CommunicationScreen) View() string {
	labels := make([]string, len(s.filters))
	for i, f := range s.filters {
		labels[i] = string(f)
		if f == "" {
			labels[i] = "All Messages"
		}
	}

	var inbox strings.Builder
	inbox.WriteString(tabs(labels, s.filter) + "\n" + s.search.view() + "\n\n")
	visible := s.Visible()
	for i, m := range visible {
		unread := "  "
		if m.Status == "Unread" {
			unread = ToneStyle(clinic.ToneInfo).Render("● ")
		}
		marker := "  "
		name := Styles.Normal.Render(m.From.Name)
		if i == s.cursor {
			marker = Styles.Selected.Render("▸ ")
			name = Styles.Selected.Render(m.From.Name)
		}
		inbox.WriteString(fmt.Sprintf("%s%s%s  %s  %s\n", marker, unread, name,
			Badge(string(m.Priority), m.Priority.Tone()), Styles.Muted.Render(m.Timestamp)))
		inbox.WriteString("      " + Styles.Muted.Render(m.Type+": "+textutil.Truncate(m.Preview, 44)) + "\n")
		if d, ok := s.drafts[m.ID]; ok {
			inbox.WriteString("      " + Styles.Up.Render("Draft: "+d) + "\n")
		}
	}
	if len(visible) == 0 {
		inbox.WriteString(Styles.Empty.Render("No messages") + "\n")
	}

	var quick strings.Builder
	for i, t := range s.fx.Templates {
		if i == s.template {
			quick.WriteString(Styles.Active.Render(t) + "\n")
		} else {
			quick.WriteString(Styles.Normal.Render(t) + "\n")
		}
	}

	var b strings.Builder
	b.WriteString(heading("Patient Communication", fmt.Sprintf("%d unread", s.fx.UnreadMessages)) + "\n\n")
	b.WriteString(joinColumns(
		section("Inbox", inbox.String()),
		Styles.BoxCompact.Render(section("Quick Responses", quick.String())),
	) + "\n")
	b.WriteString(hints("j/k", "move", "f", "filter", "/", "search", "t", "template", "enter", "draft reply"))
	return b.String()
}
