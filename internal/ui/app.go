package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"medcare/internal/boundary"
	"medcare/internal/clinic"
)

// AppConfig configures the root model.
type AppConfig struct {
	Fixtures   *clinic.Fixtures // nil loads the embedded sample data
	StartRoute string           // "" starts on the dashboard
	Faults     []string         // routes armed to fail on render
	Logger     *zap.Logger
	Reporter   boundary.Reporter // receives every contained failure; may be nil
	Boundary   []boundary.Option // applied to every screen's boundary
}

// failureLogLimit is how many contained failures the failure log keeps.
const failureLogLimit = 50

// AppModel is the dashboard shell: header, sidebar and a content panel that
// holds the current route's screen inside a fault-isolation boundary.
// Every navigation mounts a fresh screen and discards the old boundary.
type AppModel struct {
	Fixtures   *clinic.Fixtures
	Routes     []Route
	Header     *Header
	Sidebar    *Sidebar
	Content    *GuardedView // nil until Init
	Focus      *FocusManager
	History    History
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Faults     *FaultSet
	Failures   *boundary.Journal

	logger     *zap.Logger
	guardOpts  []boundary.Option
	startRoute string
	status     string
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(cfg AppConfig) (*AppModel, error) {
	fx := cfg.Fixtures
	if fx == nil {
		var err error
		if fx, err = clinic.Default(); err != nil {
			return nil, fmt.Errorf("load fixtures: %w", err)
		}
	}
	routes := Routes()
	start := cfg.StartRoute
	if start == "" {
		start = "/"
	}
	if _, ok := FindRoute(routes, start); !ok {
		return nil, fmt.Errorf("start route %q: %w", start, ErrUnknownRoute)
	}
	for _, p := range cfg.Faults {
		if _, ok := FindRoute(routes, p); !ok {
			return nil, fmt.Errorf("fault route %q: %w", p, ErrUnknownRoute)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	journal := boundary.NewJournal(failureLogLimit)
	reporters := boundary.MultiReporter{journal}
	if cfg.Reporter != nil {
		reporters = append(reporters, cfg.Reporter)
	}
	guardOpts := append([]boundary.Option{boundary.WithReporter(reporters)}, cfg.Boundary...)

	layout := ShellLayout{}
	m := &AppModel{
		Fixtures:   fx,
		Routes:     routes,
		Header:     NewHeader(fx),
		Sidebar:    NewSidebar(routes),
		Focus:      NewFocusManager(layout.FocusOrder()),
		KeyHandler: NewKeyHandler(newKeybindRegistry(routes)),
		Faults:     NewFaultSet(cfg.Faults...),
		Failures:   journal,
		logger:     logger.Named("ui"),
		guardOpts:  guardOpts,
		startRoute: start,
	}
	m.Sidebar.Focused = m.Focus.Is(FocusSidebar)
	m.Focus.OnChange = func(_, to string) {
		m.Sidebar.Focused = to == FocusSidebar
	}
	return m, nil
}

// ErrUnknownRoute is returned for a path that is not in the route table.
var ErrUnknownRoute = errors.New("unknown route")

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the current input mode.
func (m *AppModel) Mode() AppMode {
	switch {
	case m.Overlays.Len() > 0:
		return ModeModal
	case m.Header.Focused():
		return ModeSearch
	default:
		return ModeBrowse
	}
}

// CurrentRoute returns the path shown in the content panel.
func (m *AppModel) CurrentRoute() string {
	return m.History.Peek()
}

// Status returns the transient message shown in the status line.
func (m *AppModel) Status() string {
	return m.status
}

func (m *AppModel) layout() ShellLayout {
	l := ShellLayout{Header: m.Header, Sidebar: m.Sidebar}
	if m.Content != nil {
		l.Content = m.Content
	}
	return l
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.navigate(a.startRoute, true)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.resize()
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case boundary.RecoverMsg:
		return a, a.handleRecover(msg)
	case NavigateMsg:
		a.status = ""
		return a, a.navigate(msg.Path, true)
	case BackMsg:
		return a, a.back()
	case QuickAccessMsg:
		return a, a.quickAccess(msg.Query)
	case FocusSearchMsg:
		return a, a.Header.Focus()
	case ToggleFaultMsg:
		a.toggleFault()
		return a, nil
	case ShowHelpMsg:
		a.openOverlay(Overlay{View: NewHelpOverlay(a.KeyHandler.Registry, ModeBrowse), Title: "help"})
		return a, nil
	case ShowFailureLogMsg:
		log := NewFailureLog(a.Failures.Entries())
		if a.width > 0 {
			log.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.openOverlay(Overlay{View: log, Title: "failure log"})
		return a, nil
	case ShowBroadcastConfirmMsg:
		a.openOverlay(Overlay{View: NewBroadcastConfirmModal(msg.Team, msg.Priority), Title: "broadcast confirm"})
		return a, nil
	case BroadcastSentMsg:
		a.Overlays.Pop()
		a.status = fmt.Sprintf("Broadcast sent to %s", msg.Team)
		a.logger.Info("emergency broadcast confirmed",
			zap.String("team", msg.Team), zap.String("priority", msg.Priority))
		return a, a.updateContent(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	}

	// Everything else (spinner ticks, cursor blinks, timers) goes to the
	// header and the mounted screen.
	_, hcmd := a.Header.Update(msg)
	return a, tea.Batch(hcmd, a.updateContent(msg))
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	base := a.layout().Render(a.width, a.height, a.statusLine)
	if a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return base
}

func (m *AppModel) openOverlay(o Overlay) {
	m.Overlays.Push(o)
	m.logger.Debug("overlay opened", zap.String("overlay", o.Title), zap.Int("depth", m.Overlays.Len()))
}

func (m *AppModel) statusLine() string {
	parts := []string{Styles.Selected.Render(strings.ToUpper(m.Mode().String())), Styles.Muted.Render(m.CurrentRoute())}
	if m.Content != nil {
		if b := m.Content.Boundary(); b.Failed() {
			parts = append(parts, ToneStyle(clinic.ToneDanger).Render(fmt.Sprintf("%s: %s", b.Name(), b.State())))
		}
	}
	if armed := m.Faults.Paths(); len(armed) > 0 {
		parts = append(parts, Styles.Details.Render("fault drill: "+strings.Join(armed, " ")))
	}
	if m.status != "" {
		parts = append(parts, Styles.Normal.Render(m.status))
	}
	parts = append(parts, Styles.Hint.Render("SPC: commands  ?: help  tab: focus"))
	return strings.Join(parts, "  ")
}
