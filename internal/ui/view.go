package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// InputCapturer is implemented by views that own a focused text input.
// While Capturing returns true the app passes keys straight through instead
// of interpreting them as keybinds.
type InputCapturer interface {
	Capturing() bool
}

// AsModel exposes a View as a tea.Model.
func AsModel(v View) tea.Model {
	return viewModel{v: v}
}

// viewModel adapts View to tea.Model.
type viewModel struct {
	v View
}

func (m viewModel) Init() tea.Cmd { return m.v.Init() }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.v.Update(msg)
	return viewModel{v: next}, cmd
}

func (m viewModel) View() string { return m.v.View() }

// unwrap returns the View behind a model produced by AsModel.
func unwrap(m tea.Model) (View, bool) {
	vm, ok := m.(viewModel)
	if !ok {
		return nil, false
	}
	return vm.v, true
}
