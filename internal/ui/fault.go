package ui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// FaultSet records which routes are armed to panic while rendering. It backs
// the fault drill: arm a route, watch its boundary fall back, disarm and retry.
type FaultSet struct {
	armed map[string]bool
}

// NewFaultSet arms the given routes.
func NewFaultSet(paths ...string) *FaultSet {
	f := &FaultSet{armed: make(map[string]bool)}
	for _, p := range paths {
		f.armed[p] = true
	}
	return f
}

// Armed reports whether path will fail on render.
func (f *FaultSet) Armed(path string) bool {
	return f != nil && f.armed[path]
}

// Toggle flips path and returns the new state.
func (f *FaultSet) Toggle(path string) bool {
	f.armed[path] = !f.armed[path]
	if !f.armed[path] {
		delete(f.armed, path)
	}
	return f.armed[path]
}

// Paths returns the armed routes, sorted.
func (f *FaultSet) Paths() []string {
	out := make([]string, 0, len(f.armed))
	for p := range f.armed {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// InjectedFault is the panic value raised by an armed screen.
type InjectedFault struct {
	Path string
}

func (e InjectedFault) Error() string {
	return fmt.Sprintf("injected render fault on %s", e.Path)
}

// faultyView wraps a screen and panics in View while its route is armed.
type faultyView struct {
	inner  View
	path   string
	faults *FaultSet
}

var _ View = (*faultyView)(nil)

func withFault(v View, path string, faults *FaultSet) View {
	if faults == nil {
		return v
	}
	return &faultyView{inner: v, path: path, faults: faults}
}

func (f *faultyView) Init() tea.Cmd { return f.inner.Init() }

func (f *faultyView) Update(msg tea.Msg) (View, tea.Cmd) {
	next, cmd := f.inner.Update(msg)
	f.inner = next
	return f, cmd
}

func (f *faultyView) View() string {
	if f.faults.Armed(f.path) {
		panic(InjectedFault{Path: f.path})
	}
	return f.inner.View()
}

// Capturing implements InputCapturer for the wrapped screen.
func (f *faultyView) Capturing() bool {
	c, ok := f.inner.(InputCapturer)
	return ok && c.Capturing()
}
