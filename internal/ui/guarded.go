package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"medcare/internal/boundary"
)

// GuardedView mounts a View inside a fault-isolation boundary.
type GuardedView struct {
	b *boundary.Boundary
}

var _ View = (*GuardedView)(nil)

// Guard wraps the View produced by build in a boundary named name. build is
// called on mount and on every retry.
func Guard(name string, build func() (View, error), opts ...boundary.Option) *GuardedView {
	factory := func() (tea.Model, error) {
		v, err := build()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, errors.New("screen builder returned nil view")
		}
		return AsModel(v), nil
	}
	return &GuardedView{b: boundary.New(name, factory, opts...)}
}

// Boundary exposes the underlying boundary for state queries.
func (g *GuardedView) Boundary() *boundary.Boundary { return g.b }

// Screen returns the guarded View while it is mounted and healthy.
func (g *GuardedView) Screen() (View, bool) {
	m := g.b.Child()
	if m == nil {
		return nil, false
	}
	v, ok := unwrap(m)
	if f, isFaulty := v.(*faultyView); isFaulty {
		return f.inner, true
	}
	return v, ok
}

// Capturing implements InputCapturer by asking the guarded screen.
func (g *GuardedView) Capturing() bool {
	v, ok := g.Screen()
	if !ok {
		return false
	}
	c, ok := v.(InputCapturer)
	return ok && c.Capturing()
}

// Init implements View.
func (g *GuardedView) Init() tea.Cmd {
	return g.b.Init()
}

// Update implements View.
func (g *GuardedView) Update(msg tea.Msg) (View, tea.Cmd) {
	_, cmd := g.b.Update(msg)
	return g, cmd
}

// View implements View.
func (g *GuardedView) View() string {
	return g.b.View()
}
