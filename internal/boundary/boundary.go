package boundary

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Factory builds the guarded subtree. It is called on mount and again on
// every retry, so each retry starts from a fresh model.
type Factory func() (tea.Model, error)

// RecoverMsg asks the boundary that issued it to perform the remount for a
// pending retry. It is produced by the command returned from Retry.
//
// Parents that hold several boundaries can route it with Target. A boundary
// ignores recover messages issued by another boundary.
type RecoverMsg struct {
	target  *Boundary
	attempt int
}

// Target returns the boundary the message belongs to.
func (m RecoverMsg) Target() *Boundary { return m.target }

// Boundary mounts a subtree and contains failures raised while it is built,
// initialised, updated or rendered. A contained failure replaces the subtree
// with a fallback view offering a single retry action.
//
// All methods must be called from the Bubble Tea event loop.
type Boundary struct {
	name     string
	mount    Factory
	child    tea.Model
	state    State
	attempt  int
	failures int

	reporter  Reporter
	retryKeys map[string]bool
	fallback  func(FallbackState) string
	now       func() time.Time
	newID     func() string

	width, height int
}

var _ tea.Model = (*Boundary)(nil)

// Option configures a Boundary.
type Option func(*Boundary)

// WithReporter sets the observability sink. The default discards failures.
func WithReporter(r Reporter) Option {
	return func(b *Boundary) { b.reporter = r }
}

// WithRetryKeys replaces the keys that trigger a retry from the fallback.
func WithRetryKeys(keys ...string) Option {
	return func(b *Boundary) {
		b.retryKeys = make(map[string]bool, len(keys))
		for _, k := range keys {
			b.retryKeys[k] = true
		}
	}
}

// WithFallback replaces the fallback renderer.
func WithFallback(render func(FallbackState) string) Option {
	return func(b *Boundary) { b.fallback = render }
}

// WithClock sets the time source used for failure timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Boundary) { b.now = now }
}

// New creates a Healthy boundary around the subtree built by mount. The
// subtree is not built until Init.
func New(name string, mount Factory, opts ...Option) *Boundary {
	b := &Boundary{
		name:      name,
		mount:     mount,
		reporter:  ReporterFunc(func(error, FailureContext) {}),
		retryKeys: map[string]bool{"enter": true, "r": true},
		fallback:  RenderFallback,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the boundary's diagnostic name.
func (b *Boundary) Name() string { return b.name }

// State returns the current lifecycle state.
func (b *Boundary) State() State { return b.state }

// Failed reports whether the fallback is showing.
func (b *Boundary) Failed() bool { return b.state != Healthy }

// Recovering reports whether a retry is in flight.
func (b *Boundary) Recovering() bool { return b.state == Recovering }

// Failures returns how many failures have been reported. Diagnostic only.
func (b *Boundary) Failures() int { return b.failures }

// Child returns the mounted subtree, or nil while the fallback is showing.
func (b *Boundary) Child() tea.Model {
	if b.state != Healthy {
		return nil
	}
	return b.child
}

// Init mounts the guarded subtree.
func (b *Boundary) Init() tea.Cmd {
	child, cmd, phase, err := b.build()
	if err != nil {
		b.fail(err, phase, nil)
		return nil
	}
	b.child = child
	b.state = Healthy
	return cmd
}

// Update forwards msg to the subtree while Healthy. While Failed it handles
// the retry keys; while Recovering retry keys are ignored.
func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RecoverMsg:
		if msg.target != b {
			return b, nil
		}
		return b, b.remount(msg.attempt)
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	}

	switch b.state {
	case Healthy:
		if b.child == nil {
			return b, nil
		}
		var (
			next tea.Model
			cmd  tea.Cmd
		)
		if err := contain(func() { next, cmd = b.child.Update(msg) }); err != nil {
			b.fail(err, PhaseUpdate, msg)
			return b, nil
		}
		if next == nil {
			b.fail(fmt.Errorf("update %s: view returned no model", b.name), PhaseUpdate, msg)
			return b, nil
		}
		b.child = next
		return b, cmd
	case Failed:
		if k, ok := msg.(tea.KeyMsg); ok && b.retryKeys[k.String()] {
			return b, b.Retry()
		}
	}
	return b, nil
}

// View renders the subtree while Healthy and the fallback otherwise. A panic
// during rendering moves the boundary to Failed and the fallback is returned
// for the same pass.
func (b *Boundary) View() string {
	if b.state == Healthy {
		if b.child == nil {
			return ""
		}
		var out string
		err := contain(func() { out = b.child.View() })
		if err == nil {
			return out
		}
		b.fail(err, PhaseRender, nil)
	}
	return b.fallback(FallbackState{
		Name:       b.name,
		Recovering: b.state == Recovering,
		Width:      b.width,
	})
}

// Retry starts a recovery attempt. It is a no-op unless the boundary is
// Failed, so repeated triggers while Recovering start nothing.
//
// The state moves to Recovering immediately; the remount happens when the
// returned command's RecoverMsg is delivered back to Update.
func (b *Boundary) Retry() tea.Cmd {
	if b.state != Failed {
		return nil
	}
	b.state = Recovering
	b.attempt++
	msg := RecoverMsg{target: b, attempt: b.attempt}
	return func() tea.Msg { return msg }
}

// remount performs the remount for attempt. Recovering is released on every
// exit path, including a panic from the reporter.
func (b *Boundary) remount(attempt int) tea.Cmd {
	if b.state != Recovering || attempt != b.attempt {
		return nil
	}
	defer func() {
		if b.state == Recovering {
			b.state = Failed
		}
	}()

	child, cmd, _, err := b.build()
	if err == nil {
		// Probe one render so a subtree that fails straight away is caught
		// here instead of flipping back to Healthy.
		err = contain(func() { _ = child.View() })
	}
	if err != nil {
		b.fail(fmt.Errorf("retry %d: %w", attempt, err), PhaseRetry, nil)
		return nil
	}
	b.child = child
	b.state = Healthy
	return cmd
}

// build runs the factory and the new subtree's Init under containment.
func (b *Boundary) build() (tea.Model, tea.Cmd, Phase, error) {
	var (
		child tea.Model
		cmd   tea.Cmd
		ferr  error
	)
	if err := contain(func() { child, ferr = b.mount() }); err != nil {
		return nil, nil, PhaseMount, err
	}
	if ferr != nil {
		return nil, nil, PhaseMount, fmt.Errorf("mount %s: %w", b.name, ferr)
	}
	if child == nil {
		return nil, nil, PhaseMount, fmt.Errorf("mount %s: factory returned no view", b.name)
	}
	var sizeCmd tea.Cmd
	if b.width > 0 || b.height > 0 {
		size := tea.WindowSizeMsg{Width: b.width, Height: b.height}
		if err := contain(func() { child, sizeCmd = child.Update(size) }); err != nil {
			return nil, nil, PhaseInit, err
		}
		if child == nil {
			return nil, nil, PhaseInit, fmt.Errorf("mount %s: resize returned no model", b.name)
		}
	}
	if err := contain(func() { cmd = child.Init() }); err != nil {
		return nil, nil, PhaseInit, err
	}
	return child, tea.Batch(sizeCmd, cmd), "", nil
}

// fail moves to Failed, drops the subtree and notifies the reporter.
func (b *Boundary) fail(err error, phase Phase, msg tea.Msg) {
	b.state = Failed
	b.child = nil
	b.failures++
	fc := FailureContext{
		ID:       b.newID(),
		Boundary: b.name,
		Phase:    phase,
		Attempt:  b.attempt,
		Stack:    stackOf(err),
		At:       b.now(),
	}
	if msg != nil {
		fc.MsgType = fmt.Sprintf("%T", msg)
	}
	b.notifyFailure(err, fc)
}

// notifyFailure is the capture hook. It runs outside contain.
func (b *Boundary) notifyFailure(err error, fc FailureContext) {
	b.reporter.Report(err, fc)
}
