package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("j", nil, "")

	if reg.Lookup("ctrl+c", ModeBrowse) == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("SPC q", ModeBrowse) == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q", ModeBrowse) == nil {
		t.Error("expected space to normalize to SPC")
	}
	if reg.Lookup("unknown", ModeBrowse) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFiltering(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForModes("SPC f t", tea.Quit, "Toggle render fault", ModeBrowse)

	tests := []struct {
		mode  AppMode
		bound bool
	}{
		{ModeBrowse, true},
		{ModeSearch, false},
		{ModeModal, false},
	}
	for _, tt := range tests {
		if got := reg.Lookup("SPC f t", tt.mode) != nil; got != tt.bound {
			t.Errorf("Lookup in %s: bound=%v, want %v", tt.mode, got, tt.bound)
		}
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := newKeybindRegistry(Routes())

	top := reg.LeaderHints("", ModeBrowse)
	if top["g"] != "Go to" {
		t.Errorf("g hint = %q, want group label", top["g"])
	}
	if top["f"] != "Fault drill" {
		t.Errorf("f hint = %q, want group label", top["f"])
	}
	if top["q"] != "Quit" {
		t.Errorf("q hint = %q", top["q"])
	}

	goTo := reg.LeaderHints("SPC g", ModeBrowse)
	if len(goTo) != len(Routes()) {
		t.Errorf("expected one go-to hint per route, got %d", len(goTo))
	}
	if goTo["e"] != "Emergency" {
		t.Errorf("SPC g e hint = %q", goTo["e"])
	}

	if hints := reg.LeaderHints("", ModeModal); len(hints) != 0 {
		t.Errorf("expected no leader hints in modal mode, got %v", hints)
	}
}

func TestKeybindRegistry_AllSorted(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	all := reg.All(ModeBrowse)
	if len(all) == 0 {
		t.Fatal("expected bindings")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Help().Key > all[i].Help().Key {
			t.Errorf("bindings not sorted: %q before %q", all[i-1].Help().Key, all[i].Help().Key)
		}
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "x")
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"), ModeBrowse)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	consumed, cmd := h.Handle(keyMsg("g"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Fatalf("g: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := h.Sequence(); got != "SPC g" {
		t.Errorf("Sequence() = %q, want SPC g", got)
	}
	_, cmd = h.Handle(keyMsg("p"), ModeBrowse)
	if cmd == nil {
		t.Fatal("expected command for SPC g p")
	}
	if msg, ok := cmd().(NavigateMsg); !ok || msg.Path != "/patients" {
		t.Errorf("SPC g p produced %#v", cmd())
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	consumed, cmd := h.Handle(keyMsg("z"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("dead-end sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "x")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("?"), ModeBrowse)
	if !consumed || cmd == nil {
		t.Fatalf("?: consumed=%v cmd=%v", consumed, cmd)
	}
	if _, ok := cmd().(ShowHelpMsg); !ok {
		t.Errorf("? produced %T", cmd())
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	h := NewKeyHandler(reg)

	for _, k := range []string{"j", "k", "enter", "q"} {
		if consumed, _ := h.Handle(keyMsg(k), ModeBrowse); consumed {
			t.Errorf("unbound %s should not be consumed", k)
		}
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := newKeybindRegistry(Routes())
	h := NewKeyHandler(reg)

	if got := RenderKeybindHelp(h, ModeBrowse); got != "" {
		t.Errorf("expected no hint bar before SPC, got %q", got)
	}
	h.Handle(keyMsg(" "), ModeBrowse)
	got := RenderKeybindHelp(h, ModeBrowse)
	for _, want := range []string{"Go to", "Fault drill", "cancel"} {
		if !strings.Contains(got, want) {
			t.Errorf("hint bar missing %q:\n%s", want, got)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeKeys sends each rune of s as a key press.
func typeKeys(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}
