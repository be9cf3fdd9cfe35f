package ui

import tea "github.com/charmbracelet/bubbletea"

// send returns a command that emits msg.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// newKeybindRegistry registers the app-wide bindings: quit, help, quick
// access, history, the fault drill and one go-to binding per route.
func newKeybindRegistry(routes []Route) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.BindForModes("SPC q", tea.Quit, "Quit", ModeBrowse)
	reg.BindForModes("?", send(ShowHelpMsg{}), "Help", ModeBrowse)
	reg.BindForModes("SPC /", send(FocusSearchMsg{}), "Quick access", ModeBrowse)
	reg.BindForModes("SPC b", send(BackMsg{}), "Back", ModeBrowse)

	reg.Group("g", "Go to")
	for _, r := range routes {
		reg.BindForModes("SPC g "+r.Key, send(NavigateMsg{Path: r.Path}), r.Label, ModeBrowse)
	}

	reg.Group("f", "Fault drill")
	reg.BindForModes("SPC f t", send(ToggleFaultMsg{}), "Toggle render fault", ModeBrowse)
	reg.BindForModes("SPC f l", send(ShowFailureLogMsg{}), "Failure log", ModeBrowse)
	return reg
}
