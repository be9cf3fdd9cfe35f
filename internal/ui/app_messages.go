package ui

// NavigateMsg switches the content panel to the route at Path.
type NavigateMsg struct {
	Path string
}

// BackMsg returns to the previously visited route (backspace).
type BackMsg struct{}

// ToggleFaultMsg arms or disarms the injected render fault on the current
// route (SPC f t).
type ToggleFaultMsg struct{}

// ShowFailureLogMsg opens the list of contained failures (SPC f l).
type ShowFailureLogMsg struct{}

// ShowHelpMsg opens the keybinding reference (?).
type ShowHelpMsg struct{}

// FocusSearchMsg moves input focus to the header quick-access field (SPC /).
type FocusSearchMsg struct{}

// QuickAccessMsg is sent when the user submits the header search.
type QuickAccessMsg struct {
	Query string
}

// ShowBroadcastConfirmMsg asks the app to confirm an emergency broadcast.
type ShowBroadcastConfirmMsg struct {
	Team     string
	Priority string
}

// BroadcastSentMsg is sent when the user confirms a broadcast. Nothing is
// delivered anywhere; the emergency screen only records it.
type BroadcastSentMsg struct {
	Team     string
	Priority string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
