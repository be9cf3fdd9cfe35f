package ui

// AppMode is the app's input mode. Keybind hints are filtered by it.
type AppMode int

const (
	ModeBrowse AppMode = iota // keys drive navigation and the current screen
	ModeSearch                // the header quick-access input has focus
	ModeModal                 // an overlay is open
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeSearch:
		return "Search"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
