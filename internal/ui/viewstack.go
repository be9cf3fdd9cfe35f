package ui

// History is the route navigation stack; the top is the current route.
type History struct {
	Stack []string
}

// Push records a visit. Visiting the current route again is a no-op.
func (h *History) Push(path string) {
	if h.Peek() == path {
		return
	}
	h.Stack = append(h.Stack, path)
}

// Back drops the current route and returns the previous one.
// Returns "" and leaves the stack alone when there is nothing to go back to.
func (h *History) Back() string {
	if len(h.Stack) < 2 {
		return ""
	}
	h.Stack = h.Stack[:len(h.Stack)-1]
	return h.Stack[len(h.Stack)-1]
}

// Peek returns the current route, or "" when empty.
func (h *History) Peek() string {
	if len(h.Stack) == 0 {
		return ""
	}
	return h.Stack[len(h.Stack)-1]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.Stack)
}
