package tui

import "strings"

// navigator implements the Navigator interface.
type navigator struct {
	stack []ViewState
}

// NewNavigator creates a new Navigator instance.
func NewNavigator() Navigator {
	return &navigator{
		stack: make([]ViewState, 0),
	}
}

// PushState saves a position. The oldest entry is dropped past MaxHistory.
func (n *navigator) PushState(state ViewState) {
	if len(n.stack) >= MaxHistory {
		n.stack = n.stack[1:]
	}
	n.stack = append(n.stack, state)
}

// PopState returns to the previous position.
func (n *navigator) PopState() (ViewState, bool) {
	if len(n.stack) == 0 {
		return ViewState{}, false
	}

	last := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return last, true
}

// PeekState returns the top state without removing it.
func (n *navigator) PeekState() (ViewState, bool) {
	if len(n.stack) == 0 {
		return ViewState{}, false
	}
	return n.stack[len(n.stack)-1], true
}

// GetDepth returns the history depth.
func (n *navigator) GetDepth() int {
	return len(n.stack)
}

// Clear empties the history.
func (n *navigator) Clear() {
	n.stack = make([]ViewState, 0)
}

// RenderPath renders the last MaxTrailLength positions, oldest first.
func (n *navigator) RenderPath() string {
	if len(n.stack) == 0 {
		return ""
	}

	start := 0
	if len(n.stack) > MaxTrailLength {
		start = len(n.stack) - MaxTrailLength
	}

	var parts []string
	if start > 0 {
		parts = append(parts, EllipsisString)
	}
	for _, s := range n.stack[start:] {
		parts = append(parts, s.Label())
	}
	return strings.Join(parts, " › ")
}
