// Package tui provides a terminal user interface for browsing the stats
// tables of a squad combat-log dataset.
package tui

import (
	"context"

	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/search"
	"github.com/ikari-pl/go-squadstats/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI provides the main terminal user interface.
type TUI interface {
	// Run starts the TUI over the dashboard and blocks until the user exits.
	Run(ctx context.Context, dash *dashboard.Dashboard) error
}

// Model represents the application state for the TUI.
type Model interface {
	// Init initializes the model.
	Init() tea.Cmd

	// Update handles messages and updates the model.
	Update(tea.Msg) (tea.Model, tea.Cmd)

	// View renders the current view.
	View() string
}

// ViewManager resolves view names to views and decides view transitions.
type ViewManager interface {
	// Current returns the view named by state.CurrentView.
	Current(state *State) View

	// Lookup returns a view by name.
	Lookup(name string) (View, bool)

	// Toggle returns the view that follows name when switching between
	// the dense table and the master-detail view.
	Toggle(name string) string

	// Restorable reports whether back navigation may return to name.
	Restorable(name string) bool
}

// View represents a single view in the TUI.
type View interface {
	// Name returns the view's name.
	Name() string

	// Render renders the view with the given model state.
	Render(state *State) string

	// Update handles view-specific updates.
	Update(msg tea.Msg, state *State) (*State, tea.Cmd)

	// CanHandle returns true if this view can handle the given message.
	CanHandle(msg tea.Msg, state *State) bool
}

// Navigator manages the section and view history.
type Navigator interface {
	// PushState saves the current position to the history.
	PushState(state ViewState)

	// PopState returns to the previous position.
	PopState() (ViewState, bool)

	// PeekState returns the previous position without removing it.
	PeekState() (ViewState, bool)

	// GetDepth returns the history depth.
	GetDepth() int

	// Clear empties the history.
	Clear()

	// RenderPath renders the most recent history entries as a trail.
	RenderPath() string
}

// StyleManager provides consistent styling across the TUI.
type StyleManager interface {
	// Header renders the title bar with a gradient underline.
	Header(text string, width int) string

	// Footer renders a footer line.
	Footer(text string, width int) string

	// SelectedItem renders a selected item with highlighting.
	SelectedItem(text string) string

	// Error renders error text.
	Error(text string) string

	// Success renders success text.
	Success(text string) string

	// DimText renders text with dimmed/grayed out styling.
	DimText(text string) string

	// Title renders a title.
	Title(text string) string

	// Subtitle renders a subtitle.
	Subtitle(text string) string

	// SectionBadge renders the badge of a section.
	SectionBadge(section, label string) string

	// Separator renders a visual separator.
	Separator(width int) string

	// GetStyles returns the underlying theme styles.
	GetStyles() *theme.Styles

	// GetTheme returns the underlying theme.
	GetTheme() *theme.Theme
}

// FilterManager owns the search input and the dropdown it drives.
type FilterManager interface {
	// Bind points the dropdown at a section's options and selections.
	Bind(section *dashboard.Section)

	// Dropdown returns the dropdown of the bound section.
	Dropdown() *search.Dropdown

	// IsActive returns true if the input has focus.
	IsActive() bool

	// SetActive focuses or blurs the input.
	SetActive(active bool)

	// GetFilter returns the input model.
	GetFilter() textinput.Model

	// UpdateInput forwards a message to the input.
	UpdateInput(msg tea.Msg) tea.Cmd

	// ClearFilter clears the input and closes the dropdown.
	ClearFilter()

	// GetFilterText returns the current input text.
	GetFilterText() string

	// SetFilterText sets the input text.
	SetFilterText(text string)
}
