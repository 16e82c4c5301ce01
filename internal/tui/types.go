package tui

import (
	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/scrub"
	"github.com/ikari-pl/go-squadstats/internal/search"
)

// State represents the complete application state.
type State struct {
	// Core data
	Dashboard    *dashboard.Dashboard
	SectionIndex int

	// Current view state
	CurrentView  string
	PreviousView string

	// Window dimensions
	WindowWidth  int
	WindowHeight int

	// View-specific state, per section
	Dense  map[catalog.Domain]*DenseViewState
	Detail map[catalog.Domain]*DetailViewState

	// Horizontal scrolling of the dense table
	Viewport *scrub.Viewport
	Scrubber *scrub.Scrubber

	// Navigation
	Navigator Navigator

	// Hit regions of the last render, used for mouse input.
	Layout Layout

	// Status
	StatusMessage string
	StatusType    string // "info", "success", "warning", "error"
}

// Section returns the active section, or nil for an empty dashboard.
func (s *State) Section() *dashboard.Section {
	if s.Dashboard == nil {
		return nil
	}
	sections := s.Dashboard.Sections()
	if s.SectionIndex < 0 || s.SectionIndex >= len(sections) {
		return nil
	}
	return sections[s.SectionIndex]
}

// Domain returns the domain of the active section.
func (s *State) Domain() catalog.Domain {
	if sec := s.Section(); sec != nil {
		return sec.Spec().Domain
	}
	return ""
}

// DenseState returns the dense table state of the active section.
func (s *State) DenseState() *DenseViewState {
	if s.Dense == nil {
		s.Dense = make(map[catalog.Domain]*DenseViewState)
	}
	d := s.Domain()
	if s.Dense[d] == nil {
		s.Dense[d] = &DenseViewState{}
	}
	return s.Dense[d]
}

// DetailState returns the master-detail state of the active section.
func (s *State) DetailState() *DetailViewState {
	if s.Detail == nil {
		s.Detail = make(map[catalog.Domain]*DetailViewState)
	}
	d := s.Domain()
	if s.Detail[d] == nil {
		s.Detail[d] = &DetailViewState{}
	}
	return s.Detail[d]
}

// SetStatus shows a message in the status bar.
func (s *State) SetStatus(message, statusType string) {
	s.StatusMessage = message
	s.StatusType = statusType
}

// ViewState represents a saved navigation position.
type ViewState struct {
	View    string
	Section catalog.Domain
	Title   string
}

// Label names the position in the history trail.
func (v ViewState) Label() string {
	name := v.Title
	if name == "" {
		name = string(v.Section)
	}
	switch v.View {
	case ViewDetail:
		return name + " (detail)"
	case ViewHelp:
		return "Help"
	}
	return name
}

// DenseViewState holds state specific to the dense table.
type DenseViewState struct {
	Cursor      int // Row under the cursor
	Offset      int // First visible row
	FocusColumn int // Column activated by the sort key
}

// DetailViewState holds state specific to the master-detail view.
type DetailViewState struct {
	Cursor        int
	Offset        int
	SidebarOffset int
}

// Span is a horizontal hit region. Start is inclusive, End exclusive.
type Span struct {
	Start int
	End   int
	ID    string
}

// Contains reports whether x falls in the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Layout records where the last render put each interactive element.
// A negative Y means the element was not drawn.
type Layout struct {
	TabsY int
	Tabs  []Span

	ChipsY      int
	Chips       []Span // ID is the option key, or ChipClearID
	ChipOptions []search.Option

	DropdownY    int
	DropdownRows []int // Option index per line, -1 for group headings

	HeaderY     int
	FrozenWidth int
	Columns     []Span // In content cells, before horizontal scrolling
	RowsY       int
	RowCount    int

	ScrubY int

	SidebarWidth int
	SidebarY     int
	SidebarIDs   []string
}

// Reset marks every element as not drawn.
func (l *Layout) Reset() {
	*l = Layout{
		TabsY:     -1,
		ChipsY:    -1,
		DropdownY: -1,
		HeaderY:   -1,
		RowsY:     -1,
		ScrubY:    -1,
		SidebarY:  -1,
	}
}

// HelpSection represents a section in the help view.
type HelpSection struct {
	Title    string
	Bindings []KeyBinding
}

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
}

// Constants for view names.
const (
	ViewDense  = "dense"
	ViewDetail = "detail"
	ViewHelp   = "help"
)

// ChipClearID is the hit id of the "clear all" chip.
const ChipClearID = "clear"

// Constants for display limits.
const (
	EllipsisString   = "..."
	MaxHistory       = 50
	MaxTrailLength   = 4
	MaxLabelWidth    = 28
	MinLabelWidth    = 12
	MinColumnWidth   = 8
	MaxColumnWidth   = 22
	SidebarWidth     = 32
	ScrollStep       = 8
	ScrubberMinThumb = 2
	MaxDropdownRows  = 10
	MinWindowWidth   = 40
	DefaultWidth     = 80
	DefaultHeight    = 30
)

// StatusType constants
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)
