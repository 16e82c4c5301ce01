package tui

import (
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/search"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// filterManager implements the FilterManager interface.
type filterManager struct {
	input    textinput.Model
	active   bool
	dropdown *search.Dropdown
}

// NewFilterManager creates a new FilterManager instance.
func NewFilterManager() FilterManager {
	input := textinput.New()
	input.Placeholder = "Search stats or players..."
	input.CharLimit = 64
	input.Width = 40
	input.Prompt = ""

	return &filterManager{
		input:    input,
		dropdown: search.NewDropdown(nil, nil, nil),
	}
}

// Bind points the dropdown at a section. The input is cleared.
func (fm *filterManager) Bind(section *dashboard.Section) {
	fm.input.SetValue("")
	if section == nil {
		fm.dropdown = search.NewDropdown(nil, nil, nil)
		return
	}
	fm.dropdown = search.NewDropdown(
		search.NewIndex(section.FilterOptions()),
		func(opt search.Option) { section.ToggleOption(opt) },
		section.IsSelected,
	)
	if fm.active {
		fm.dropdown.Focus()
	}
}

// Dropdown returns the dropdown of the bound section.
func (fm *filterManager) Dropdown() *search.Dropdown {
	return fm.dropdown
}

// IsActive returns true if the input has focus.
func (fm *filterManager) IsActive() bool {
	return fm.active
}

// GetFilter returns the input model.
func (fm *filterManager) GetFilter() textinput.Model {
	return fm.input
}

// SetActive focuses or blurs the input.
func (fm *filterManager) SetActive(active bool) {
	fm.active = active
	if active {
		fm.input.Focus()
	} else {
		fm.input.Blur()
	}
}

// UpdateInput forwards a message to the input.
func (fm *filterManager) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fm.input, cmd = fm.input.Update(msg)
	return cmd
}

// ClearFilter clears the input, closes the dropdown and drops focus.
func (fm *filterManager) ClearFilter() {
	fm.input.SetValue("")
	fm.dropdown.SetQuery("")
	fm.dropdown.Close()
	fm.SetActive(false)
}

// GetFilterText returns the current input text.
func (fm *filterManager) GetFilterText() string {
	return fm.input.Value()
}

// SetFilterText sets the input text.
func (fm *filterManager) SetFilterText(text string) {
	fm.input.SetValue(text)
}

// HighlightMatches wraps the first case-insensitive match of pattern in text.
func HighlightMatches(text, pattern string, highlightFn func(string) string) string {
	if pattern == "" {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerPattern := strings.ToLower(pattern)
	// Byte offsets only line up when lowering kept the length.
	if len(lowerText) != len(text) {
		return text
	}

	idx := strings.Index(lowerText, lowerPattern)
	if idx == -1 {
		return text
	}

	before := text[:idx]
	match := text[idx : idx+len(lowerPattern)]
	after := text[idx+len(lowerPattern):]

	return before + highlightFn(match) + after
}
