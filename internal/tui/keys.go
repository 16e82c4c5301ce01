package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every key binding of the dashboard.
type keyMap struct {
	// Global
	Quit          key.Binding
	Back          key.Binding
	Help          key.Binding
	NextSection   key.Binding
	PrevSection   key.Binding
	JumpSection   key.Binding
	ToggleView    key.Binding
	CycleMode     key.Binding
	CycleCategory key.Binding
	CycleSkill    key.Binding
	ToggleScope   key.Binding
	Direction     key.Binding
	Search        key.Binding
	ClearAll      key.Binding
	RoundCounts   key.Binding
	Compact       key.Binding

	// Tables
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Sort        key.Binding
	SortTime    key.Binding
	SelectRow   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:          key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "back / quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextSection:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		JumpSection:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump to section")),
		ToggleView:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "table / detail")),
		CycleMode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "view mode")),
		CycleCategory: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "healing category")),
		CycleSkill:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "res utility skill")),
		ToggleScope:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "players / minions")),
		Direction:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "outgoing / incoming")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearAll:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selections")),
		RoundCounts:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "round counts")),
		Compact:       key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "compact numbers")),

		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous column")),
		Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		ScrollLeft:  key.NewBinding(key.WithKeys("h", "shift+left"), key.WithHelp("h", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("l", "shift+right"), key.WithHelp("l", "scroll right")),
		Sort:        key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("s/enter", "sort column")),
		SortTime:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "sort by fight time / damage")),
		SelectRow:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "filter to row")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.ToggleView, k.CycleMode, k.Sort, k.Search, k.Help, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.JumpSection, k.ToggleView, k.Help, k.Back, k.Quit},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Left, k.Right, k.ScrollLeft, k.ScrollRight, k.Sort, k.SortTime, k.SelectRow},
		{k.CycleMode, k.CycleCategory, k.CycleSkill, k.ToggleScope, k.Direction, k.RoundCounts, k.Compact},
		{k.Search, k.ClearAll},
	}
}

// HelpSections groups FullHelp under titles for the help view.
func (k keyMap) HelpSections() []HelpSection {
	titles := []string{"Navigation", "Rows", "Columns & Sorting", "Display", "Filtering"}
	full := k.FullHelp()

	sections := make([]HelpSection, 0, len(full))
	for i, group := range full {
		section := HelpSection{Title: titles[i]}
		for _, b := range group {
			h := b.Help()
			section.Bindings = append(section.Bindings, KeyBinding{Key: h.Key, Description: h.Desc})
		}
		sections = append(sections, section)
	}
	return sections
}

// DefaultKeyBindings returns the default set of key bindings.
func DefaultKeyBindings() []HelpSection {
	return defaultKeyMap().HelpSections()
}
