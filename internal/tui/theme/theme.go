// Package theme provides the colour palettes and pre-built styles of the
// squadstats terminal dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Tertiary  lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Section colors
	Offense    lipgloss.Color
	Defense    lipgloss.Color
	Support    lipgloss.Color
	Healing    lipgloss.Color
	Mitigation lipgloss.Color
	Boons      lipgloss.Color
	Conditions lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
	Highlight lipgloss.Color

	// Gradient colors for effects
	GradientStart lipgloss.Color
	GradientEnd   lipgloss.Color
}

// DefaultTheme returns the default dark theme (Midnight).
func DefaultTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"), // Electric blue
		Secondary: lipgloss.Color("#bc8cff"), // Soft purple
		Tertiary:  lipgloss.Color("#79c0ff"), // Sky blue

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),
		Info:    lipgloss.Color("#58a6ff"),

		Offense:    lipgloss.Color("#ff7b72"),
		Defense:    lipgloss.Color("#79c0ff"),
		Support:    lipgloss.Color("#7ee787"),
		Healing:    lipgloss.Color("#56d364"),
		Mitigation: lipgloss.Color("#ffa657"),
		Boons:      lipgloss.Color("#d2a8ff"),
		Conditions: lipgloss.Color("#e3b341"),

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
		Highlight: lipgloss.Color("#1f6feb"),

		GradientStart: lipgloss.Color("#58a6ff"),
		GradientEnd:   lipgloss.Color("#bc8cff"),
	}
}

// NeonTheme returns a vibrant neon theme.
func NeonTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0a0a0f"),
		Surface: lipgloss.Color("#12121a"),
		Overlay: lipgloss.Color("#1a1a24"),
		Muted:   lipgloss.Color("#3a3a4a"),
		Subtle:  lipgloss.Color("#5a5a6a"),
		Text:    lipgloss.Color("#f0f0f5"),

		Primary:   lipgloss.Color("#00ffff"), // Cyan
		Secondary: lipgloss.Color("#ff00ff"), // Magenta
		Tertiary:  lipgloss.Color("#00ff88"), // Mint

		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0055"),
		Info:    lipgloss.Color("#00ffff"),

		Offense:    lipgloss.Color("#ff0055"),
		Defense:    lipgloss.Color("#00ffff"),
		Support:    lipgloss.Color("#00ff88"),
		Healing:    lipgloss.Color("#88ff00"),
		Mitigation: lipgloss.Color("#ffff00"),
		Boons:      lipgloss.Color("#ff88ff"),
		Conditions: lipgloss.Color("#ffaa00"),

		Border:    lipgloss.Color("#2a2a3a"),
		Selection: lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#0088aa"),

		GradientStart: lipgloss.Color("#00ffff"),
		GradientEnd:   lipgloss.Color("#ff00ff"),
	}
}

// ByName returns the named theme, falling back to the default.
func ByName(name string) *Theme {
	if name == "neon" {
		return NeonTheme()
	}
	return DefaultTheme()
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Layout styles
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Sidebar lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style

	// Section tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Table styles
	HeaderCell       lipgloss.Style
	HeaderCellSorted lipgloss.Style
	HeaderCellFocus  lipgloss.Style
	Cell             lipgloss.Style
	CellSorted       lipgloss.Style
	RowLabel         lipgloss.Style
	RowCursor        lipgloss.Style
	MinionLabel      lipgloss.Style
	Rank             lipgloss.Style
	Placeholder      lipgloss.Style

	// Scrubber styles
	Track lipgloss.Style
	Thumb lipgloss.Style

	// Search styles
	SearchActive   lipgloss.Style
	SearchApplied  lipgloss.Style
	SearchHint     lipgloss.Style
	OptionGroup    lipgloss.Style
	Option         lipgloss.Style
	OptionActive   lipgloss.Style
	OptionSelected lipgloss.Style
	Chip           lipgloss.Style
	ChipClear      lipgloss.Style

	// List styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	// Special styles
	KeyBinding lipgloss.Style
	KeyLabel   lipgloss.Style
	Divider    lipgloss.Style
	Box        lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	s := &Styles{theme: theme}

	// Layout styles
	s.Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 2)

	s.Footer = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Surface).
		Padding(0, 1)

	s.Sidebar = lipgloss.NewStyle().
		Background(theme.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(theme.Border)

	// Component styles
	s.Title = lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true)

	s.Label = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Value = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.Tab = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Padding(0, 1)

	s.TabActive = lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)

	// Table styles
	s.HeaderCell = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Bold(true)

	s.HeaderCellSorted = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	s.HeaderCellFocus = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Overlay).
		Bold(true)

	s.Cell = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.CellSorted = lipgloss.NewStyle().
		Foreground(theme.Tertiary)

	s.RowLabel = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.RowCursor = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Highlight).
		Bold(true)

	s.MinionLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true)

	s.Rank = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Placeholder = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true).
		Padding(1, 2)

	s.Track = lipgloss.NewStyle().
		Foreground(theme.Border)

	s.Thumb = lipgloss.NewStyle().
		Foreground(theme.Primary)

	// Search styles
	s.SearchActive = lipgloss.NewStyle().
		Background(theme.Highlight).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1)

	s.SearchApplied = lipgloss.NewStyle().
		Background(theme.Overlay).
		Foreground(theme.Success).
		Padding(0, 1)

	s.SearchHint = lipgloss.NewStyle().
		Background(theme.Surface).
		Foreground(theme.Muted).
		Padding(0, 1)

	s.OptionGroup = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Padding(0, 1)

	s.Option = lipgloss.NewStyle().
		Foreground(theme.Text).
		Padding(0, 2)

	s.OptionActive = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Selection).
		Bold(true).
		Padding(0, 2)

	s.OptionSelected = lipgloss.NewStyle().
		Foreground(theme.Success).
		Padding(0, 2)

	s.Chip = lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Tertiary).
		Padding(0, 1)

	s.ChipClear = lipgloss.NewStyle().
		Foreground(theme.Error).
		Background(theme.Overlay).
		Padding(0, 1)

	// List styles
	s.ListItem = lipgloss.NewStyle().
		Foreground(theme.Text).
		Padding(0, 1)

	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Selection).
		Bold(true).
		Padding(0, 1)

	// Status styles
	s.Success = lipgloss.NewStyle().
		Foreground(theme.Success)

	s.Warning = lipgloss.NewStyle().
		Foreground(theme.Warning)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error)

	s.Info = lipgloss.NewStyle().
		Foreground(theme.Info)

	s.Muted = lipgloss.NewStyle().
		Foreground(theme.Muted)

	// Special styles
	s.KeyBinding = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.Overlay).
		Padding(0, 1).
		Bold(true)

	s.KeyLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Divider = lipgloss.NewStyle().
		Foreground(theme.Border)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	return s
}

// GetTheme returns the underlying theme.
func (s *Styles) GetTheme() *Theme {
	return s.theme
}

// Icons are the section and UI glyphs.
var Icons = struct {
	Offense    string
	Defense    string
	Support    string
	Healing    string
	Mitigation string
	Boons      string
	Conditions string
	SortDesc   string
	SortAsc    string
	Search     string
	Check      string
	Cross      string
	Minion     string
}{
	Offense:    "⚔",
	Defense:    "🛡",
	Support:    "✚",
	Healing:    "♥",
	Mitigation: "◈",
	Boons:      "✦",
	Conditions: "☠",
	SortDesc:   "↓",
	SortAsc:    "↑",
	Search:     "/",
	Check:      "✓",
	Cross:      "✗",
	Minion:     "↳",
}

// SectionIcon returns the glyph of a section.
func SectionIcon(section string) string {
	switch section {
	case "offense":
		return Icons.Offense
	case "defense":
		return Icons.Defense
	case "support":
		return Icons.Support
	case "healing":
		return Icons.Healing
	case "mitigation":
		return Icons.Mitigation
	case "boons":
		return Icons.Boons
	case "conditions":
		return Icons.Conditions
	default:
		return "•"
	}
}

// SectionColor returns the accent color of a section.
func (t *Theme) SectionColor(section string) lipgloss.Color {
	switch section {
	case "offense":
		return t.Offense
	case "defense":
		return t.Defense
	case "support":
		return t.Support
	case "healing":
		return t.Healing
	case "mitigation":
		return t.Mitigation
	case "boons":
		return t.Boons
	case "conditions":
		return t.Conditions
	default:
		return t.Primary
	}
}
