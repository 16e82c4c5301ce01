package tui

import (
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// styleManager implements the StyleManager interface over a theme.
type styleManager struct {
	theme  *theme.Theme
	styles *theme.Styles

	highlightStyle lipgloss.Style
	errorStyle     lipgloss.Style
	successStyle   lipgloss.Style
	dimStyle       lipgloss.Style
	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
}

// NewStyleManager creates a StyleManager for the named theme.
func NewStyleManager(themeName string) StyleManager {
	t := theme.ByName(themeName)
	s := theme.NewStyles(t)

	return &styleManager{
		theme:  t,
		styles: s,

		highlightStyle: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Selection).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Bold(true).
			Padding(0, 1),

		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Success).
			Bold(true).
			Padding(0, 1),

		dimStyle: lipgloss.NewStyle().
			Foreground(t.Muted),

		titleStyle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),

		subtitleStyle: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),
	}
}

// Header renders the title bar with a gradient line below it.
func (s *styleManager) Header(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	header := s.styles.Header.
		Width(width).
		MaxWidth(width).
		Render(theme.Icons.Offense + " " + text)

	return header + "\n" + s.renderGradientLine(width)
}

// renderGradientLine creates the accent line under the header.
func (s *styleManager) renderGradientLine(width int) string {
	var b strings.Builder
	colors := []lipgloss.Color{
		s.theme.Primary,
		s.theme.Secondary,
		s.theme.Tertiary,
		s.theme.Secondary,
		s.theme.Primary,
	}

	segmentWidth := width / len(colors)
	for i, color := range colors {
		segment := strings.Repeat("▀", segmentWidth)
		if i == len(colors)-1 {
			// Fill remaining width
			segment = strings.Repeat("▀", width-i*segmentWidth)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(segment))
	}

	return b.String()
}

// Footer renders a footer line.
func (s *styleManager) Footer(text string, width int) string {
	return s.styles.Footer.
		Width(width).
		MaxWidth(width).
		Render(text)
}

// SelectedItem renders a selected item with highlighting.
func (s *styleManager) SelectedItem(text string) string {
	return s.highlightStyle.Render(text)
}

// Error renders error text.
func (s *styleManager) Error(text string) string {
	return s.errorStyle.Render(text)
}

// Success renders success text.
func (s *styleManager) Success(text string) string {
	return s.successStyle.Render(text)
}

// DimText renders text with dimmed/grayed out styling.
func (s *styleManager) DimText(text string) string {
	return s.dimStyle.Render(text)
}

// Title renders a title.
func (s *styleManager) Title(text string) string {
	return s.titleStyle.Render(text)
}

// Subtitle renders a subtitle.
func (s *styleManager) Subtitle(text string) string {
	return s.subtitleStyle.Render(text)
}

// SectionBadge renders a section label on its accent color.
func (s *styleManager) SectionBadge(section, label string) string {
	return lipgloss.NewStyle().
		Foreground(s.theme.Base).
		Background(s.theme.SectionColor(section)).
		Bold(true).
		Padding(0, 1).
		Render(theme.SectionIcon(section) + " " + label)
}

// Separator renders a visual separator line.
func (s *styleManager) Separator(width int) string {
	if width <= 0 {
		width = 60
	}
	return s.styles.Divider.Render(strings.Repeat("─", width))
}

// GetStyles returns the underlying theme styles.
func (s *styleManager) GetStyles() *theme.Styles {
	return s.styles
}

// GetTheme returns the underlying theme.
func (s *styleManager) GetTheme() *theme.Theme {
	return s.theme
}
