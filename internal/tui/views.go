package tui

import (
	"fmt"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ═══════════════════════════════════════════════════════════════════════════════
// SHARED CHROME
// ═══════════════════════════════════════════════════════════════════════════════

// chrome renders the parts every section view shares: title bar, section
// tabs, section bar, status line and key help.
type chrome struct {
	styles StyleManager
	keys   keyMap
	help   help.Model
}

func newChrome(styles StyleManager, keys keyMap) chrome {
	t := styles.GetTheme()
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Subtle)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Muted)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(t.Muted)
	return chrome{styles: styles, keys: keys, help: h}
}

// top renders the header, tabs and section bar, recording the tab spans.
func (c chrome) top(state *State, width int) []string {
	title := "SQUADSTATS"
	if state.Dashboard != nil && state.Dashboard.Title() != "" {
		title += " │ " + state.Dashboard.Title()
	}
	lines := strings.Split(c.styles.Header(title, width), "\n")

	tabs, spans := c.renderTabs(state, width)
	state.Layout.TabsY = len(lines)
	state.Layout.Tabs = spans
	lines = append(lines, tabs)

	return append(lines, c.renderSectionBar(state, width))
}

// renderTabs lays the sections out left to right.
func (c chrome) renderTabs(state *State, width int) (string, []Span) {
	s := c.styles.GetStyles()
	var b strings.Builder
	var spans []Span
	x := 0
	if state.Dashboard != nil {
		for i, sec := range state.Dashboard.Sections() {
			domain := string(sec.Spec().Domain)
			label := fmt.Sprintf("%d %s %s", i+1, theme.SectionIcon(domain), sectionName(sec.Spec().Domain))

			style := s.Tab
			if i == state.SectionIndex {
				style = s.TabActive.Background(c.styles.GetTheme().SectionColor(domain))
			}
			rendered := style.Render(label)
			w := ansi.StringWidth(rendered)
			spans = append(spans, Span{Start: x, End: x + w, ID: domain})
			b.WriteString(rendered)
			x += w
		}
	}
	return fit(b.String(), width), spans
}

// renderSectionBar shows the section title and its active settings.
func (c chrome) renderSectionBar(state *State, width int) string {
	sec := state.Section()
	if sec == nil {
		return fit(c.styles.DimText("No sections"), width)
	}
	spec := sec.Spec()

	parts := []string{
		c.styles.Title(spec.Title) + " " + c.styles.Subtitle(spec.Subtitle),
		c.styles.DimText("Mode: ") + sec.Mode().Label(),
	}
	if spec.Categories {
		parts = append(parts, c.styles.DimText("Category: ")+string(sec.Category()))
	}
	if spec.SubSkills {
		parts = append(parts, c.styles.DimText("Res skill: ")+subSkillName(sec))
	}
	if spec.MinionScope {
		parts = append(parts, c.styles.DimText("Scope: ")+string(sec.Scope()))
	}
	if spec.Directions {
		parts = append(parts, c.styles.DimText("Direction: ")+string(sec.Direction()))
	}
	return fit(" "+strings.Join(parts, c.styles.DimText(" │ ")), width)
}

// bottom renders the status line and the key help line.
func (c chrome) bottom(state *State, width int) []string {
	s := c.styles.GetStyles()

	var status string
	switch {
	case state.StatusMessage != "":
		style := s.Info
		switch state.StatusType {
		case StatusSuccess:
			style = s.Success
		case StatusWarning:
			style = s.Warning
		case StatusError:
			style = s.Error
		}
		status = style.Render(state.StatusMessage)
	case state.Navigator != nil && state.Navigator.GetDepth() > 0:
		status = c.styles.DimText("History: " + state.Navigator.RenderPath())
	}

	h := c.help
	h.Width = width - 2
	footer := c.styles.Footer(h.ShortHelpView(c.keys.ShortHelp()), width)

	return []string{fit(" "+status, width), footer}
}

// sectionName is the short tab label of a domain.
func sectionName(d catalog.Domain) string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// subSkillName returns the display name of the selected res-utility skill.
func subSkillName(sec *dashboard.Section) string {
	for _, sk := range sec.SubSkills() {
		if sk.ID == sec.SubSkill() {
			return sk.DisplayName()
		}
	}
	return sec.SubSkill()
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "…")
		w = ansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// dimensions returns the usable window size.
func dimensions(state *State) (int, int) {
	width, height := state.WindowWidth, state.WindowHeight
	if width < MinWindowWidth {
		width = DefaultWidth
	}
	if height < 12 {
		height = DefaultHeight
	}
	return width, height
}

// clampWindow keeps cursor inside [0, n) and the window [offset,
// offset+visible) around it.
func clampWindow(cursor, offset, n, visible int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	if visible < 1 {
		visible = 1
	}
	cursor = max(0, min(cursor, n-1))
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	offset = max(0, min(offset, max(0, n-visible)))
	return cursor, offset
}

// padLines fills lines up to height with blank rows of width cells.
func padLines(lines []string, height, width int) []string {
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines[:height]
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELP VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// helpView implements the View interface for the help overlay.
type helpView struct {
	styles StyleManager
	keys   keyMap
}

// NewHelpView creates a new help view.
func NewHelpView(styles StyleManager, keys keyMap) View {
	return &helpView{
		styles: styles,
		keys:   keys,
	}
}

// Name returns the view's name.
func (hv *helpView) Name() string {
	return ViewHelp
}

// Render renders the help overlay.
func (hv *helpView) Render(state *State) string {
	state.Layout.Reset()
	width, _ := dimensions(state)
	if width > 100 {
		width = 100
	}
	s := hv.styles.GetStyles()

	header := s.Header.Width(width).Render("? KEYBOARD SHORTCUTS")

	var content strings.Builder
	for i, section := range hv.keys.HelpSections() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(s.HeaderCellSorted.Render(section.Title) + "\n")

		for _, binding := range section.Bindings {
			keyStyle := lipgloss.NewStyle().
				Foreground(hv.styles.GetTheme().Support).
				Width(16)

			content.WriteString(fmt.Sprintf("  %s %s\n",
				keyStyle.Render(binding.Key),
				s.Value.Render(binding.Description)))
		}
	}

	box := s.Box.Width(width - 4).Render(strings.TrimRight(content.String(), "\n"))
	footer := hv.styles.Footer("Press ? or Esc to close help", width)

	return header + "\n" + box + "\n" + footer
}

// Update handles view-specific updates.
func (hv *helpView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "?", "esc", "q":
			state.CurrentView = state.PreviousView
			if state.CurrentView == "" || state.CurrentView == ViewHelp {
				state.CurrentView = ViewDense
			}
			return state, nil
		}
	}
	return state, nil
}

// CanHandle returns true if this view can handle the given message.
func (hv *helpView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewHelp
}
