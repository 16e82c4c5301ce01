package tui

import (
	"strconv"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Ranking column widths.
const (
	rankWidth      = 4
	valueWidth     = 16
	fightTimeWidth = 12
)

// detailView shows one metric at a time: a searchable metric list on the
// left and the ranked players for the active metric on the right.
type detailView struct {
	chrome
	filter FilterManager
}

// NewDetailView creates a new master-detail view.
func NewDetailView(styles StyleManager, filter FilterManager, keys keyMap) View {
	return &detailView{
		chrome: newChrome(styles, keys),
		filter: filter,
	}
}

// Name returns the view's name.
func (dv *detailView) Name() string {
	return ViewDetail
}

// sidebarWidth returns the metric list width for a window width.
func sidebarWidth(width int) int {
	return min(SidebarWidth, max(16, width/3))
}

// Render renders the master-detail view of the active section.
func (dv *detailView) Render(state *State) string {
	state.Layout.Reset()
	width, height := dimensions(state)

	lines := dv.top(state, width)
	lines = append(lines, dv.renderSearchBar(state, width))
	bottom := dv.bottom(state, width)

	bodyY := len(lines)
	bodyHeight := max(3, height-len(lines)-len(bottom))

	sec := state.Section()
	if sec == nil {
		lines = append(lines, padLines([]string{dv.styles.DimText("  No data loaded")}, bodyHeight, width)...)
		return strings.Join(append(lines, bottom...), "\n")
	}

	sw := sidebarWidth(width)
	sidebar := dv.renderSidebar(state, sec, sw, bodyY, bodyHeight)
	panel := dv.renderRanking(state, sec, width-sw-1, sw+1, bodyY, bodyHeight)

	divider := dv.styles.GetStyles().Divider.Render("│")
	for i := 0; i < bodyHeight; i++ {
		lines = append(lines, sidebar[i]+divider+panel[i])
	}
	lines = append(lines, bottom...)

	return strings.Join(lines, "\n")
}

// renderSearchBar shows the metric filter.
func (dv *detailView) renderSearchBar(state *State, width int) string {
	s := dv.styles.GetStyles()
	if dv.filter.IsActive() {
		input := dv.filter.GetFilter()
		return s.SearchActive.Width(width).MaxWidth(width).
			Render(theme.Icons.Search + " " + input.View() + "  │  ↑↓ metric  Enter keep  Esc clear")
	}
	if q := state.Section(); q != nil && q.MetricSearch() != "" {
		return s.SearchApplied.Width(width).MaxWidth(width).
			Render(theme.Icons.Check + " Metrics matching \"" + q.MetricSearch() + "\"  │  / to edit")
	}
	return s.SearchHint.Width(width).MaxWidth(width).
		Render(theme.Icons.Search + " to filter metrics")
}

// renderSidebar lists the filtered metrics around the active one.
func (dv *detailView) renderSidebar(state *State, sec *dashboard.Section, width, y, height int) []string {
	s := dv.styles.GetStyles()
	ds := state.DetailState()
	metrics := sec.FilteredMetrics()
	active := sec.ActiveMetric()

	activeIdx := -1
	for i, m := range metrics {
		if active != nil && m.ID() == active.ID() {
			activeIdx = i
			break
		}
	}

	var lines []string
	if len(metrics) == 0 {
		lines = append(lines, fit(s.Muted.Render(" No metrics match"), width))
		return padLines(lines, height, width)
	}

	cursor := max(activeIdx, 0)
	_, ds.SidebarOffset = clampWindow(cursor, ds.SidebarOffset, len(metrics), height)
	end := min(len(metrics), ds.SidebarOffset+height)

	state.Layout.SidebarWidth = width
	state.Layout.SidebarY = y
	for i := ds.SidebarOffset; i < end; i++ {
		m := metrics[i]
		state.Layout.SidebarIDs = append(state.Layout.SidebarIDs, m.ID())

		label := HighlightMatches(m.Label(), sec.MetricSearch(), func(t string) string {
			return s.HeaderCellSorted.Render(t)
		})
		if i == activeIdx {
			lines = append(lines, s.ListItemSelected.Width(width).MaxWidth(width).Render(m.Label()))
			continue
		}
		lines = append(lines, fit(s.ListItem.Render(label), width))
	}
	return padLines(lines, height, width)
}

// renderRanking draws the ranked rows of the active metric.
func (dv *detailView) renderRanking(state *State, sec *dashboard.Section, width, x, y, height int) []string {
	s := dv.styles.GetStyles()
	m := sec.DetailMatrix()
	metric := sec.ActiveMetric()

	if placeholder := sec.Placeholder(m); placeholder != "" || metric == nil {
		if placeholder == "" {
			placeholder = sec.Spec().EmptyText
		}
		return padLines([]string{fit(s.Placeholder.Render(placeholder), width)}, height, width)
	}

	keys := sec.DetailSortKeys()
	widths := make([]int, len(m.Columns))
	cellsWidth := 0
	for i, col := range m.Columns {
		widths[i] = valueWidth
		if _, ok := col.Metric.(catalog.FightTimeMetric); ok {
			widths[i] = fightTimeWidth
		}
		cellsWidth += widths[i]
	}
	nameWidth := max(8, width-rankWidth-cellsWidth)

	header := s.HeaderCell.Render(alignLeft("#", rankWidth) + alignLeft("Player", nameWidth))
	state.Layout.HeaderY = y
	state.Layout.Columns = state.Layout.Columns[:0]
	cx := x + rankWidth + nameWidth
	for i, col := range m.Columns {
		label, style := col.Label, s.HeaderCell
		if col.ID == m.SortColumnID {
			label += " " + m.SortDirection.Arrow()
			style = s.HeaderCellSorted
		}
		header += style.Render(alignRight(label, widths[i]))
		if i < len(keys) {
			state.Layout.Columns = append(state.Layout.Columns, Span{Start: cx, End: cx + widths[i], ID: keys[i]})
		}
		cx += widths[i]
	}
	lines := []string{fit(header, width)}

	ds := state.DetailState()
	visible := max(1, height-1)
	ds.Cursor, ds.Offset = clampWindow(ds.Cursor, ds.Offset, len(m.Rows), visible)
	end := min(len(m.Rows), ds.Offset+visible)
	state.Layout.RowsY = y + 1
	state.Layout.RowCount = end - ds.Offset

	for i := ds.Offset; i < end; i++ {
		row := m.Rows[i]
		nameStyle, cellStyle := s.RowLabel, s.Cell
		if i == ds.Cursor {
			nameStyle = s.RowCursor
			cellStyle = cellStyle.Background(dv.styles.GetTheme().Overlay)
		}
		line := s.Rank.Render(alignLeft(strconv.Itoa(i+1), rankWidth)) +
			nameStyle.Render(alignLeft(rowLabel(row.Entity), nameWidth))
		for c, col := range m.Columns {
			line += cellStyle.Render(alignRight(row.Values[col.ID], widths[c]))
		}
		lines = append(lines, fit(line, width))
	}
	return padLines(lines, height, width)
}

// Update handles master-detail keys and mouse input.
func (dv *detailView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	sec := state.Section()
	if sec == nil {
		return state, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		dv.handleKey(msg, state, sec)
	case tea.MouseMsg:
		dv.handleMouse(msg, state, sec)
	}
	return state, nil
}

func (dv *detailView) handleKey(msg tea.KeyMsg, state *State, sec *dashboard.Section) {
	ds := state.DetailState()
	rows := len(sec.DetailMatrix().Rows)
	page := max(1, state.Layout.RowCount)

	switch {
	case key.Matches(msg, dv.keys.Up):
		dv.moveMetric(state, sec, -1)
	case key.Matches(msg, dv.keys.Down):
		dv.moveMetric(state, sec, 1)
	case key.Matches(msg, dv.keys.PageUp):
		ds.Cursor -= page
	case key.Matches(msg, dv.keys.PageDown):
		ds.Cursor += page
	case key.Matches(msg, dv.keys.Home):
		ds.Cursor = 0
	case key.Matches(msg, dv.keys.End):
		ds.Cursor = rows - 1
	case key.Matches(msg, dv.keys.Sort):
		dv.sortBy(state, sec, dashboard.SortByValue)
	case key.Matches(msg, dv.keys.SortTime):
		if keys := sec.DetailSortKeys(); len(keys) > 1 {
			dv.sortBy(state, sec, keys[1])
		}
	}
	ds.Cursor = max(0, min(ds.Cursor, rows-1))
}

// moveMetric steps through the sidebar and resets the ranking position.
func (dv *detailView) moveMetric(state *State, sec *dashboard.Section, delta int) {
	sec.MoveActiveMetric(delta)
	ds := state.DetailState()
	ds.Cursor, ds.Offset = 0, 0
}

// sortBy toggles a ranking sort key and reports the new order.
func (dv *detailView) sortBy(state *State, sec *dashboard.Section, by string) {
	sec.ToggleDetailSort(by)
	label := by
	cols := sec.DetailMatrix().Columns
	for i, k := range sec.DetailSortKeys() {
		if k == by && i < len(cols) {
			label = cols[i].Label
		}
	}
	state.SetStatus("Sorted by "+label+" "+sec.DetailSort().Direction.Arrow(), StatusInfo)
}

func (dv *detailView) handleMouse(msg tea.MouseMsg, state *State, sec *dashboard.Section) {
	l := state.Layout
	ds := state.DetailState()
	inSidebar := msg.X < l.SidebarWidth

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inSidebar {
			dv.moveMetric(state, sec, -1)
		} else {
			ds.Cursor = max(0, ds.Cursor-3)
		}
		return
	case tea.MouseButtonWheelDown:
		if inSidebar {
			dv.moveMetric(state, sec, 1)
		} else {
			ds.Cursor += 3
		}
		return
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
	default:
		return
	}

	switch {
	case inSidebar && l.SidebarY >= 0:
		idx := msg.Y - l.SidebarY
		if idx >= 0 && idx < len(l.SidebarIDs) {
			sec.SetActiveMetric(l.SidebarIDs[idx])
			ds.Cursor, ds.Offset = 0, 0
		}

	case msg.Y == l.HeaderY:
		for _, span := range l.Columns {
			if span.Contains(msg.X) {
				dv.sortBy(state, sec, span.ID)
				return
			}
		}

	case l.RowsY >= 0 && msg.Y >= l.RowsY && msg.Y < l.RowsY+l.RowCount:
		ds.Cursor = ds.Offset + msg.Y - l.RowsY
	}
}

// CanHandle returns true if this view can handle the given message.
func (dv *detailView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewDetail
}
