package tui

import (
	"strconv"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/search"
	"github.com/ikari-pl/go-squadstats/internal/stats"
	"github.com/ikari-pl/go-squadstats/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// denseView renders a section as a pivot table: a frozen label column on
// the left and horizontally scrolling metric columns.
type denseView struct {
	chrome
	filter FilterManager
}

// NewDenseView creates a new dense table view.
func NewDenseView(styles StyleManager, filter FilterManager, keys keyMap) View {
	return &denseView{
		chrome: newChrome(styles, keys),
		filter: filter,
	}
}

// Name returns the view's name.
func (dv *denseView) Name() string {
	return ViewDense
}

// denseGeometry places the columns of a matrix in content cells.
type denseGeometry struct {
	rankWidth  int
	labelWidth int
	widths     []int
	starts     []int
	content    int
	client     int
}

// frozen is the width of the label column plus its separator.
func (g denseGeometry) frozen() int {
	return g.labelWidth + 1
}

// measureDense sizes the label column and every metric column for width.
func measureDense(m pivot.Matrix, width int) denseGeometry {
	g := denseGeometry{rankWidth: len(strconv.Itoa(len(m.Rows))) + 1}

	g.labelWidth = MinLabelWidth
	for _, r := range m.Rows {
		w := g.rankWidth + ansi.StringWidth(rowLabel(r.Entity))
		if w > g.labelWidth {
			g.labelWidth = w
		}
	}
	g.labelWidth = min(g.labelWidth, MaxLabelWidth, max(MinLabelWidth, width/3))

	g.widths = make([]int, len(m.Columns))
	g.starts = make([]int, len(m.Columns))
	x := 0
	for i, col := range m.Columns {
		// Room for a space and the sort arrow.
		w := ansi.StringWidth(col.Label) + 2
		for _, r := range m.Rows {
			w = max(w, ansi.StringWidth(r.Values[col.ID]))
		}
		w = max(MinColumnWidth, min(w, MaxColumnWidth)) + 1
		g.widths[i] = w
		g.starts[i] = x
		x += w
	}
	g.content = x
	g.client = max(1, width-g.frozen())
	return g
}

// rowLabel is the frozen-column text of an entity.
func rowLabel(e stats.Entity) string {
	if e.Minion != "" {
		return e.DisplayName() + " " + theme.Icons.Minion + " " + e.Minion
	}
	return e.DisplayName()
}

// syncViewport sizes the viewport and the scrubber track to the matrix.
func syncViewport(state *State, g denseGeometry) {
	if state.Viewport == nil {
		return
	}
	state.Viewport.SetSize(float64(g.client), float64(g.content))
	if state.Scrubber != nil {
		state.Scrubber.SetTrackWidth(float64(g.client))
	}
}

// scrollLeft returns the current horizontal offset in cells.
func scrollLeft(state *State) int {
	if state.Viewport == nil {
		return 0
	}
	return int(state.Viewport.Metrics().ScrollLeft)
}

// Render renders the dense table of the active section.
func (dv *denseView) Render(state *State) string {
	state.Layout.Reset()
	width, height := dimensions(state)

	lines := dv.top(state, width)
	lines = append(lines, dv.renderSearchBar(state, width))
	bottom := dv.bottom(state, width)

	bodyY := len(lines)
	bodyHeight := max(3, height-len(lines)-len(bottom)-1)

	sec := state.Section()
	var body []string
	var scrubLine string
	if sec == nil {
		body = []string{dv.styles.DimText("  No data loaded")}
		scrubLine = strings.Repeat(" ", width)
	} else {
		body, scrubLine = dv.renderBody(state, sec, width, bodyY, bodyHeight)
	}

	if dd := dv.filter.Dropdown(); dd.IsOpen() {
		body = dv.overlayDropdown(state, dd, body, width, bodyY, bodyHeight)
	}

	lines = append(lines, padLines(body, bodyHeight, width)...)
	state.Layout.ScrubY = len(lines)
	lines = append(lines, scrubLine)
	lines = append(lines, bottom...)

	return strings.Join(lines, "\n")
}

// renderSearchBar shows the search input, or a hint when it is idle.
func (dv *denseView) renderSearchBar(state *State, width int) string {
	s := dv.styles.GetStyles()
	if dv.filter.IsActive() {
		input := dv.filter.GetFilter()
		return s.SearchActive.Width(width).MaxWidth(width).
			Render(theme.Icons.Search + " " + input.View() + "  │  ↑↓ choose  Enter toggle  Esc close")
	}
	return s.SearchHint.Width(width).MaxWidth(width).
		Render(theme.Icons.Search + " to search stats and players, space to pin a row")
}

// renderBody draws the chips, the header and the visible rows, and returns
// the scrubber line.
func (dv *denseView) renderBody(state *State, sec *dashboard.Section, width, y, height int) ([]string, string) {
	s := dv.styles.GetStyles()
	m := sec.DenseMatrix()
	g := measureDense(m, width)
	syncViewport(state, g)
	left := scrollLeft(state)

	var lines []string
	chips, spans, options := dv.renderChips(sec, width)
	state.Layout.ChipsY = y
	state.Layout.Chips = spans
	state.Layout.ChipOptions = options
	lines = append(lines, chips)

	if placeholder := sec.Placeholder(m); placeholder != "" {
		lines = append(lines, s.Placeholder.Render(placeholder))
		return lines, strings.Repeat(" ", width)
	}

	ds := state.DenseState()
	ds.FocusColumn = max(0, min(ds.FocusColumn, len(m.Columns)-1))

	// Header
	state.Layout.HeaderY = y + len(lines)
	state.Layout.FrozenWidth = g.frozen()
	state.Layout.Columns = make([]Span, len(m.Columns))
	headerCells := make([]cell, len(m.Columns))
	for i, col := range m.Columns {
		state.Layout.Columns[i] = Span{Start: g.starts[i], End: g.starts[i] + g.widths[i], ID: col.ID}

		label := col.Label
		style := s.HeaderCell
		if col.ID == m.SortColumnID {
			label += " " + m.SortDirection.Arrow()
			style = s.HeaderCellSorted
		}
		if i == ds.FocusColumn {
			style = s.HeaderCellFocus
		}
		headerCells[i] = cell{text: alignRight(label, g.widths[i]), style: style}
	}
	frozenHeader := s.HeaderCell.Render(fit(alignLeft("#", g.rankWidth)+"Player", g.labelWidth))
	lines = append(lines, frozenHeader+s.Divider.Render("│")+clipCells(headerCells, g.starts, left, g.client))

	// Rows
	visible := max(1, height-len(lines))
	ds.Cursor, ds.Offset = clampWindow(ds.Cursor, ds.Offset, len(m.Rows), visible)
	state.Layout.RowsY = y + len(lines)
	end := min(len(m.Rows), ds.Offset+visible)
	state.Layout.RowCount = end - ds.Offset

	for i := ds.Offset; i < end; i++ {
		row := m.Rows[i]
		selected := i == ds.Cursor

		labelStyle := s.RowLabel
		if selected {
			labelStyle = s.RowCursor
		}
		label := s.Rank.Render(alignLeft(strconv.Itoa(i+1), g.rankWidth)) +
			labelStyle.Render(rowLabel(row.Entity))

		cells := make([]cell, len(m.Columns))
		for j, col := range m.Columns {
			style := s.Cell
			if col.ID == m.SortColumnID {
				style = s.CellSorted
			}
			if selected {
				style = style.Background(dv.styles.GetTheme().Overlay)
			}
			cells[j] = cell{text: alignRight(row.Values[col.ID], g.widths[j]), style: style}
		}
		lines = append(lines, fit(label, g.labelWidth)+s.Divider.Render("│")+clipCells(cells, g.starts, left, g.client))
	}

	scrub := strings.Repeat(" ", g.frozen()) + renderScrubber(state.Scrubber, g.client, s)
	return lines, scrub
}

// renderChips lists the active selections followed by a clear action.
func (dv *denseView) renderChips(sec *dashboard.Section, width int) (string, []Span, []search.Option) {
	s := dv.styles.GetStyles()
	chips := sec.Chips()
	if len(chips) == 0 {
		return fit(s.Muted.Render("  No filters"), width), nil, nil
	}

	var b strings.Builder
	var spans []Span
	var options []search.Option
	b.WriteString("  ")
	x := 2
	add := func(rendered, id string, opt search.Option) {
		w := ansi.StringWidth(rendered)
		spans = append(spans, Span{Start: x, End: x + w, ID: id})
		options = append(options, opt)
		b.WriteString(rendered + " ")
		x += w + 1
	}
	for _, c := range chips {
		add(s.Chip.Render(c.Option.Label+" "+theme.Icons.Cross), c.Option.Key(), c.Option)
	}
	add(s.ChipClear.Render("clear all"), ChipClearID, search.Option{})

	return fit(b.String(), width), spans, options
}

// overlayDropdown draws the open dropdown over the top of the body.
func (dv *denseView) overlayDropdown(state *State, dd *search.Dropdown, body []string, width, y, height int) []string {
	s := dv.styles.GetStyles()
	matches := dd.Matches()
	boxWidth := min(width, 48)

	var lines []string
	var rows []int
	if len(matches) == 0 {
		lines = append(lines, s.Option.Render("No matches"))
		rows = append(rows, -1)
	}

	// Window the matches around the highlight.
	visible := min(MaxDropdownRows, height-2)
	_, offset := clampWindow(dd.ActiveIndex(), 0, len(matches), visible)
	end := min(len(matches), offset+visible)

	var lastKind search.Kind
	for i := offset; i < end; i++ {
		opt := matches[i]
		if i == offset || opt.Kind != lastKind {
			lines = append(lines, s.OptionGroup.Render(groupTitle(opt.Kind)))
			rows = append(rows, -1)
			lastKind = opt.Kind
		}

		label := opt.Label
		style := s.Option
		if dd.Selected(opt) {
			label = theme.Icons.Check + " " + label
			style = s.OptionSelected
		}
		if i == dd.ActiveIndex() {
			style = s.OptionActive
		}
		label = HighlightMatches(label, dd.Query(), func(m string) string {
			return lipgloss.NewStyle().Underline(true).Render(m)
		})
		lines = append(lines, style.Render(label))
		rows = append(rows, i)
	}

	state.Layout.DropdownY = y
	state.Layout.DropdownRows = rows

	out := make([]string, 0, max(len(body), len(lines)))
	for i, l := range lines {
		rest := ""
		if i < len(body) {
			rest = ansi.Truncate(body[i], width, "")
		}
		line := fit(l, boxWidth)
		if w := width - boxWidth; w > 0 {
			line += fit(cutLeft(rest, boxWidth), w)
		}
		out = append(out, line)
	}
	if len(lines) < len(body) {
		out = append(out, body[len(lines):]...)
	}
	return out
}

// groupTitle names a dropdown group.
func groupTitle(kind search.Kind) string {
	switch kind {
	case search.KindColumn:
		return "Stats"
	case dashboard.MinionKind:
		return "Minion types"
	default:
		return "Players"
	}
}

// Update handles dense table keys and mouse input.
func (dv *denseView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
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

func (dv *denseView) handleKey(msg tea.KeyMsg, state *State, sec *dashboard.Section) {
	width, _ := dimensions(state)
	m := sec.DenseMatrix()
	g := measureDense(m, width)
	syncViewport(state, g)
	ds := state.DenseState()
	page := max(1, state.Layout.RowCount)

	switch {
	case key.Matches(msg, dv.keys.Up):
		ds.Cursor--
	case key.Matches(msg, dv.keys.Down):
		ds.Cursor++
	case key.Matches(msg, dv.keys.PageUp):
		ds.Cursor -= page
	case key.Matches(msg, dv.keys.PageDown):
		ds.Cursor += page
	case key.Matches(msg, dv.keys.Home):
		ds.Cursor = 0
	case key.Matches(msg, dv.keys.End):
		ds.Cursor = len(m.Rows) - 1
	case key.Matches(msg, dv.keys.Left):
		dv.focusColumn(state, g, ds.FocusColumn-1)
	case key.Matches(msg, dv.keys.Right):
		dv.focusColumn(state, g, ds.FocusColumn+1)
	case key.Matches(msg, dv.keys.ScrollLeft):
		state.Viewport.ScrollBy(-ScrollStep)
	case key.Matches(msg, dv.keys.ScrollRight):
		state.Viewport.ScrollBy(ScrollStep)
	case key.Matches(msg, dv.keys.Sort):
		if ds.FocusColumn >= 0 && ds.FocusColumn < len(m.Columns) {
			dv.sortBy(state, sec, m.Columns[ds.FocusColumn].ID)
		}
	case key.Matches(msg, dv.keys.SelectRow):
		if ds.Cursor >= 0 && ds.Cursor < len(m.Rows) {
			e := m.Rows[ds.Cursor].Entity
			opt := search.Option{ID: e.Key(), Label: rowLabel(e), Kind: search.KindEntity}
			if sec.ToggleOption(opt) {
				state.SetStatus("Pinned "+opt.Label, StatusInfo)
			} else {
				state.SetStatus("Unpinned "+opt.Label, StatusInfo)
			}
		}
	}
	ds.Cursor = max(0, min(ds.Cursor, len(m.Rows)-1))
}

// focusColumn moves the column focus and scrolls it into view.
func (dv *denseView) focusColumn(state *State, g denseGeometry, i int) {
	if len(g.widths) == 0 {
		return
	}
	i = max(0, min(i, len(g.widths)-1))
	state.DenseState().FocusColumn = i
	state.Viewport.Reveal(float64(g.starts[i]), float64(g.starts[i]+g.widths[i]))
}

// sortBy toggles the sort on a column and reports the new order.
func (dv *denseView) sortBy(state *State, sec *dashboard.Section, columnID string) {
	sec.ToggleDenseSort(columnID)
	m := sec.DenseMatrix()
	if col, ok := m.ColumnByID(m.SortColumnID); ok {
		state.SetStatus("Sorted by "+col.Label+" "+m.SortDirection.Arrow(), StatusInfo)
	}
}

func (dv *denseView) handleMouse(msg tea.MouseMsg, state *State, sec *dashboard.Section) {
	l := state.Layout
	ds := state.DenseState()

	switch msg.Action {
	case tea.MouseActionMotion:
		if state.Scrubber != nil && state.Scrubber.Dragging() {
			state.Scrubber.PointerMove(float64(msg.X - l.FrozenWidth))
		}
		return
	case tea.MouseActionRelease:
		if state.Scrubber != nil {
			state.Scrubber.PointerUp()
		}
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ds.Cursor = max(0, ds.Cursor-3)
		return
	case tea.MouseButtonWheelDown:
		ds.Cursor += 3
		return
	case tea.MouseButtonWheelLeft:
		state.Viewport.ScrollBy(-ScrollStep)
		return
	case tea.MouseButtonWheelRight:
		state.Viewport.ScrollBy(ScrollStep)
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	// Dropdown clicks never reach the table.
	if dd := dv.filter.Dropdown(); dd.IsOpen() {
		idx := msg.Y - l.DropdownY
		if l.DropdownY >= 0 && idx >= 0 && idx < len(l.DropdownRows) && l.DropdownRows[idx] >= 0 {
			matches := dd.Matches()
			if i := l.DropdownRows[idx]; i < len(matches) {
				dd.Select(matches[i])
				dv.filter.SetFilterText("")
				return
			}
		}
		dd.ClickOutside()
		return
	}

	switch {
	case msg.Y == l.ChipsY:
		for i, span := range l.Chips {
			if !span.Contains(msg.X) {
				continue
			}
			if span.ID == ChipClearID {
				sec.ClearSelections()
				state.SetStatus("Cleared selections", StatusInfo)
			} else {
				sec.ToggleOption(l.ChipOptions[i])
			}
			return
		}

	case msg.Y == l.HeaderY && msg.X >= l.FrozenWidth:
		x := msg.X - l.FrozenWidth + scrollLeft(state)
		for i, span := range l.Columns {
			if span.Contains(x) {
				ds.FocusColumn = i
				dv.sortBy(state, sec, span.ID)
				return
			}
		}

	case l.RowsY >= 0 && msg.Y >= l.RowsY && msg.Y < l.RowsY+l.RowCount:
		ds.Cursor = ds.Offset + msg.Y - l.RowsY

	case msg.Y == l.ScrubY && msg.X >= l.FrozenWidth && state.Scrubber != nil:
		x := float64(msg.X - l.FrozenWidth)
		if !state.Scrubber.PointerDown(x) {
			state.Scrubber.TrackClick(x)
		}
	}
}

// CanHandle returns true if this view can handle the given message.
func (dv *denseView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewDense
}

// ═══════════════════════════════════════════════════════════════════════════════
// CELL CLIPPING
// ═══════════════════════════════════════════════════════════════════════════════

// cell is a plain-text table cell and the style it is drawn with.
type cell struct {
	text  string
	style lipgloss.Style
}

// clipCells draws the part of a row of cells that falls inside the window
// [left, left+client). Cells are styled after clipping so no escape sequence
// is ever cut.
func clipCells(cells []cell, starts []int, left, client int) string {
	var b strings.Builder
	drawn := 0
	for i, c := range cells {
		start := starts[i]
		end := start + ansi.StringWidth(c.text)
		from, to := max(start, left), min(end, left+client)
		if from >= to {
			continue
		}
		part := sliceCells(c.text, from-start, to-start)
		b.WriteString(c.style.Render(part))
		drawn += to - from
	}
	if drawn < client {
		b.WriteString(strings.Repeat(" ", client-drawn))
	}
	return b.String()
}

// sliceCells returns the cells [from, to) of a plain string. A wide rune cut
// by either edge is replaced by spaces.
func sliceCells(s string, from, to int) string {
	var b strings.Builder
	pos := 0
	for _, r := range s {
		if pos >= to {
			break
		}
		w := ansi.StringWidth(string(r))
		switch {
		case pos >= from && pos+w <= to:
			b.WriteRune(r)
		case pos+w > from:
			b.WriteString(strings.Repeat(" ", min(pos+w, to)-max(pos, from)))
		}
		pos += w
	}
	return b.String()
}

// cutLeft drops the first n cells of a plain or styled string.
func cutLeft(s string, n int) string {
	w := ansi.StringWidth(s)
	if n >= w {
		return ""
	}
	return sliceCells(ansi.Strip(s), n, w)
}

// alignRight right-aligns text in a column of width cells, keeping one
// trailing gap.
func alignRight(text string, width int) string {
	inner := width - 1
	if ansi.StringWidth(text) > inner {
		text = ansi.Truncate(text, inner, "…")
	}
	return strings.Repeat(" ", inner-ansi.StringWidth(text)) + text + " "
}

// alignLeft left-aligns text in width cells.
func alignLeft(text string, width int) string {
	if ansi.StringWidth(text) > width {
		return ansi.Truncate(text, width, "")
	}
	return text + strings.Repeat(" ", width-ansi.StringWidth(text))
}
