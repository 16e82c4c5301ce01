package tui

import (
	"strings"
	"testing"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// Fixtures
// ============================================================================

func testDataset() *stats.Dataset {
	return &stats.Dataset{
		Title: "Reset night",
		Sections: map[catalog.Domain]stats.Section{
			catalog.DomainOffense: {Players: []stats.Entity{
				{Account: "Alice", ActiveMs: 60000, Totals: map[string]float64{"damage": 1200, "directDmg": 900, "downed": 2}},
				{Account: "Bob", ActiveMs: 30000, Totals: map[string]float64{"damage": 300, "directDmg": 1000, "downed": 5}},
				{Account: "Carol", ActiveMs: 60000, Totals: map[string]float64{"damage": 1200, "directDmg": 100}},
			}},
			catalog.DomainHealing: {
				Players: []stats.Entity{
					{Account: "Alice", ActiveMs: 10000, Totals: map[string]float64{"healing": 5000, "squadHealing": 4000}},
				},
			},
			catalog.DomainMitigation: {
				Players: []stats.Entity{{Account: "Alice", ActiveMs: 1000, Totals: map[string]float64{"totalMitigation": 50}}},
				Minions: []stats.Entity{
					{Account: "Alice", Minion: "Jade Mech", ActiveMs: 1000, Totals: map[string]float64{"totalMitigation": 10}},
				},
			},
			catalog.DomainConditions: {
				Players: []stats.Entity{
					{Account: "Alice", ActiveMs: 60000, Totals: map[string]float64{"totalApplications": 40, "totalDamage": 9000}},
					{Account: "Bob", ActiveMs: 60000, Totals: map[string]float64{"totalApplications": 60, "totalDamage": 2000}},
				},
				Incoming: []stats.Entity{
					{Account: "Carol", ActiveMs: 60000, Totals: map[string]float64{"totalApplications": 12, "totalDamage": 800}},
				},
			},
		},
	}
}

func testDashboard() *dashboard.Dashboard {
	return dashboard.New(testDataset(), dashboard.Options{})
}

func mustSection(t *testing.T, dash *dashboard.Dashboard, domain catalog.Domain) *dashboard.Section {
	t.Helper()
	sec, err := dash.Section(domain)
	if err != nil {
		t.Fatalf("Section(%s): %v", domain, err)
	}
	return sec
}

func rowAccounts(m pivot.Matrix) []string {
	out := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = r.Entity.Key()
	}
	return out
}

func testModel(t *testing.T, opts Options) *model {
	t.Helper()
	m := newModel(testDashboard(), opts, nil)
	t.Cleanup(m.close)
	return m
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func click(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ============================================================================
// Model
// ============================================================================

func TestNewModel(t *testing.T) {
	m := testModel(t, Options{})

	if m.state.CurrentView != ViewDense {
		t.Errorf("CurrentView = %q, want %q", m.state.CurrentView, ViewDense)
	}
	if m.state.Domain() != catalog.DomainOffense {
		t.Errorf("Domain() = %q, want offense", m.state.Domain())
	}
	if m.state.Viewport == nil || m.state.Scrubber == nil {
		t.Fatal("viewport and scrubber should be wired")
	}
	if m.state.Viewport.Listeners() == 0 {
		t.Error("scrubber should be subscribed to the viewport")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestNewModelOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		domain catalog.Domain
		view   string
	}{
		{"defaults", Options{}, catalog.DomainOffense, ViewDense},
		{"start section", Options{Section: catalog.DomainHealing}, catalog.DomainHealing, ViewDense},
		{"unknown section", Options{Section: "overview"}, catalog.DomainOffense, ViewDense},
		{"detail view", Options{View: ViewDetail, Theme: "neon"}, catalog.DomainOffense, ViewDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, tt.opts)
			if m.state.Domain() != tt.domain {
				t.Errorf("Domain() = %q, want %q", m.state.Domain(), tt.domain)
			}
			if m.state.CurrentView != tt.view {
				t.Errorf("CurrentView = %q, want %q", m.state.CurrentView, tt.view)
			}
		})
	}
}

func TestModelCloseDetachesScrubber(t *testing.T) {
	m := newModel(testDashboard(), Options{}, nil)
	m.close()
	if n := m.state.Viewport.Listeners(); n != 0 {
		t.Errorf("Listeners() = %d after close, want 0", n)
	}
	// Closing twice is harmless.
	m.close()
}

func TestModelWindowSize(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.state.WindowWidth != 120 || m.state.WindowHeight != 40 {
		t.Errorf("window = %dx%d, want 120x40", m.state.WindowWidth, m.state.WindowHeight)
	}

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	if !strings.Contains(m.View(), "too narrow") {
		t.Error("narrow windows should render a notice")
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t, Options{})
	if !isQuit(press(m, "ctrl+c")) {
		t.Error("ctrl+c should quit")
	}

	m = testModel(t, Options{})
	if !isQuit(press(m, "q")) {
		t.Error("q with no history should quit")
	}
}

func TestModelSectionSwitching(t *testing.T) {
	m := testModel(t, Options{})

	press(m, "tab")
	if m.state.Domain() != catalog.DomainDefense {
		t.Errorf("after tab: %q, want defense", m.state.Domain())
	}

	press(m, "shift+tab", "shift+tab")
	if m.state.Domain() != catalog.DomainConditions {
		t.Errorf("shift+tab should wrap around, got %q", m.state.Domain())
	}

	press(m, "4")
	if m.state.Domain() != catalog.DomainHealing {
		t.Errorf("after 4: %q, want healing", m.state.Domain())
	}
	if m.navigator.GetDepth() != 4 {
		t.Errorf("GetDepth() = %d, want 4", m.navigator.GetDepth())
	}

	// Jumping to the current section records nothing.
	press(m, "4")
	if m.navigator.GetDepth() != 4 {
		t.Errorf("GetDepth() = %d after a no-op jump, want 4", m.navigator.GetDepth())
	}

	cmd := press(m, "q")
	if isQuit(cmd) {
		t.Fatal("q should go back while there is history")
	}
	if m.state.Domain() != catalog.DomainConditions {
		t.Errorf("after back: %q, want conditions", m.state.Domain())
	}
}

func TestModelSectionSwitchResetsScroll(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.View()

	m.state.Viewport.SetScrollLeft(40)
	if m.state.Viewport.Metrics().ScrollLeft == 0 {
		t.Fatal("offense should overflow an 80 column window")
	}

	press(m, "tab")
	if got := m.state.Viewport.Metrics().ScrollLeft; got != 0 {
		t.Errorf("ScrollLeft = %v after a section switch, want 0", got)
	}
}

func TestModelToggleView(t *testing.T) {
	m := testModel(t, Options{})

	press(m, "v")
	if m.state.CurrentView != ViewDetail {
		t.Fatalf("CurrentView = %q, want detail", m.state.CurrentView)
	}
	if !strings.Contains(m.View(), "Fight Time") {
		t.Error("detail view should show the fight time column")
	}

	press(m, "esc")
	if m.state.CurrentView != ViewDense {
		t.Errorf("back should return to the dense view, got %q", m.state.CurrentView)
	}
}

func TestModelHelp(t *testing.T) {
	m := testModel(t, Options{})

	press(m, "?")
	if m.state.CurrentView != ViewHelp {
		t.Fatalf("CurrentView = %q, want help", m.state.CurrentView)
	}
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help view should render the shortcuts")
	}

	// Section keys are ignored while help is open.
	press(m, "tab")
	if m.state.Domain() != catalog.DomainOffense {
		t.Error("tab should not switch sections under help")
	}

	cmd := press(m, "q")
	if isQuit(cmd) {
		t.Error("q should close help, not quit")
	}
	if m.state.CurrentView != ViewDense {
		t.Errorf("CurrentView = %q after closing help", m.state.CurrentView)
	}
}

func TestModelSectionSettings(t *testing.T) {
	m := testModel(t, Options{})
	dash := m.state.Dashboard
	offense := mustSection(t, dash, catalog.DomainOffense)

	press(m, "m")
	if offense.Mode() != pivot.ModePer1s {
		t.Errorf("Mode() = %q after m, want %q", offense.Mode(), pivot.ModePer1s)
	}
	if !strings.HasPrefix(m.state.StatusMessage, "Mode: ") {
		t.Errorf("StatusMessage = %q", m.state.StatusMessage)
	}

	press(m, "R")
	for _, sec := range dash.Sections() {
		if !sec.Format().RoundCounts {
			t.Errorf("%s: RoundCounts should be on", sec.Spec().Domain)
		}
	}
	press(m, "K", "K")
	if offense.Format().Compact {
		t.Error("K twice should leave compact numbers off")
	}

	// Category and skill keys only apply to healing.
	press(m, "c")
	if m.state.StatusMessage != "" {
		t.Errorf("c on offense should do nothing, got status %q", m.state.StatusMessage)
	}
	press(m, "4", "c")
	healing := mustSection(t, dash, catalog.DomainHealing)
	if healing.Category() != catalog.HealingSquad {
		t.Errorf("Category() = %q, want squad", healing.Category())
	}
}

func TestModelToggleScope(t *testing.T) {
	m := testModel(t, Options{Section: catalog.DomainMitigation})
	sec := mustSection(t, m.state.Dashboard, catalog.DomainMitigation)

	press(m, "p")
	if sec.Scope() != dashboard.ScopeMinions {
		t.Fatalf("Scope() = %q, want minions", sec.Scope())
	}
	if got := len(m.filter.Dropdown().Matches()); got != len(sec.FilterOptions()) {
		t.Errorf("dropdown should be rebound to %d options, has %d", len(sec.FilterOptions()), got)
	}
}

// ============================================================================
// Search
// ============================================================================

func TestModelDenseSearch(t *testing.T) {
	m := testModel(t, Options{})
	sec := mustSection(t, m.state.Dashboard, catalog.DomainOffense)

	press(m, "/")
	if !m.filter.IsActive() || !m.filter.Dropdown().IsOpen() {
		t.Fatal("/ should focus the input and open the dropdown")
	}

	typeText(m, "ali")
	if got := m.filter.Dropdown().Query(); got != "ali" {
		t.Errorf("Query() = %q, want %q", got, "ali")
	}
	if !strings.Contains(m.View(), "Players") {
		t.Error("dropdown should show the players group")
	}

	press(m, "enter")
	if m.filter.IsActive() || m.filter.Dropdown().IsOpen() {
		t.Error("enter should commit and close the search")
	}
	if got := rowAccounts(sec.DenseMatrix()); len(got) != 1 || got[0] != "Alice" {
		t.Errorf("rows = %v, want [Alice]", got)
	}
	if m.state.StatusMessage != "Added Alice" {
		t.Errorf("StatusMessage = %q", m.state.StatusMessage)
	}

	press(m, "x")
	if got := len(sec.DenseMatrix().Rows); got != 3 {
		t.Errorf("x should clear selections, %d rows shown", got)
	}
}

func TestModelDenseSearchEscape(t *testing.T) {
	m := testModel(t, Options{})

	press(m, "/")
	typeText(m, "dam")
	press(m, "esc")

	if m.filter.IsActive() {
		t.Error("esc should leave the search")
	}
	if m.filter.GetFilterText() != "" || m.filter.Dropdown().Query() != "" {
		t.Error("esc should clear the query")
	}
	if m.filter.Dropdown().IsOpen() {
		t.Error("esc should close the dropdown")
	}
}

func TestModelDenseSearchArrowKeys(t *testing.T) {
	m := testModel(t, Options{})

	press(m, "/")
	typeText(m, "a")
	before := m.filter.Dropdown().ActiveIndex()
	press(m, "down")
	if m.filter.Dropdown().ActiveIndex() != before+1 {
		t.Errorf("ActiveIndex() = %d, want %d", m.filter.Dropdown().ActiveIndex(), before+1)
	}

	press(m, "tab")
	if m.filter.IsActive() || m.filter.Dropdown().IsOpen() {
		t.Error("tab should leave the search")
	}
	if m.state.Domain() != catalog.DomainOffense {
		t.Error("tab in the search should not switch sections")
	}
}

func TestModelDetailSearch(t *testing.T) {
	m := testModel(t, Options{View: ViewDetail})
	sec := mustSection(t, m.state.Dashboard, catalog.DomainOffense)

	press(m, "/")
	typeText(m, "crit")
	if sec.MetricSearch() != "crit" {
		t.Errorf("MetricSearch() = %q, want crit", sec.MetricSearch())
	}
	if got := sec.ActiveMetric().ID(); got != "criticalRate" {
		t.Errorf("ActiveMetric() = %q, want the first match", got)
	}

	press(m, "down")
	if got := sec.ActiveMetric().ID(); got != "criticalDmg" {
		t.Errorf("ActiveMetric() = %q after down, want criticalDmg", got)
	}

	press(m, "enter")
	if m.filter.IsActive() {
		t.Error("enter should keep the filter and leave the input")
	}
	if sec.MetricSearch() != "crit" {
		t.Error("enter should keep the metric search")
	}

	press(m, "/", "esc")
	if sec.MetricSearch() != "" {
		t.Errorf("esc should clear the metric search, got %q", sec.MetricSearch())
	}
}

// ============================================================================
// Mouse
// ============================================================================

func TestModelTabClick(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	m.View()

	tabs := m.state.Layout.Tabs
	if len(tabs) != len(m.state.Dashboard.Sections()) {
		t.Fatalf("recorded %d tabs", len(tabs))
	}
	click(m, tabs[2].Start, m.state.Layout.TabsY)

	if m.state.Domain() != catalog.DomainSupport {
		t.Errorf("Domain() = %q, want support", m.state.Domain())
	}
}

func TestModelHeaderClickSorts(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m.View()

	l := m.state.Layout
	if l.HeaderY < 0 || len(l.Columns) < 2 {
		t.Fatal("dense header was not laid out")
	}
	target := l.Columns[1]
	click(m, l.FrozenWidth+target.Start, l.HeaderY)

	sec := mustSection(t, m.state.Dashboard, catalog.DomainOffense)
	got := sec.DenseMatrix()
	if got.SortColumnID != target.ID || got.SortDirection != pivot.Desc {
		t.Errorf("sort = %s %s, want %s desc", got.SortColumnID, got.SortDirection, target.ID)
	}
	if target.ID == "directDmg" {
		if rows := rowAccounts(got); rows[0] != "Bob" {
			t.Errorf("rows = %v, want Bob first", rows)
		}
	}
}

func TestModelScrubberDrag(t *testing.T) {
	m := testModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.View()

	l := m.state.Layout
	if l.ScrubY < 0 {
		t.Fatal("scrubber line was not laid out")
	}
	if m.state.Scrubber.Thumb().Inert {
		t.Fatal("offense should overflow an 80 column window")
	}

	x := l.FrozenWidth
	click(m, x, l.ScrubY)
	if !m.state.Scrubber.Dragging() {
		t.Fatal("pressing the thumb should start a drag")
	}

	m.Update(tea.MouseMsg{X: x + 10, Y: l.ScrubY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if m.state.Viewport.Metrics().ScrollLeft <= 0 {
		t.Error("dragging the thumb should scroll the table")
	}

	m.Update(tea.MouseMsg{X: x + 10, Y: l.ScrubY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.state.Scrubber.Dragging() {
		t.Error("release should end the drag")
	}
}

func TestModelDetailSidebarClick(t *testing.T) {
	m := testModel(t, Options{View: ViewDetail})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.View()

	l := m.state.Layout
	if l.SidebarY < 0 || len(l.SidebarIDs) < 3 {
		t.Fatal("sidebar was not laid out")
	}
	click(m, 1, l.SidebarY+2)

	sec := mustSection(t, m.state.Dashboard, catalog.DomainOffense)
	if got := sec.ActiveMetric().ID(); got != l.SidebarIDs[2] {
		t.Errorf("ActiveMetric() = %q, want %q", got, l.SidebarIDs[2])
	}
}
