package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/scrub"
	"github.com/ikari-pl/go-squadstats/internal/search"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Options select the initial theme, section and view.
type Options struct {
	Theme   string
	Section catalog.Domain
	View    string
}

// tui implements the TUI interface.
type tui struct {
	logger *slog.Logger
	opts   Options
}

// NewTUI creates a new TUI instance.
func NewTUI(logger *slog.Logger, opts Options) TUI {
	if logger == nil {
		logger = slog.Default()
	}
	return &tui{
		logger: logger,
		opts:   opts,
	}
}

// Run starts the TUI over the dashboard and blocks until the user exits.
func (t *tui) Run(ctx context.Context, dash *dashboard.Dashboard) error {
	if dash == nil {
		return fmt.Errorf("dashboard cannot be nil")
	}

	m := newModel(dash, t.opts, t.logger)
	defer m.close()

	t.logger.Debug("starting TUI",
		"sections", len(dash.Sections()),
		"section", m.state.Domain(),
		"view", m.state.CurrentView)

	// Cell motion reports drags, which the scrubber needs.
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// model implements the Model interface and serves as the main application model.
type model struct {
	state       *State
	viewManager ViewManager
	navigator   Navigator
	styles      StyleManager
	filter      FilterManager
	keys        keyMap
	logger      *slog.Logger
	scrubSub    *scrub.Subscription
}

// NewModel creates a new model instance.
func NewModel(dash *dashboard.Dashboard, opts Options, logger *slog.Logger) Model {
	return newModel(dash, opts, logger)
}

func newModel(dash *dashboard.Dashboard, opts Options, logger *slog.Logger) *model {
	if logger == nil {
		logger = slog.Default()
	}

	styles := NewStyleManager(opts.Theme)
	filter := NewFilterManager()
	keys := defaultKeyMap()
	nav := NewNavigator()

	viewport := scrub.NewViewport()
	scrubber := scrub.New(scrub.WithMinThumb(ScrubberMinThumb))

	state := &State{
		Dashboard:    dash,
		CurrentView:  ViewDense,
		WindowWidth:  DefaultWidth,
		WindowHeight: DefaultHeight,
		Viewport:     viewport,
		Scrubber:     scrubber,
		Navigator:    nav,
	}
	state.Layout.Reset()

	if opts.Section != "" && dash != nil {
		if i := dash.Index(opts.Section); i >= 0 {
			state.SectionIndex = i
		} else {
			logger.Warn("unknown start section", "section", opts.Section)
		}
	}
	if opts.View == ViewDetail {
		state.CurrentView = ViewDetail
	}
	filter.Bind(state.Section())

	return &model{
		state:       state,
		viewManager: NewViewManager(styles, filter, keys),
		navigator:   nav,
		styles:      styles,
		filter:      filter,
		keys:        keys,
		logger:      logger,
		scrubSub:    scrubber.Attach(viewport),
	}
}

// close releases the scrubber's container listeners.
func (m *model) close() {
	if m.scrubSub != nil {
		m.scrubSub.Close()
		m.scrubSub = nil
	}
}

// Init initializes the model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.WindowWidth = msg.Width
		m.state.WindowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blinks and other input ticks
	if m.filter.IsActive() {
		return m, m.filter.UpdateInput(msg)
	}
	return m, nil
}

// View renders the current view.
func (m *model) View() string {
	if m.state.WindowWidth > 0 && m.state.WindowWidth < MinWindowWidth {
		return m.styles.Error("Window too narrow")
	}

	currentView := m.viewManager.Current(m.state)
	if currentView == nil {
		return "Error: No view available"
	}

	return currentView.Render(m.state)
}

// ═══════════════════════════════════════════════════════════════════════════════
// KEYBOARD
// ═══════════════════════════════════════════════════════════════════════════════

// handleKeyPress handles key press messages.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.filter.IsActive() {
		return m.handleSearchKey(msg)
	}

	if m.state.CurrentView == ViewHelp {
		return m.delegate(msg)
	}

	m.state.SetStatus("", "")
	sec := m.state.Section()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.handleBackNavigation()

	case key.Matches(msg, m.keys.Help):
		m.state.PreviousView = m.state.CurrentView
		m.state.CurrentView = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.switchSection(m.state.SectionIndex + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.switchSection(m.state.SectionIndex - 1)
		return m, nil

	case key.Matches(msg, m.keys.JumpSection):
		m.switchSection(int(msg.String()[0] - '1'))
		return m, nil

	case key.Matches(msg, m.keys.ToggleView):
		m.toggleView()
		return m, nil
	}

	if sec == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CycleMode):
		if len(sec.Spec().Modes) > 1 {
			m.state.SetStatus("Mode: "+sec.CycleMode().Label(), StatusInfo)
		}

	case key.Matches(msg, m.keys.CycleCategory):
		if sec.Spec().Categories {
			m.state.SetStatus("Category: "+string(sec.CycleCategory()), StatusInfo)
		}

	case key.Matches(msg, m.keys.CycleSkill):
		if sec.Spec().SubSkills {
			sec.CycleSubSkill()
			m.state.SetStatus("Res skill: "+subSkillName(sec), StatusInfo)
		}

	case key.Matches(msg, m.keys.ToggleScope):
		if sec.Spec().MinionScope {
			scope := sec.ToggleScope()
			m.filter.Bind(sec)
			m.state.DenseState().Cursor = 0
			m.state.SetStatus("Showing "+string(scope), StatusInfo)
		}

	case key.Matches(msg, m.keys.Direction):
		if sec.Spec().Directions {
			dir := sec.ToggleDirection()
			m.filter.Bind(sec)
			m.state.DenseState().Cursor = 0
			m.state.DetailState().Cursor = 0
			m.state.SetStatus("Showing "+string(dir)+" conditions", StatusInfo)
		}

	case key.Matches(msg, m.keys.Search):
		m.openSearch(sec)

	case key.Matches(msg, m.keys.ClearAll):
		sec.ClearSelections()
		sec.SetMetricSearch("")
		m.filter.ClearFilter()
		m.state.SetStatus("Cleared selections", StatusInfo)

	case key.Matches(msg, m.keys.RoundCounts):
		on := !sec.Format().RoundCounts
		m.state.Dashboard.SetRoundCounts(on)
		m.state.SetStatus(onOff("Round counts", on), StatusInfo)

	case key.Matches(msg, m.keys.Compact):
		on := !sec.Format().Compact
		m.state.Dashboard.SetCompact(on)
		m.state.SetStatus(onOff("Compact numbers", on), StatusInfo)

	default:
		return m.delegate(msg)
	}

	return m, nil
}

func onOff(label string, on bool) string {
	if on {
		return label + ": on"
	}
	return label + ": off"
}

// delegate hands a message to the current view.
func (m *model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	currentView := m.viewManager.Current(m.state)
	if currentView != nil && currentView.CanHandle(msg, m.state) {
		newState, cmd := currentView.Update(msg, m.state)
		m.state = newState
		return m, cmd
	}
	return m, nil
}

// openSearch focuses the search input. The dense view searches stats and
// players, the detail view filters its metric list.
func (m *model) openSearch(sec *dashboard.Section) {
	m.filter.SetActive(true)
	if m.state.CurrentView == ViewDetail {
		m.filter.SetFilterText(sec.MetricSearch())
		return
	}
	m.filter.SetFilterText("")
	m.filter.Dropdown().SetQuery("")
}

// handleSearchKey routes keys while the search input has focus.
func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec := m.state.Section()
	if sec == nil {
		m.filter.SetActive(false)
		return m, nil
	}
	dense := m.state.CurrentView == ViewDense
	dd := m.filter.Dropdown()

	switch msg.Type {
	case tea.KeyEsc:
		if dense {
			m.filter.ClearFilter()
			return m, nil
		}
		m.filter.SetFilterText("")
		m.filter.SetActive(false)
		sec.SetMetricSearch("")
		return m, nil

	case tea.KeyEnter:
		if dense {
			if opt, ok := dd.Active(); ok && dd.HandleKey(search.KeyEnter) {
				if sec.IsSelected(opt) {
					m.state.SetStatus("Added "+opt.Label, StatusSuccess)
				} else {
					m.state.SetStatus("Removed "+opt.Label, StatusInfo)
				}
			}
			m.filter.SetFilterText("")
			dd.Close()
		}
		m.filter.SetActive(false)
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		delta, k := 1, search.KeyDown
		if msg.Type == tea.KeyUp {
			delta, k = -1, search.KeyUp
		}
		if dense {
			dd.HandleKey(k)
		} else {
			sec.MoveActiveMetric(delta)
			ds := m.state.DetailState()
			ds.Cursor, ds.Offset = 0, 0
		}
		return m, nil

	case tea.KeyTab:
		m.filter.SetActive(false)
		if dense {
			dd.Close()
		}
		return m, nil
	}

	cmd := m.filter.UpdateInput(msg)
	text := m.filter.GetFilterText()
	if dense {
		dd.SetQuery(text)
	} else {
		sec.SetMetricSearch(text)
		// Keep the active metric inside the filtered list.
		sec.MoveActiveMetric(0)
	}
	return m, cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// NAVIGATION
// ═══════════════════════════════════════════════════════════════════════════════

// currentViewState returns the current position for the history.
func (m *model) currentViewState() ViewState {
	vs := ViewState{View: m.state.CurrentView, Section: m.state.Domain()}
	if sec := m.state.Section(); sec != nil {
		vs.Title = sec.Spec().Title
	}
	return vs
}

// switchSection activates section i, wrapping around at both ends.
func (m *model) switchSection(i int) {
	if m.state.Dashboard == nil {
		return
	}
	n := len(m.state.Dashboard.Sections())
	if n == 0 {
		return
	}
	i = (i%n + n) % n
	if i == m.state.SectionIndex {
		return
	}

	m.navigator.PushState(m.currentViewState())
	m.state.SectionIndex = i
	m.activateSection()
}

// activateSection resets the per-section chrome after a section change.
func (m *model) activateSection() {
	m.filter.Bind(m.state.Section())
	m.state.Viewport.SetScrollLeft(0)
	m.logger.Debug("section changed", "section", m.state.Domain(), "view", m.state.CurrentView)
}

// toggleView flips between the dense table and the master-detail view.
func (m *model) toggleView() {
	m.navigator.PushState(m.currentViewState())
	m.state.PreviousView = m.state.CurrentView
	m.state.CurrentView = m.viewManager.Toggle(m.state.CurrentView)
}

// handleBackNavigation handles the back navigation (q/esc).
func (m *model) handleBackNavigation() (tea.Model, tea.Cmd) {
	if dd := m.filter.Dropdown(); dd.IsOpen() {
		dd.Close()
		return m, nil
	}

	prev, ok := m.navigator.PopState()
	if !ok {
		return m, tea.Quit
	}
	m.restoreState(prev)
	return m, nil
}

// restoreState returns to a saved position.
func (m *model) restoreState(vs ViewState) {
	if m.state.Dashboard != nil {
		if i := m.state.Dashboard.Index(vs.Section); i >= 0 && i != m.state.SectionIndex {
			m.state.SectionIndex = i
			m.activateSection()
		}
	}
	if m.viewManager.Restorable(vs.View) {
		m.state.CurrentView = vs.View
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// MOUSE
// ═══════════════════════════════════════════════════════════════════════════════

// handleMouse switches sections on tab clicks and hands everything else
// to the current view.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.state.Layout
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		l.TabsY >= 0 && msg.Y == l.TabsY {
		for _, span := range l.Tabs {
			if span.Contains(msg.X) {
				if m.state.Dashboard != nil {
					if i := m.state.Dashboard.Index(catalog.Domain(span.ID)); i >= 0 {
						m.switchSection(i)
					}
				}
				return m, nil
			}
		}
		return m, nil
	}

	return m.delegate(msg)
}
