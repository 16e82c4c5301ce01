package dashboard

import (
	"slices"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// DenseSort returns the dense table sort state.
func (s *Section) DenseSort() pivot.SortState { return s.denseSort }

// ToggleDenseSort applies a header activation.
func (s *Section) ToggleDenseSort(columnID string) {
	// Start from the resolved column so a fallback sort flips like an explicit one.
	current := s.denseSort
	current.ColumnID = s.DenseMatrix().SortColumnID
	s.denseSort = current.Toggle(columnID)
	s.invalidate()
}

// DetailSort returns the master-detail sort state. Its ColumnID is one of
// DetailSortKeys.
func (s *Section) DetailSort() pivot.SortState { return s.detailSort }

// DetailSortKeys returns the sort key of each detail column in column order.
func (s *Section) DetailSortKeys() []string {
	if s.spec.Directions {
		if cm, ok := s.ActiveMetric().(catalog.ConditionMetric); ok && cm.NoDamage {
			return []string{SortByValue}
		}
		return []string{SortByValue, SortByDamage}
	}
	return []string{SortByValue, SortByFightTime}
}

// ToggleDetailSort applies a detail header activation.
func (s *Section) ToggleDetailSort(key string) {
	if !slices.Contains(s.DetailSortKeys(), key) {
		return
	}
	s.detailSort = s.detailSort.Toggle(key)
	s.invalidate()
}

// effectiveDetailSort falls back to descending by value when the stored key
// is not offered by the active metric.
func (s *Section) effectiveDetailSort() pivot.SortState {
	if slices.Contains(s.DetailSortKeys(), s.detailSort.ColumnID) {
		return s.detailSort
	}
	return pivot.NewSortState(SortByValue)
}

// ActiveMetric returns the metric shown by the detail view, recovering a
// stale id through the first catalog entry.
func (s *Section) ActiveMetric() catalog.Metric {
	return s.catalog.FirstOr(s.activeMetric)
}

// SetActiveMetric selects the detail metric.
func (s *Section) SetActiveMetric(id string) {
	if s.activeMetric != id {
		s.activeMetric = id
		s.invalidate()
	}
}

// MetricSearch returns the detail sidebar filter text.
func (s *Section) MetricSearch() string { return s.metricSearch }

// SetMetricSearch updates the detail sidebar filter.
func (s *Section) SetMetricSearch(q string) { s.metricSearch = q }

// FilteredMetrics returns the sidebar metrics matching the search. The
// aggregate condition entry stays on top while anything matches.
func (s *Section) FilteredMetrics() []catalog.Metric {
	matched := s.catalog.Filter(s.metricSearch)
	if !s.spec.Directions || len(matched) == 0 || len(s.catalog.Metrics) == 0 {
		return matched
	}
	all := s.catalog.Metrics[0]
	if matched[0].ID() == all.ID() {
		return matched
	}
	return append([]catalog.Metric{all}, matched...)
}

// MoveActiveMetric moves the selection within the filtered sidebar list.
func (s *Section) MoveActiveMetric(delta int) {
	metrics := s.FilteredMetrics()
	if len(metrics) == 0 {
		return
	}
	idx := 0
	active := s.ActiveMetric()
	for i, m := range metrics {
		if active != nil && m.ID() == active.ID() {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(metrics) {
		idx = len(metrics) - 1
	}
	s.SetActiveMetric(metrics[idx].ID())
}

func (s *Section) scopeFilter() (*pivot.SelectionSet, func(stats.Entity) string) {
	if s.spec.MinionScope && s.scope == ScopeMinions {
		return s.minions, func(e stats.Entity) string { return e.Minion }
	}
	return nil, nil
}

// DenseMatrix builds, or returns the cached, dense table.
func (s *Section) DenseMatrix() pivot.Matrix {
	if s.dense != nil {
		return *s.dense
	}
	scopeSel, scopeKey := s.scopeFilter()
	m := pivot.Build(pivot.Request{
		Entities:        s.Entities(),
		Columns:         s.Columns(),
		RowSelection:    s.entities,
		ColumnSelection: s.columns,
		ScopeSelection:  scopeSel,
		ScopeKey:        scopeKey,
		Mode:            s.mode,
		Sort:            s.denseSort,
		HideZeroRows:    s.spec.HideZeroRows,
		Format:          s.format,
	})
	s.dense = &m
	return m
}

// DetailMatrix builds, or returns the cached, ranking of the active metric
// with a fight time column.
func (s *Section) DetailMatrix() pivot.Matrix {
	if s.detail != nil {
		return *s.detail
	}
	metric := s.ActiveMetric()
	if metric == nil {
		m := pivot.Matrix{Mode: s.mode}
		s.detail = &m
		return m
	}

	cols := s.detailColumns(metric)
	sortState := s.effectiveDetailSort()
	for i, k := range s.DetailSortKeys() {
		if k == sortState.ColumnID && i < len(cols) {
			sortState.ColumnID = cols[i].ID
		}
	}

	scopeSel, scopeKey := s.scopeFilter()
	m := pivot.Build(pivot.Request{
		Entities:       s.Entities(),
		Columns:        cols,
		ScopeSelection: scopeSel,
		ScopeKey:       scopeKey,
		Mode:           s.mode,
		Sort:           sortState,
		HideZeroRows:   s.spec.Directions && s.spec.HideZeroRows,
		Format:         s.format,
	})
	if s.spec.HideZeroRows && !s.spec.Directions {
		m.Rows = dropInactive(m.Rows)
	}
	s.detail = &m
	return m
}

// detailColumns pairs the active metric with fight time, or lists the
// measures of a condition.
func (s *Section) detailColumns(metric catalog.Metric) []pivot.Column {
	if cm, ok := metric.(catalog.ConditionMetric); ok {
		var cols []pivot.Column
		for _, measure := range cm.Measures() {
			col := pivot.MeasureColumn(cm, s.FieldOptions(), measure)
			col.Label = measure.Label()
			cols = append(cols, col)
		}
		return cols
	}
	return []pivot.Column{
		pivot.NewColumn(metric, s.FieldOptions()),
		pivot.NewColumn(catalog.FightTimeMetric{}, catalog.FieldOptions{}),
	}
}

// dropInactive keeps rows with at least one positive raw total.
func dropInactive(rows []pivot.Row) []pivot.Row {
	out := rows[:0:0]
	for _, r := range rows {
		if r.Entity.HasAnyTotal() {
			out = append(out, r)
		}
	}
	return out
}

// Placeholder returns the text shown instead of an empty matrix, or "" when
// there is something to show.
func (s *Section) Placeholder(m pivot.Matrix) string {
	switch {
	case !s.HasData() || (s.scope == ScopeMinions && len(s.data.Minions) == 0),
		s.direction == DirectionIncoming && len(s.data.Incoming) == 0:
		return s.spec.EmptyText
	case m.Empty():
		return s.spec.NoMatchText
	}
	return ""
}
