package pivot

import (
	"math"
	"reflect"
	"testing"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// ============================================================================
// Test helpers
// ============================================================================

func offenseColumns() []Column {
	return Columns(catalog.Offense().Metrics, catalog.FieldOptions{})
}

func entity(account string, activeMs float64, totals map[string]float64) stats.Entity {
	return stats.Entity{Account: account, ActiveMs: activeMs, Totals: totals}
}

func rowNames(m Matrix) []string {
	out := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = r.Entity.Key()
	}
	return out
}

// ============================================================================
// Build
// ============================================================================

func TestBuildSortsDescendingWithNameTieBreak(t *testing.T) {
	m := Build(Request{
		Entities: []stats.Entity{
			entity("Bob", 1000, map[string]float64{"damage": 300}),
			entity("Carol", 1000, map[string]float64{"damage": 100}),
			entity("Alice", 1000, map[string]float64{"damage": 300}),
			entity("Dave", 1000, map[string]float64{"damage": 200}),
		},
		Columns: offenseColumns(),
		Mode:    ModeTotal,
		Sort:    NewSortState("damage"),
	})

	want := []string{"Alice", "Bob", "Dave", "Carol"}
	if got := rowNames(m); !reflect.DeepEqual(got, want) {
		t.Errorf("row order = %v, want %v", got, want)
	}
	if m.SortColumnID != "damage" || m.SortDirection != Desc {
		t.Errorf("sort = %s %s", m.SortColumnID, m.SortDirection)
	}
}

func TestBuildWithoutColumnsKeepsNameOrder(t *testing.T) {
	m := Build(Request{
		Entities: []stats.Entity{
			entity("carol", 1000, map[string]float64{"damage": 900}),
			entity("Alice", 1000, map[string]float64{"damage": 100}),
			entity("Bob", 1000, map[string]float64{"damage": 500}),
		},
		Sort: NewSortState("damage"),
	})

	if m.SortColumnID != "" {
		t.Errorf("SortColumnID = %q, want none", m.SortColumnID)
	}
	want := []string{"Alice", "Bob", "carol"}
	if got := rowNames(m); !reflect.DeepEqual(got, want) {
		t.Errorf("row order = %v, want %v", got, want)
	}
}

func TestBuildColumnSelection(t *testing.T) {
	m := Build(Request{
		Entities:        []stats.Entity{entity("Alice", 60000, map[string]float64{"damage": 1200, "downed": 3})},
		Columns:         offenseColumns(),
		ColumnSelection: NewSelectionSet("downed", "damage"),
		Mode:            ModePer1s,
		Sort:            NewSortState("killed"),
	})

	if len(m.Columns) != 2 || m.Columns[0].ID != "damage" || m.Columns[1].ID != "downed" {
		t.Fatalf("columns = %+v, want damage then downed in catalog order", m.Columns)
	}
	if m.SortColumnID != "damage" {
		t.Errorf("hidden sort column should fall back to first visible, got %q", m.SortColumnID)
	}
	if got := m.Rows[0].NumericValues["damage"]; got != 20 {
		t.Errorf("per1s damage = %v, want 20", got)
	}
	if got := m.Rows[0].Values["damage"]; got != "20.00" {
		t.Errorf("formatted damage = %q, want 20.00", got)
	}
}

func TestBuildSubkeyedDerivations(t *testing.T) {
	cols := Columns(catalog.Healing().Metrics, catalog.FieldOptions{SubKey: "10244"})
	entities := []stats.Entity{
		entity("Alice", 60000, map[string]float64{"resUtility_10244": 1200, "resUtility": 9}),
		entity("Bob", 500, map[string]float64{"resUtility_10244": 7}),
		entity("Carol", 0, map[string]float64{"resUtility_10244": 3}),
	}
	build := func(mode ViewMode) map[string]float64 {
		m := Build(Request{
			Entities:        entities,
			Columns:         cols,
			ColumnSelection: NewSelectionSet("resUtility"),
			Mode:            mode,
		})
		out := make(map[string]float64, len(m.Rows))
		for _, r := range m.Rows {
			out[r.Entity.Key()] = r.NumericValues["resUtility"]
		}
		return out
	}
	total, per1s, per60s := build(ModeTotal), build(ModePer1s), build(ModePer60s)

	tests := []struct {
		account string
		raw     float64
		seconds float64
	}{
		{"Alice", 1200, 60},
		{"Bob", 7, 1},
		{"Carol", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			if total[tt.account] != tt.raw {
				t.Errorf("total = %v, want %v", total[tt.account], tt.raw)
			}
			if got := per1s[tt.account] * tt.seconds; math.Abs(got-total[tt.account]) > 1e-9 {
				t.Errorf("per1s*seconds = %v, want %v", got, total[tt.account])
			}
			if got := per1s[tt.account] * 60; math.Abs(got-per60s[tt.account]) > 1e-9 {
				t.Errorf("per60s = %v, want per1s*60 = %v", per60s[tt.account], got)
			}
		})
	}
	if per1s["Alice"] != 20 {
		t.Errorf("Alice per1s = %v, want 20", per1s["Alice"])
	}
}

func TestBuildRowAndScopeSelection(t *testing.T) {
	entities := []stats.Entity{
		{Account: "Alice", Minion: "Jade Mech", Totals: map[string]float64{"totalMitigation": 10}},
		{Account: "Alice", Minion: "Bone Fiend", Totals: map[string]float64{"totalMitigation": 30}},
		{Account: "Bob", Minion: "Bone Fiend", Totals: map[string]float64{"totalMitigation": 20}},
	}
	req := Request{
		Entities:       entities,
		Columns:        Columns(catalog.Mitigation().Metrics, catalog.FieldOptions{}),
		ScopeSelection: NewSelectionSet("Bone Fiend"),
		ScopeKey:       func(e stats.Entity) string { return e.Minion },
		Sort:           NewSortState("totalMitigation"),
	}

	m := Build(req)
	if got := rowNames(m); !reflect.DeepEqual(got, []string{"Alice|Bone Fiend", "Bob|Bone Fiend"}) {
		t.Errorf("scope filter rows = %v", got)
	}

	req.RowSelection = NewSelectionSet("Bob|Bone Fiend")
	m = Build(req)
	if got := rowNames(m); !reflect.DeepEqual(got, []string{"Bob|Bone Fiend"}) {
		t.Errorf("row filter rows = %v", got)
	}
}

func TestBuildHideZeroRows(t *testing.T) {
	entities := []stats.Entity{
		entity("Idle", 1000, map[string]float64{"healing": 0}),
		entity("Healer", 1000, map[string]float64{"healing": 500}),
	}
	cols := Columns(catalog.Healing().Metrics, catalog.FieldOptions{Category: catalog.HealingTotal})

	if got := len(Build(Request{Entities: entities, Columns: cols}).Rows); got != 2 {
		t.Errorf("without hiding got %d rows, want 2", got)
	}

	m := Build(Request{Entities: entities, Columns: cols, HideZeroRows: true})
	if got := rowNames(m); !reflect.DeepEqual(got, []string{"Healer"}) {
		t.Errorf("hidden zero rows = %v", got)
	}
}

func TestBuildRateColumns(t *testing.T) {
	e := stats.Entity{
		Account:  "Alice",
		ActiveMs: 1000,
		Totals:   map[string]float64{"criticalRate": 40, "critableDirectDamageCount": 80, "flankingRate": 10, "downContribution": 250, "damage": 1000},
		Weights:  map[string]float64{"flankingRate": 40},
	}

	m := Build(Request{Entities: []stats.Entity{e}, Columns: offenseColumns(), Mode: ModePer60s})
	r := m.Rows[0]

	tests := []struct {
		col  string
		want string
	}{
		{"criticalRate", "50.00%"},
		{"flankingRate", "25.00%"},
		{"glanceRate", "0.00%"},
		{"downContributionPercent", "25.00%"},
	}
	for _, tt := range tests {
		if got := r.Values[tt.col]; got != tt.want {
			t.Errorf("%s = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	m := Build(Request{})
	if !m.Empty() || m.SortColumnID != "" || m.Mode != ModeTotal {
		t.Errorf("empty build = %+v", m)
	}
}

func TestBuildAscending(t *testing.T) {
	m := Build(Request{
		Entities: []stats.Entity{
			entity("A", 1000, map[string]float64{"damage": 3}),
			entity("B", 1000, map[string]float64{"damage": 1}),
		},
		Columns: offenseColumns(),
		Sort:    SortState{ColumnID: "damage", Direction: Asc},
	})
	if got := rowNames(m); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("asc rows = %v", got)
	}
}
