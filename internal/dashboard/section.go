package dashboard

import (
	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// Scope selects which rows of the mitigation section are shown.
type Scope string

const (
	ScopePlayers Scope = "players"
	ScopeMinions Scope = "minions"
)

// Direction selects which condition rows are shown.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// Detail sort keys.
const (
	SortByValue     = "value"
	SortByFightTime = catalog.FightTimeID
	SortByDamage    = "damage"
)

// Section is the mutable view state of one stats section. Every setter
// invalidates the cached matrices.
type Section struct {
	spec    SectionSpec
	catalog catalog.Catalog
	data    stats.Section
	format  pivot.FormatOptions

	columns  *pivot.SelectionSet
	entities *pivot.SelectionSet
	minions  *pivot.SelectionSet

	denseSort  pivot.SortState
	detailSort pivot.SortState
	mode       pivot.ViewMode
	category   catalog.HealingCategory
	subSkill   string
	scope      Scope
	direction  Direction

	activeMetric string
	metricSearch string

	dense  *pivot.Matrix
	detail *pivot.Matrix
}

// NewSection creates the state of a section over its data.
func NewSection(spec SectionSpec, data stats.Section, format pivot.FormatOptions) *Section {
	cat := catalog.ForDomain(spec.Domain)
	switch spec.Domain {
	case catalog.DomainBoons:
		cat = catalog.Boons(data.BoonInfos())
	case catalog.DomainConditions:
		cat = catalog.Conditions(data.ConditionInfos())
	}

	s := &Section{
		spec:       spec,
		catalog:    cat,
		data:       data,
		format:     format,
		columns:    pivot.NewSelectionSet(),
		entities:   pivot.NewSelectionSet(),
		minions:    pivot.NewSelectionSet(),
		denseSort:  pivot.NewSortState(spec.InitialSort),
		detailSort: pivot.NewSortState(SortByValue),
		category:   catalog.HealingTotal,
		subSkill:   catalog.AllSubKey,
		scope:      ScopePlayers,
		direction:  DirectionOutgoing,
	}
	if spec.Directions {
		s.detailSort = pivot.NewSortState(SortByDamage)
	}
	if len(spec.Modes) > 0 {
		s.mode = spec.Modes[0]
	} else {
		s.mode = pivot.ModeTotal
	}
	if first := cat.FirstOr(""); first != nil {
		s.activeMetric = first.ID()
	}
	return s
}

func (s *Section) invalidate() {
	s.dense = nil
	s.detail = nil
}

// Spec returns the section configuration.
func (s *Section) Spec() SectionSpec { return s.spec }

// Catalog returns the metrics of the section.
func (s *Section) Catalog() catalog.Catalog { return s.catalog }

// HasData reports whether the section has any rows at all.
func (s *Section) HasData() bool {
	return len(s.data.Players) > 0 || len(s.data.Minions) > 0 || len(s.data.Incoming) > 0
}

// Mode returns the active view mode.
func (s *Section) Mode() pivot.ViewMode { return s.mode }

// SetMode switches the view mode when the section offers it.
func (s *Section) SetMode(mode pivot.ViewMode) bool {
	if !s.spec.Offers(mode) {
		return false
	}
	if s.mode != mode {
		s.mode = mode
		s.invalidate()
	}
	return true
}

// CycleMode moves to the next offered view mode.
func (s *Section) CycleMode() pivot.ViewMode {
	modes := s.spec.Modes
	for i, m := range modes {
		if m == s.mode {
			s.SetMode(modes[(i+1)%len(modes)])
			break
		}
	}
	return s.mode
}

// Format returns the formatting options.
func (s *Section) Format() pivot.FormatOptions { return s.format }

// SetFormat replaces the formatting options.
func (s *Section) SetFormat(f pivot.FormatOptions) {
	if s.format != f {
		s.format = f
		s.invalidate()
	}
}

// Category returns the healing category.
func (s *Section) Category() catalog.HealingCategory { return s.category }

// CycleCategory moves to the next healing category.
func (s *Section) CycleCategory() catalog.HealingCategory {
	if !s.spec.Categories {
		return s.category
	}
	cats := catalog.HealingCategories()
	for i, c := range cats {
		if c == s.category {
			s.category = cats[(i+1)%len(cats)]
			s.invalidate()
			break
		}
	}
	return s.category
}

// SubSkills lists the resurrect-utility skills, "all" first.
func (s *Section) SubSkills() []stats.SubDimension {
	out := []stats.SubDimension{{ID: catalog.AllSubKey, Name: "All skills"}}
	return append(out, s.data.Skills...)
}

// SubSkill returns the selected resurrect-utility skill id.
func (s *Section) SubSkill() string { return s.subSkill }

// CycleSubSkill moves to the next resurrect-utility skill.
func (s *Section) CycleSubSkill() string {
	if !s.spec.SubSkills {
		return s.subSkill
	}
	skills := s.SubSkills()
	for i, sk := range skills {
		if sk.ID == s.subSkill {
			s.subSkill = skills[(i+1)%len(skills)].ID
			s.invalidate()
			return s.subSkill
		}
	}
	s.subSkill = catalog.AllSubKey
	s.invalidate()
	return s.subSkill
}

// Scope returns the mitigation row scope.
func (s *Section) Scope() Scope { return s.scope }

// ToggleScope switches between players and minions where supported.
func (s *Section) ToggleScope() Scope {
	if !s.spec.MinionScope {
		return s.scope
	}
	if s.scope == ScopePlayers {
		s.scope = ScopeMinions
	} else {
		s.scope = ScopePlayers
	}
	s.entities.Clear()
	s.invalidate()
	return s.scope
}

// Direction returns the condition direction.
func (s *Section) Direction() Direction { return s.direction }

// ToggleDirection switches between outgoing and incoming conditions where
// supported. Entity selections refer to the old rows and are cleared.
func (s *Section) ToggleDirection() Direction {
	if !s.spec.Directions {
		return s.direction
	}
	if s.direction == DirectionOutgoing {
		s.direction = DirectionIncoming
	} else {
		s.direction = DirectionOutgoing
	}
	s.entities.Clear()
	s.invalidate()
	return s.direction
}

// Entities returns the rows in the current scope.
func (s *Section) Entities() []stats.Entity {
	switch {
	case s.scope == ScopeMinions:
		return s.data.Minions
	case s.direction == DirectionIncoming:
		return s.data.Incoming
	}
	return s.data.Players
}

// FieldOptions returns the field options implied by the section state.
func (s *Section) FieldOptions() catalog.FieldOptions {
	return catalog.FieldOptions{
		SubKey:   s.subSkill,
		Category: s.category,
		Incoming: s.direction == DirectionIncoming,
	}
}

// Columns returns every candidate column. Conditions get one column per
// measure.
func (s *Section) Columns() []pivot.Column {
	opts := s.FieldOptions()
	if !s.spec.Directions {
		return pivot.Columns(s.catalog.Metrics, opts)
	}
	var out []pivot.Column
	for _, m := range s.catalog.Metrics {
		cm, ok := m.(catalog.ConditionMetric)
		if !ok {
			out = append(out, pivot.NewColumn(m, opts))
			continue
		}
		for _, measure := range cm.Measures() {
			out = append(out, pivot.MeasureColumn(cm, opts, measure))
		}
	}
	return out
}
