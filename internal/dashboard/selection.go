package dashboard

import (
	"github.com/ikari-pl/go-squadstats/internal/search"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// MinionKind marks options of the mitigation minion-type filter.
const MinionKind search.Kind = "minion"

// Chip is an active selection shown in the chip strip.
type Chip struct {
	Option search.Option
}

// SearchOptions returns the column options followed by one option per
// distinct entity in the current scope.
func (s *Section) SearchOptions() []search.Option {
	cols := s.Columns()
	opts := make([]search.Option, 0, len(cols)+len(s.Entities()))
	for _, c := range cols {
		opts = append(opts, search.Option{ID: c.ID, Label: c.Label, Kind: search.KindColumn})
	}
	seen := make(map[string]bool)
	for _, e := range s.Entities() {
		key := e.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		opts = append(opts, search.Option{ID: key, Label: entityLabel(e), Kind: search.KindEntity})
	}
	return opts
}

// MinionOptions returns one option per distinct minion type.
func (s *Section) MinionOptions() []search.Option {
	var opts []search.Option
	seen := make(map[string]bool)
	for _, e := range s.data.Minions {
		if e.Minion == "" || seen[e.Minion] {
			continue
		}
		seen[e.Minion] = true
		opts = append(opts, search.Option{ID: e.Minion, Label: e.Minion, Kind: MinionKind})
	}
	return opts
}

// FilterOptions is the option list of the table search: SearchOptions, plus
// the minion types while the section shows minions.
func (s *Section) FilterOptions() []search.Option {
	opts := s.SearchOptions()
	if s.spec.MinionScope && s.scope == ScopeMinions {
		opts = append(opts, s.MinionOptions()...)
	}
	return opts
}

func entityLabel(e stats.Entity) string {
	if e.Minion != "" {
		return e.DisplayName() + " · " + e.Minion
	}
	return e.DisplayName()
}

// ToggleOption routes a committed search option to its selection set.
func (s *Section) ToggleOption(opt search.Option) bool {
	var on bool
	switch opt.Kind {
	case search.KindColumn:
		on = s.columns.Toggle(opt.ID)
	case search.KindEntity:
		on = s.entities.Toggle(opt.ID)
	case MinionKind:
		on = s.minions.Toggle(opt.ID)
	default:
		return false
	}
	s.invalidate()
	return on
}

// IsSelected reports whether an option is explicitly selected.
func (s *Section) IsSelected(opt search.Option) bool {
	switch opt.Kind {
	case search.KindColumn:
		return s.columns.Has(opt.ID)
	case search.KindEntity:
		return s.entities.Has(opt.ID)
	case MinionKind:
		return s.minions.Has(opt.ID)
	}
	return false
}

// ClearSelections empties every selection set.
func (s *Section) ClearSelections() {
	s.columns.Clear()
	s.entities.Clear()
	s.minions.Clear()
	s.invalidate()
}

// Chips lists the explicit selections in insertion order: columns, then
// entities, then minion types.
func (s *Section) Chips() []Chip {
	labels := make(map[string]string)
	for _, o := range s.SearchOptions() {
		labels[o.Key()] = o.Label
	}

	var chips []Chip
	add := func(kind search.Kind, ids []string) {
		for _, id := range ids {
			opt := search.Option{ID: id, Kind: kind, Label: id}
			if l, ok := labels[opt.Key()]; ok {
				opt.Label = l
			}
			chips = append(chips, Chip{Option: opt})
		}
	}
	add(search.KindColumn, s.columns.IDs())
	add(search.KindEntity, s.entities.IDs())
	add(MinionKind, s.minions.IDs())
	return chips
}
