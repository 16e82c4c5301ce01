package pivot

// SelectionSet is an ordered set of ids. An empty set means "show everything".
type SelectionSet struct {
	ids []string
}

// NewSelectionSet creates a set holding ids, ignoring duplicates.
func NewSelectionSet(ids ...string) *SelectionSet {
	s := &SelectionSet{}
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle adds id when absent and removes it when present. It returns
// whether id is a member afterwards.
func (s *SelectionSet) Toggle(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.ids = nil
}

// Has reports explicit membership.
func (s *SelectionSet) Has(id string) bool {
	if s == nil {
		return false
	}
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IsVisible reports whether an item passes the filter.
func (s *SelectionSet) IsVisible(id string) bool {
	return s.Len() == 0 || s.Has(id)
}

// Len returns the number of selected ids.
func (s *SelectionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the selected ids in insertion order.
func (s *SelectionSet) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Filter keeps the items whose id is visible, preserving their order.
func Filter[T any](s *SelectionSet, items []T, id func(T) string) []T {
	if s.Len() == 0 {
		return items
	}
	out := make([]T, 0, s.Len())
	for _, item := range items {
		if s.Has(id(item)) {
			out = append(out, item)
		}
	}
	return out
}
