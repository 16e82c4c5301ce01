package pivot

import "strings"

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Arrow is the header glyph for the direction.
func (d Direction) Arrow() string {
	if d == Asc {
		return "↑"
	}
	return "↓"
}

// SortState is the active sort column and direction.
type SortState struct {
	ColumnID  string
	Direction Direction
}

// NewSortState sorts descending on columnID.
func NewSortState(columnID string) SortState {
	return SortState{ColumnID: columnID, Direction: Desc}
}

// Toggle flips the direction when columnID is already active and otherwise
// switches to columnID descending.
func (s SortState) Toggle(columnID string) SortState {
	if s.ColumnID == columnID {
		if s.Direction == Desc {
			return SortState{ColumnID: columnID, Direction: Asc}
		}
		return SortState{ColumnID: columnID, Direction: Desc}
	}
	return NewSortState(columnID)
}

// ResolveSortColumn returns requested when it is visible, else the first
// visible column, else "".
func ResolveSortColumn(requested string, visible []Column) string {
	for _, c := range visible {
		if c.ID == requested {
			return requested
		}
	}
	if len(visible) > 0 {
		return visible[0].ID
	}
	return ""
}

// Compare orders two rows by a column value, breaking ties by name.
// It returns -1, 0 or 1.
func Compare(a, b Row, columnID string, dir Direction) int {
	av, bv := a.NumericValues[columnID], b.NumericValues[columnID]
	var diff float64
	if dir == Asc {
		diff = av - bv
	} else {
		diff = bv - av
	}
	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	if c := compareNames(a.Entity.DisplayName(), b.Entity.DisplayName()); c != 0 {
		return c
	}
	return compareNames(a.Entity.Minion, b.Entity.Minion)
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
