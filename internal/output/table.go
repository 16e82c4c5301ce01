package output

import (
	"github.com/ikari-pl/go-squadstats/internal/pivot"
)

// Table is the export model of a built matrix.
type Table struct {
	Title         string   `json:"title,omitempty"`
	Section       string   `json:"section"`
	Mode          string   `json:"mode"`
	SortColumn    string   `json:"sortColumn,omitempty"`
	SortDirection string   `json:"sortDirection,omitempty"`
	Columns       []Column `json:"columns"`
	Rows          []Row    `json:"rows"`
}

// Column is an exported column header.
type Column struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Row is an exported entity row. Values are the displayed strings, Numbers
// the resolved values behind them.
type Row struct {
	Rank       int                `json:"rank"`
	Account    string             `json:"account"`
	Minion     string             `json:"minion,omitempty"`
	Profession string             `json:"profession,omitempty"`
	Values     map[string]string  `json:"values"`
	Numbers    map[string]float64 `json:"numbers"`
}

// NewTable converts a matrix for export.
func NewTable(title, section string, m pivot.Matrix) *Table {
	t := &Table{
		Title:         title,
		Section:       section,
		Mode:          m.Mode.String(),
		SortColumn:    m.SortColumnID,
		SortDirection: string(m.SortDirection),
		Columns:       make([]Column, len(m.Columns)),
		Rows:          make([]Row, len(m.Rows)),
	}
	for i, c := range m.Columns {
		t.Columns[i] = Column{ID: c.ID, Label: c.Label}
	}
	for i, r := range m.Rows {
		t.Rows[i] = Row{
			Rank:       i + 1,
			Account:    r.Entity.DisplayName(),
			Minion:     r.Entity.Minion,
			Profession: r.Entity.Profession,
			Values:     r.Values,
			Numbers:    r.NumericValues,
		}
	}
	return t
}

// HasMinions reports whether any row is a minion row.
func (t *Table) HasMinions() bool {
	for _, r := range t.Rows {
		if r.Minion != "" {
			return true
		}
	}
	return false
}
