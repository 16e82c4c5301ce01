package pivot

import (
	"sort"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// Column is a metric paired with the field options that choose which total it reads.
type Column struct {
	ID      string
	Label   string
	Metric  catalog.Metric
	Options catalog.FieldOptions
}

// NewColumn builds a column keyed by the metric id.
func NewColumn(m catalog.Metric, opts catalog.FieldOptions) Column {
	return Column{ID: m.ID(), Label: m.Label(), Metric: m, Options: opts}
}

// Columns builds one column per metric with shared field options.
func Columns(metrics []catalog.Metric, opts catalog.FieldOptions) []Column {
	out := make([]Column, len(metrics))
	for i, m := range metrics {
		out[i] = NewColumn(m, opts)
	}
	return out
}

// MeasureColumn builds the column of one condition measure, keyed by the
// totals field it reads.
func MeasureColumn(m catalog.ConditionMetric, opts catalog.FieldOptions, measure catalog.Measure) Column {
	opts.Measure = measure
	return Column{
		ID:      catalog.ConditionField(m.ConditionID, measure),
		Label:   m.MeasureLabel(measure),
		Metric:  m,
		Options: opts,
	}
}

// Field returns the totals key the column reads.
func (c Column) Field() string {
	return catalog.Field(c.Metric, c.Options)
}

// Row is one entity with its formatted and numeric cell values.
type Row struct {
	Entity        stats.Entity
	Values        map[string]string
	NumericValues map[string]float64
}

// Matrix is a fully resolved table ready for rendering or export.
type Matrix struct {
	Columns       []Column
	Rows          []Row
	SortColumnID  string
	SortDirection Direction
	Mode          ViewMode
}

// Empty reports whether there is nothing to show.
func (m Matrix) Empty() bool {
	return len(m.Rows) == 0 || len(m.Columns) == 0
}

// Request describes a matrix build.
type Request struct {
	Entities []stats.Entity
	Columns  []Column

	// RowSelection filters entities by Key. Nil or empty shows every entity.
	RowSelection *SelectionSet
	// ColumnSelection filters columns by ID. Nil or empty shows every column.
	ColumnSelection *SelectionSet
	// ScopeSelection filters entities by ScopeKey, e.g. minion type.
	ScopeSelection *SelectionSet
	ScopeKey       func(stats.Entity) string

	Mode ViewMode
	Sort SortState

	// HideZeroRows drops entities whose visible values are all zero.
	HideZeroRows bool
	Format       FormatOptions
}

// Build resolves, filters, formats and sorts a matrix. It never fails:
// degenerate input produces an empty matrix.
func Build(req Request) Matrix {
	mode := req.Mode
	if mode == "" {
		mode = ModeTotal
	}

	columns := Filter(req.ColumnSelection, req.Columns, func(c Column) string { return c.ID })
	entities := Filter(req.RowSelection, req.Entities, func(e stats.Entity) string { return e.Key() })
	if req.ScopeKey != nil {
		entities = Filter(req.ScopeSelection, entities, req.ScopeKey)
	}

	rows := make([]Row, 0, len(entities))
	for _, e := range entities {
		row := Row{
			Entity:        e,
			Values:        make(map[string]string, len(columns)),
			NumericValues: make(map[string]float64, len(columns)),
		}
		nonZero := false
		for _, col := range columns {
			v := Resolve(SampleFor(e, col), col.Metric, mode)
			row.NumericValues[col.ID] = v
			row.Values[col.ID] = FormatValue(v, col, mode, req.Format)
			if v != 0 {
				nonZero = true
			}
		}
		if req.HideZeroRows && len(columns) > 0 && !nonZero {
			continue
		}
		rows = append(rows, row)
	}

	sortColumn := ResolveSortColumn(req.Sort.ColumnID, columns)
	dir := req.Sort.Direction
	if dir != Asc {
		dir = Desc
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return Compare(rows[i], rows[j], sortColumn, dir) < 0
	})

	return Matrix{
		Columns:       columns,
		Rows:          rows,
		SortColumnID:  sortColumn,
		SortDirection: dir,
		Mode:          mode,
	}
}

// ColumnByID finds a visible column.
func (m Matrix) ColumnByID(id string) (Column, bool) {
	for _, c := range m.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}
