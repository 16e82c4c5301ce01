package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// ============================================================================
// Test helpers
// ============================================================================

func emptyMatrix() pivot.Matrix {
	return pivot.Build(pivot.Request{})
}

func sampleMatrix() pivot.Matrix {
	return pivot.Build(pivot.Request{
		Entities: []stats.Entity{
			{Account: "Bob|Pipe", ActiveMs: 1000, Totals: map[string]float64{"damage": 1500.5, "downed": 1}},
			{Account: "Alice", Profession: "Guardian", ActiveMs: 1000, Totals: map[string]float64{"damage": 2000, "downed": 3}},
		},
		Columns: pivot.Columns([]catalog.Metric{
			catalog.OffenseMetric{MetricID: "damage", Name: "Damage"},
			catalog.OffenseMetric{MetricID: "downed", Name: "Downed"},
		}, catalog.FieldOptions{}),
		Sort: pivot.NewSortState("damage"),
	})
}

func sampleTable() *Table {
	return NewTable("Reset night", "offense", sampleMatrix())
}

// ============================================================================
// Table
// ============================================================================

func TestNewTable(t *testing.T) {
	tbl := sampleTable()

	if tbl.Mode != "total" || tbl.SortColumn != "damage" || tbl.SortDirection != "desc" {
		t.Errorf("table meta = %+v", tbl)
	}
	if tbl.Rows[0].Rank != 1 || tbl.Rows[0].Account != "Alice" || tbl.Rows[0].Profession != "Guardian" {
		t.Errorf("first row = %+v", tbl.Rows[0])
	}
	if tbl.Rows[1].Values["damage"] != "1,500.50" {
		t.Errorf("formatted damage = %q", tbl.Rows[1].Values["damage"])
	}
	if tbl.HasMinions() {
		t.Error("no minion rows expected")
	}
}

// ============================================================================
// Manager
// ============================================================================

func TestManager(t *testing.T) {
	m := NewManager()

	if got := m.ListFormatters(); !reflect.DeepEqual(got, []string{"csv", "html", "json", "markdown"}) {
		t.Errorf("ListFormatters() = %v", got)
	}

	if _, err := m.GetFormatter("dot"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	var buf bytes.Buffer
	if err := m.Format(context.Background(), "markdown", sampleTable(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Format() wrote nothing")
	}

	if err := m.Format(context.Background(), "pdf", sampleTable(), &buf); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

// ============================================================================
// Formatters
// ============================================================================

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter().Format(context.Background(), sampleTable(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Reset night",
		"**Sorted by:** damage desc",
		"| # | Player | Damage | Downed |",
		"| 1 | Alice | 2,000.00 | 3.00 |",
		`| 2 | Bob\|Pipe | 1,500.50 | 1.00 |`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter().Format(context.Background(), NewTable("", "support", emptyMatrix()), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "_No rows._") || !strings.Contains(buf.String(), "# Squad Stats") {
		t.Errorf("unexpected empty output:\n%s", buf.String())
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter().Format(context.Background(), sampleTable(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	want := [][]string{
		{"rank", "account", "minion", "profession", "Damage", "Downed"},
		{"1", "Alice", "", "Guardian", "2000", "3"},
		{"2", "Bob|Pipe", "", "", "1500.5", "1"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestHTMLFormatter(t *testing.T) {
	tbl := sampleTable()
	tbl.Title = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := NewHTMLFormatter().Format(context.Background(), tbl, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("title should be escaped")
	}
	for _, want := range []string{"<th>Damage ↓</th>", "<td>2,000.00</td>", "Mode: total"} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestFormatterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewCSVFormatter().Format(ctx, sampleTable(), &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("csv: expected context.Canceled, got %v", err)
	}
	if err := NewMarkdownFormatter().Format(ctx, sampleTable(), &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("markdown: expected context.Canceled, got %v", err)
	}
}
