package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// csvFormatter writes resolved numbers, one row per entity.
type csvFormatter struct{}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(ctx context.Context, table *Table, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "account", "minion", "profession"}
	for _, c := range table.Columns {
		header = append(header, c.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range table.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		record := []string{strconv.Itoa(r.Rank), r.Account, r.Minion, r.Profession}
		for _, c := range table.Columns {
			record = append(record, strconv.FormatFloat(r.Numbers[c.ID], 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (f *csvFormatter) Name() string {
	return "csv"
}

func (f *csvFormatter) Description() string {
	return "CSV with unformatted numbers for spreadsheets"
}
