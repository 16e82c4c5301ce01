package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// markdownFormatter writes a GitHub-flavoured markdown table.
type markdownFormatter struct{}

// NewMarkdownFormatter creates a new markdown formatter.
func NewMarkdownFormatter() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(ctx context.Context, table *Table, w io.Writer) error {
	bw := bufio.NewWriter(w)

	title := table.Title
	if title == "" {
		title = "Squad Stats"
	}
	fmt.Fprintf(bw, "# %s\n\n", escapeMarkdown(title))
	fmt.Fprintf(bw, "**Section:** %s · **Mode:** %s", table.Section, table.Mode)
	if table.SortColumn != "" {
		fmt.Fprintf(bw, " · **Sorted by:** %s %s", table.SortColumn, table.SortDirection)
	}
	bw.WriteString("\n\n")

	if len(table.Rows) == 0 || len(table.Columns) == 0 {
		bw.WriteString("_No rows._\n")
		return bw.Flush()
	}

	minions := table.HasMinions()
	header := []string{"#", "Player"}
	align := []string{"---:", "---"}
	if minions {
		header = append(header, "Minion")
		align = append(align, "---")
	}
	for _, c := range table.Columns {
		header = append(header, escapeMarkdown(c.Label))
		align = append(align, "---:")
	}
	writeMarkdownRow(bw, header)
	writeMarkdownRow(bw, align)

	for _, r := range table.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		cells := []string{fmt.Sprint(r.Rank), escapeMarkdown(r.Account)}
		if minions {
			cells = append(cells, escapeMarkdown(r.Minion))
		}
		for _, c := range table.Columns {
			cells = append(cells, escapeMarkdown(r.Values[c.ID]))
		}
		writeMarkdownRow(bw, cells)
	}
	return bw.Flush()
}

func writeMarkdownRow(w *bufio.Writer, cells []string) {
	w.WriteString("| ")
	w.WriteString(strings.Join(cells, " | "))
	w.WriteString(" |\n")
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func (f *markdownFormatter) Name() string {
	return "markdown"
}

func (f *markdownFormatter) Description() string {
	return "Markdown table for pasting into chat or docs"
}
