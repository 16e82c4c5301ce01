// Package output renders built stats tables into export formats.
package output

import (
	"context"
	"io"
)

// Formatter provides methods for formatting a stats table into an output format.
type Formatter interface {
	// Format formats the given table and writes it to the writer.
	Format(ctx context.Context, table *Table, w io.Writer) error

	// Name returns the name of the formatter.
	Name() string

	// Description returns a description of the output format.
	Description() string
}

// Manager manages multiple output formatters.
type Manager interface {
	// RegisterFormatter registers a new formatter.
	RegisterFormatter(formatter Formatter)

	// GetFormatter returns a formatter by name.
	GetFormatter(name string) (Formatter, error)

	// ListFormatters returns all available formatter names.
	ListFormatters() []string

	// Format formats the table using the specified formatter.
	Format(ctx context.Context, formatName string, table *Table, w io.Writer) error
}
