package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned for a format name with no registered formatter.
var ErrUnknownFormat = errors.New("unknown output format")

// manager implements the Manager interface.
type manager struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewManager creates a Manager with every built-in formatter registered.
func NewManager() Manager {
	m := &manager{formatters: make(map[string]Formatter)}
	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewMarkdownFormatter())
	m.RegisterFormatter(NewCSVFormatter())
	m.RegisterFormatter(NewHTMLFormatter())
	return m
}

// RegisterFormatter registers a new formatter, replacing one with the same name.
func (m *manager) RegisterFormatter(formatter Formatter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name.
func (m *manager) GetFormatter(name string) (Formatter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.formatters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// ListFormatters returns all available formatter names, sorted.
func (m *manager) ListFormatters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format formats the table using the specified formatter.
func (m *manager) Format(ctx context.Context, formatName string, table *Table, w io.Writer) error {
	f, err := m.GetFormatter(formatName)
	if err != nil {
		return err
	}
	if err := f.Format(ctx, table, w); err != nil {
		return fmt.Errorf("failed to format %s: %w", formatName, err)
	}
	return nil
}
