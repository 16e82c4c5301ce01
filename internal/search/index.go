// Package search implements the combined column and entity search used to
// pick what a stats table shows.
package search

import "strings"

// MaxMatches caps how many options a query returns.
const MaxMatches = 50

// Kind tells columns and entities apart in a mixed option list.
type Kind string

const (
	KindColumn Kind = "column"
	KindEntity Kind = "entity"
)

// Option is a selectable search result.
type Option struct {
	ID    string
	Label string
	Kind  Kind
}

// Key identifies the option across kinds.
func (o Option) Key() string {
	return string(o.Kind) + ":" + o.ID
}

// Index holds the options of one section in display order.
type Index struct {
	options []Option
}

// NewIndex builds an index over options.
func NewIndex(options []Option) *Index {
	return &Index{options: options}
}

// Options returns every option.
func (idx *Index) Options() []Option {
	if idx == nil {
		return nil
	}
	return idx.options
}

// Match returns up to MaxMatches options whose label contains query,
// case-insensitively, in option order. An empty query matches everything.
func (idx *Index) Match(query string) []Option {
	if idx == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Option, 0, min(len(idx.options), MaxMatches))
	for _, o := range idx.options {
		if len(out) == MaxMatches {
			break
		}
		if q == "" || strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	return out
}

// Groups splits matches by kind.
type Groups struct {
	Columns  []Option
	Entities []Option
}

// Grouped splits matches into columns and entities, keeping their order.
func Grouped(matches []Option) Groups {
	var g Groups
	for _, o := range matches {
		if o.Kind == KindColumn {
			g.Columns = append(g.Columns, o)
		} else {
			g.Entities = append(g.Entities, o)
		}
	}
	return g
}

// Flatten returns columns followed by entities, the order in which the
// dropdown lists and navigates them.
func (g Groups) Flatten() []Option {
	out := make([]Option, 0, len(g.Columns)+len(g.Entities))
	out = append(out, g.Columns...)
	return append(out, g.Entities...)
}
