package search

// Key is a navigation key understood by the dropdown.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEnter
	KeyEscape
)

// Dropdown is the search-select state machine: a query, an open flag and an
// active highlight over the current matches.
type Dropdown struct {
	index    *Index
	query    string
	open     bool
	active   int
	matches  []Option
	onSelect func(Option)
	selected func(Option) bool
}

// NewDropdown creates a closed dropdown. onSelect runs when an option is
// committed; selected reports which options are currently chosen.
func NewDropdown(index *Index, onSelect func(Option), selected func(Option) bool) *Dropdown {
	d := &Dropdown{index: index, onSelect: onSelect, selected: selected}
	d.refresh()
	return d
}

// SetIndex swaps the option list, e.g. after a scope change.
func (d *Dropdown) SetIndex(index *Index) {
	d.index = index
	d.refresh()
}

// Focus opens the dropdown.
func (d *Dropdown) Focus() {
	d.open = true
}

// Close hides the dropdown without changing the query.
func (d *Dropdown) Close() {
	d.open = false
}

// ClickOutside closes the dropdown.
func (d *Dropdown) ClickOutside() {
	d.Close()
}

// SetQuery updates the query, opens the dropdown and re-matches.
func (d *Dropdown) SetQuery(q string) {
	d.query = q
	d.open = true
	d.refresh()
}

// HandleKey applies a navigation key and reports whether it was consumed.
func (d *Dropdown) HandleKey(k Key) bool {
	switch k {
	case KeyDown, KeyUp:
		if !d.open {
			d.open = true
			return true
		}
		n := len(d.matches)
		if n == 0 {
			return true
		}
		if k == KeyDown {
			d.active = (d.active + 1) % n
		} else {
			d.active = (d.active - 1 + n) % n
		}
		return true
	case KeyEnter:
		if !d.open {
			return false
		}
		if opt, ok := d.Active(); ok {
			d.Select(opt)
		}
		return true
	case KeyEscape:
		if !d.open {
			return false
		}
		d.Close()
		return true
	}
	return false
}

// Select commits an option: the callback runs, the query clears and the
// dropdown closes.
func (d *Dropdown) Select(opt Option) {
	if d.onSelect != nil {
		d.onSelect(opt)
	}
	d.query = ""
	d.open = false
	d.refresh()
}

// Active returns the highlighted match.
func (d *Dropdown) Active() (Option, bool) {
	if d.active < 0 || d.active >= len(d.matches) {
		return Option{}, false
	}
	return d.matches[d.active], true
}

// ActiveIndex is the highlight position within Matches.
func (d *Dropdown) ActiveIndex() int { return d.active }

// Matches returns the current matches, columns first.
func (d *Dropdown) Matches() []Option { return d.matches }

// Groups returns the current matches split by kind.
func (d *Dropdown) Groups() Groups { return Grouped(d.matches) }

// IsOpen reports whether the list is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

// Query returns the current query text.
func (d *Dropdown) Query() string { return d.query }

// Selected reports whether opt is part of the current selection.
func (d *Dropdown) Selected(opt Option) bool {
	return d.selected != nil && d.selected(opt)
}

func (d *Dropdown) refresh() {
	d.matches = Grouped(d.index.Match(d.query)).Flatten()
	switch {
	case len(d.matches) == 0:
		d.active = 0
	case d.active >= len(d.matches):
		d.active = len(d.matches) - 1
	case d.active < 0:
		d.active = 0
	}
}
