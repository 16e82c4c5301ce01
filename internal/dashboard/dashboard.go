package dashboard

import (
	"errors"
	"fmt"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// ErrUnknownSection is returned for a domain the dashboard does not show.
var ErrUnknownSection = errors.New("unknown section")

// Options seed every section.
type Options struct {
	Format pivot.FormatOptions
	// Mode is applied to every section that offers it.
	Mode pivot.ViewMode
	// HideZeroRows overrides the per-section zero-row policy.
	HideZeroRows map[catalog.Domain]bool
	// Incoming starts sections with a direction toggle on incoming rows.
	Incoming bool
}

// Dashboard is the set of sections built from one dataset.
type Dashboard struct {
	title    string
	sections []*Section
}

// New builds every section from ds. Missing sections are present but empty.
func New(ds *stats.Dataset, opts Options) *Dashboard {
	d := &Dashboard{}
	if ds != nil {
		d.title = ds.Title
	}
	for _, spec := range Specs() {
		if hide, ok := opts.HideZeroRows[spec.Domain]; ok {
			spec.HideZeroRows = hide
		}
		data, _ := ds.Section(spec.Domain)
		sec := NewSection(spec, data, opts.Format)
		if opts.Mode != "" {
			sec.SetMode(opts.Mode)
		}
		if opts.Incoming {
			sec.ToggleDirection()
		}
		d.sections = append(d.sections, sec)
	}
	return d
}

// Title returns the dataset title.
func (d *Dashboard) Title() string { return d.title }

// Sections returns the sections in display order.
func (d *Dashboard) Sections() []*Section { return d.sections }

// Section returns the section of a domain.
func (d *Dashboard) Section(domain catalog.Domain) (*Section, error) {
	for _, s := range d.sections {
		if s.spec.Domain == domain {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, domain)
}

// Index returns the position of a domain, or -1.
func (d *Dashboard) Index(domain catalog.Domain) int {
	for i, s := range d.sections {
		if s.spec.Domain == domain {
			return i
		}
	}
	return -1
}

// SetRoundCounts toggles count rounding on every section.
func (d *Dashboard) SetRoundCounts(on bool) {
	for _, s := range d.sections {
		f := s.Format()
		f.RoundCounts = on
		s.SetFormat(f)
	}
}

// SetCompact toggles compact number formatting on every section.
func (d *Dashboard) SetCompact(on bool) {
	for _, s := range d.sections {
		f := s.Format()
		f.Compact = on
		s.SetFormat(f)
	}
}
