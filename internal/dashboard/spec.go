// Package dashboard holds the per-section state of the stats dashboard and
// turns it into pivot matrices for the terminal views and exporters.
package dashboard

import (
	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
)

// SectionSpec is the fixed configuration of a section.
type SectionSpec struct {
	Domain   catalog.Domain
	Title    string
	Subtitle string
	// Modes lists the offered view modes; the first is the default.
	Modes        []pivot.ViewMode
	HideZeroRows bool
	// InitialSort is the dense table's starting sort column. Empty means the
	// first visible column.
	InitialSort string
	EmptyText   string
	NoMatchText string
	MinionScope bool
	Categories  bool
	SubSkills   bool
	// Directions offers the outgoing/incoming toggle of condition rows.
	Directions bool
}

var standardModes = []pivot.ViewMode{pivot.ModeTotal, pivot.ModePer1s, pivot.ModePer60s}

// Specs returns the section configuration in display order.
func Specs() []SectionSpec {
	return []SectionSpec{
		{
			Domain:      catalog.DomainOffense,
			Title:       "Offensive Stats",
			Subtitle:    "Outgoing damage, hit quality and crowd control",
			Modes:       standardModes,
			EmptyText:   "No offensive stats available",
			NoMatchText: "No offensive stats match this filter",
		},
		{
			Domain:      catalog.DomainDefense,
			Title:       "Defensive Stats",
			Subtitle:    "Incoming damage, avoidance and deaths",
			Modes:       standardModes,
			EmptyText:   "No defensive stats available",
			NoMatchText: "No defensive stats match this filter",
		},
		{
			Domain:      catalog.DomainSupport,
			Title:       "Support Stats",
			Subtitle:    "Cleanses, strips, stun breaks and resurrects",
			Modes:       standardModes,
			EmptyText:   "No support stats available",
			NoMatchText: "No support stats match this filter",
		},
		{
			Domain:       catalog.DomainHealing,
			Title:        "Healing Stats",
			Subtitle:     "Healing, barrier and resurrect utility",
			Modes:        []pivot.ViewMode{pivot.ModeTotal},
			HideZeroRows: true,
			EmptyText:    "No healing stats available",
			NoMatchText:  "No healing data for this view",
			Categories:   true,
			SubSkills:    true,
		},
		{
			Domain:      catalog.DomainMitigation,
			Title:       "Damage Mitigation",
			Subtitle:    "Estimated damage avoided by blocks, evades and invulnerability",
			Modes:       standardModes,
			InitialSort: "totalMitigation",
			EmptyText:   "No damage mitigation stats available",
			NoMatchText: "No damage mitigation stats match this filter",
			MinionScope: true,
		},
		{
			Domain:      catalog.DomainBoons,
			Title:       "Boon Generation",
			Subtitle:    "Boons generated for the squad",
			Modes:       []pivot.ViewMode{pivot.ModeUptime, pivot.ModeTotal, pivot.ModePer1s, pivot.ModePer60s},
			EmptyText:   "No boon generation stats available",
			NoMatchText: "No boon stats match this filter",
		},
		{
			Domain:       catalog.DomainConditions,
			Title:        "Conditions",
			Subtitle:     "Condition applications and damage, outgoing or incoming",
			Modes:        []pivot.ViewMode{pivot.ModeTotal},
			HideZeroRows: true,
			InitialSort:  "totalDamage",
			EmptyText:    "No condition data available",
			NoMatchText:  "No conditions match this filter",
			Directions:   true,
		},
	}
}

// SpecFor returns the configuration of a domain.
func SpecFor(d catalog.Domain) (SectionSpec, bool) {
	for _, s := range Specs() {
		if s.Domain == d {
			return s, true
		}
	}
	return SectionSpec{}, false
}

// Offers reports whether mode is available in this section.
func (s SectionSpec) Offers(mode pivot.ViewMode) bool {
	for _, m := range s.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
