// Package stats defines the aggregated stats document the dashboard reads.
package stats

import (
	"math"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
)

// Dataset is an aggregated stats document, one section per domain.
type Dataset struct {
	Title       string                     `json:"title,omitempty" yaml:"title,omitempty"`
	GeneratedAt string                     `json:"generatedAt,omitempty" yaml:"generatedAt,omitempty"`
	Sections    map[catalog.Domain]Section `json:"sections" yaml:"sections"`
}

// Section returns the section for a domain.
func (d *Dataset) Section(domain catalog.Domain) (Section, bool) {
	if d == nil || d.Sections == nil {
		return Section{}, false
	}
	s, ok := d.Sections[domain]
	return s, ok
}

// Section holds the rows of one domain.
type Section struct {
	Players []Entity `json:"players,omitempty" yaml:"players,omitempty"`
	// Minions is only populated for mitigation.
	Minions []Entity `json:"minions,omitempty" yaml:"minions,omitempty"`
	// Skills lists the resurrect-utility skills present in healing totals.
	Skills []SubDimension `json:"skills,omitempty" yaml:"skills,omitempty"`
	// Boons lists the boons present in boon generation totals.
	Boons []SubDimension `json:"boons,omitempty" yaml:"boons,omitempty"`
	// Incoming holds per-player condition totals received rather than applied.
	Incoming []Entity `json:"incoming,omitempty" yaml:"incoming,omitempty"`
	// Conditions lists the conditions present in condition totals.
	Conditions []SubDimension `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// SubDimension names a sub-key of a metric: a skill, a boon or a condition.
type SubDimension struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Stacking bool   `json:"stacking,omitempty" yaml:"stacking,omitempty"`
}

// DisplayName returns the name, or the id when unnamed.
func (s SubDimension) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// BoonInfos converts the section's boons for catalog construction.
func (s Section) BoonInfos() []catalog.BoonInfo {
	out := make([]catalog.BoonInfo, len(s.Boons))
	for i, b := range s.Boons {
		out[i] = catalog.BoonInfo{ID: b.ID, Name: b.Name, Stacking: b.Stacking}
	}
	return out
}

// ConditionInfos converts the section's conditions for catalog construction.
func (s Section) ConditionInfos() []catalog.ConditionInfo {
	out := make([]catalog.ConditionInfo, len(s.Conditions))
	for i, c := range s.Conditions {
		out[i] = catalog.ConditionInfo{ID: c.ID, Name: c.Name}
	}
	return out
}

// Entity is one aggregated row: a player, or a player's minion type.
type Entity struct {
	Account        string             `json:"account" yaml:"account"`
	Name           string             `json:"name,omitempty" yaml:"name,omitempty"`
	Profession     string             `json:"profession,omitempty" yaml:"profession,omitempty"`
	ProfessionList []string           `json:"professionList,omitempty" yaml:"professionList,omitempty"`
	Minion         string             `json:"minion,omitempty" yaml:"minion,omitempty"`
	ActiveMs       float64            `json:"activeMs" yaml:"activeMs"`
	Totals         map[string]float64 `json:"totals" yaml:"totals"`
	Weights        map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// Key identifies the entity within its section.
func (e Entity) Key() string {
	if e.Minion != "" {
		return e.Account + "|" + e.Minion
	}
	return e.Account
}

// DisplayName is the label shown for the entity.
func (e Entity) DisplayName() string {
	if e.Account != "" {
		return e.Account
	}
	if e.Name != "" {
		return e.Name
	}
	return "Unknown"
}

// Total reads a raw total. Missing and non-finite values read as 0.
func (e Entity) Total(field string) float64 {
	return finite(e.Totals[field])
}

// Weight reads a rate weight. Missing and non-finite values read as 0.
func (e Entity) Weight(id string) float64 {
	return finite(e.Weights[id])
}

// HasAnyTotal reports whether any raw total is positive.
func (e Entity) HasAnyTotal() bool {
	for _, v := range e.Totals {
		if finite(v) > 0 {
			return true
		}
	}
	return false
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
