// Package catalog holds the metric definitions shown by each stats section.
package catalog

import "strings"

// Domain names a stats section.
type Domain string

// Known domains, in dashboard order.
const (
	DomainOffense    Domain = "offense"
	DomainDefense    Domain = "defense"
	DomainSupport    Domain = "support"
	DomainHealing    Domain = "healing"
	DomainMitigation Domain = "mitigation"
	DomainBoons      Domain = "boons"
	DomainConditions Domain = "conditions"
)

// Domains lists every domain in display order.
func Domains() []Domain {
	return []Domain{DomainOffense, DomainDefense, DomainSupport, DomainHealing, DomainMitigation, DomainBoons, DomainConditions}
}

// ParseDomain resolves a domain name case-insensitively.
func ParseDomain(s string) (Domain, bool) {
	needle := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Domains() {
		if d == needle {
			return d, true
		}
	}
	return "", false
}

// DerivationKind describes how a metric's displayed value is computed from raw totals.
type DerivationKind int

const (
	// KindDirect values scale with the view mode.
	KindDirect DerivationKind = iota
	// KindPerSecondCapable values carry their own per-second flag and ignore the view mode.
	KindPerSecondCapable
	// KindRate values are numerator / weight * 100.
	KindRate
	// KindPercent values are numerator / another total * 100.
	KindPercent
	// KindSubkeyed values read a field selected by a sub-dimension key.
	KindSubkeyed
)

func (k DerivationKind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindPerSecondCapable:
		return "perSecondCapable"
	case KindRate:
		return "rate"
	case KindPercent:
		return "percent"
	case KindSubkeyed:
		return "subkeyed"
	default:
		return "unknown"
	}
}

// Metric is implemented by every metric variant in this package.
// Callers branch on the concrete type with a type switch.
type Metric interface {
	ID() string
	Label() string
	Kind() DerivationKind
}

// Catalog is the ordered metric list of one domain.
type Catalog struct {
	Domain  Domain
	Metrics []Metric
}

// Lookup finds a metric by id.
func (c Catalog) Lookup(id string) (Metric, bool) {
	for _, m := range c.Metrics {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// FirstOr returns the metric with the given id, or the first metric when the id
// is unknown. It returns nil only for an empty catalog.
func (c Catalog) FirstOr(id string) Metric {
	if m, ok := c.Lookup(id); ok {
		return m
	}
	if len(c.Metrics) == 0 {
		return nil
	}
	return c.Metrics[0]
}

// Filter returns metrics whose label contains query, case-insensitively.
func (c Catalog) Filter(query string) []Metric {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Metrics
	}
	out := make([]Metric, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		if strings.Contains(strings.ToLower(m.Label()), q) {
			out = append(out, m)
		}
	}
	return out
}

// IDs returns the metric ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.Metrics))
	for i, m := range c.Metrics {
		ids[i] = m.ID()
	}
	return ids
}
