// Package pivot turns aggregated entity totals into sorted, filtered,
// formatted matrices of metric values.
package pivot

import (
	"math"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"github.com/ikari-pl/go-squadstats/internal/stats"
)

// ViewMode selects how a raw total is normalised.
type ViewMode string

const (
	ModeTotal  ViewMode = "total"
	ModePer1s  ViewMode = "per1s"
	ModePer60s ViewMode = "per60s"
	ModeUptime ViewMode = "uptime"
)

// ParseViewMode resolves a mode name. Unknown names report false.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTotal:
		return ModeTotal, true
	case ModePer1s, "per1", "persecond":
		return ModePer1s, true
	case ModePer60s, "per60", "perminute":
		return ModePer60s, true
	case ModeUptime:
		return ModeUptime, true
	default:
		return "", false
	}
}

func (m ViewMode) String() string { return string(m) }

// Label is the toggle caption for the mode.
func (m ViewMode) Label() string {
	switch m {
	case ModeTotal:
		return "Total"
	case ModePer1s:
		return "Stat/1s"
	case ModePer60s:
		return "Stat/60s"
	case ModeUptime:
		return "Uptime"
	default:
		return string(m)
	}
}

// Sample is everything Resolve needs about one cell.
type Sample struct {
	// Raw is the total, or the numerator for rate and percent metrics.
	Raw float64
	// Denominator is only read by rate and percent metrics.
	Denominator float64
	ActiveMs    float64
}

// SampleFor reads the raw inputs of a column from an entity.
func SampleFor(e stats.Entity, col Column) Sample {
	s := Sample{ActiveMs: finite(e.ActiveMs)}
	switch m := col.Metric.(type) {
	case catalog.FightTimeMetric:
		s.Raw = s.ActiveMs
	case catalog.OffenseMetric:
		s.Raw = e.Total(col.Field())
		switch {
		case m.Percent:
			s.Denominator = e.Total(m.Denominator)
		case m.Rate:
			s.Denominator = e.Weight(m.MetricID)
			if s.Denominator == 0 && m.Denominator != "" {
				s.Denominator = e.Total(m.Denominator)
			}
		}
	case catalog.ConditionMetric:
		s.Raw = e.Total(col.Field())
		if col.Options.Measure != catalog.MeasureDamage && !col.Options.Incoming && m.ConditionID != catalog.AllConditions {
			if buffs := e.Total(catalog.BuffApplicationsField(m.ConditionID)); buffs > 0 {
				s.Raw = buffs
			}
		}
	default:
		s.Raw = e.Total(col.Field())
	}
	return s
}

// Resolve computes the displayed number of a sample under a view mode.
// The result is always finite.
func Resolve(s Sample, m catalog.Metric, mode ViewMode) float64 {
	raw := finite(s.Raw)
	activeMs := math.Max(0, finite(s.ActiveMs))
	seconds := math.Max(1, activeMs/1000)

	switch v := m.(type) {
	case catalog.FightTimeMetric:
		return activeMs / 1000
	case catalog.HealingMetric:
		if v.PerSecond {
			return raw / seconds
		}
		if v.Kind() == catalog.KindSubkeyed {
			return scale(raw, activeMs, seconds, false, mode)
		}
		return raw
	case catalog.BoonMetric:
		return boonValue(raw, activeMs, seconds, v.Stacking, mode)
	case catalog.ConditionMetric:
		return math.Round(scale(raw, activeMs, seconds, false, mode))
	}

	switch m.Kind() {
	case catalog.KindRate, catalog.KindPercent:
		return Ratio(raw, s.Denominator)
	}
	return scale(raw, activeMs, seconds, false, mode)
}

// Ratio returns num/den*100, or 0 when the denominator is not positive.
func Ratio(num, den float64) float64 {
	num, den = finite(num), finite(den)
	if den <= 0 {
		return 0
	}
	return finite(num / den * 100)
}

func scale(raw, activeMs, seconds float64, stacking bool, mode ViewMode) float64 {
	switch mode {
	case ModePer1s:
		return raw / seconds
	case ModePer60s:
		return raw / seconds * 60
	case ModeUptime:
		v := raw / math.Max(1, activeMs)
		if !stacking {
			v *= 100
		}
		return v
	default:
		return raw
	}
}

// boonValue treats raw as generated milliseconds.
func boonValue(raw, activeMs, seconds float64, stacking bool, mode ViewMode) float64 {
	if mode == ModeUptime {
		return scale(raw, activeMs, seconds, stacking, mode)
	}
	return scale(raw/1000, activeMs, seconds, stacking, mode)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
