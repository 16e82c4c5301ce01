package pivot

import (
	"fmt"
	"math"
	"strings"

	"github.com/ikari-pl/go-squadstats/internal/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatOptions control how resolved numbers become cell text.
type FormatOptions struct {
	// RoundCounts shows non-percent values without decimals in total mode.
	RoundCounts bool
	// Compact abbreviates values of 10,000 and above (12k, 1.5m).
	Compact bool
}

// FormatWithCommas renders v with thousands separators and a fixed number of
// decimals. Non-finite values render as "--".
func FormatWithCommas(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	if decimals < 0 {
		decimals = 0
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatCompact abbreviates large magnitudes and falls back to
// FormatWithCommas below 10,000.
func FormatCompact(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1_000_000:
		s := strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", abs/1_000_000), "0"), ".")
		return sign + s + "m"
	case abs >= 10_000:
		return fmt.Sprintf("%s%.0fk", sign, abs/1000)
	default:
		return FormatWithCommas(v, decimals)
	}
}

// FormatFightTime renders active time as seconds with one decimal, or "-"
// when there is none.
func FormatFightTime(activeMs float64) string {
	activeMs = finite(activeMs)
	if activeMs <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", activeMs/1000)
}

// Decimals returns the number of decimals a metric shows under mode.
func Decimals(m catalog.Metric, mode ViewMode, opts FormatOptions) int {
	switch v := m.(type) {
	case catalog.FightTimeMetric:
		return 1
	case catalog.HealingMetric:
		return v.Decimals
	case catalog.SupportMetric:
		if v.Time {
			return 1
		}
	case catalog.BoonMetric:
		return 2
	case catalog.ConditionMetric:
		return 0
	}
	if isPercent(m, mode) {
		return 2
	}
	if opts.RoundCounts && mode == ModeTotal {
		return 0
	}
	return 2
}

// FormatValue renders a resolved value for a column.
func FormatValue(v float64, col Column, mode ViewMode, opts FormatOptions) string {
	if _, ok := col.Metric.(catalog.FightTimeMetric); ok {
		return FormatFightTime(v * 1000)
	}
	decimals := Decimals(col.Metric, mode, opts)
	var s string
	if opts.Compact {
		s = FormatCompact(v, decimals)
	} else {
		s = FormatWithCommas(v, decimals)
	}
	if isPercent(col.Metric, mode) {
		s += "%"
	}
	return s
}

func isPercent(m catalog.Metric, mode ViewMode) bool {
	switch v := m.(type) {
	case catalog.BoonMetric:
		return mode == ModeUptime && !v.Stacking
	case catalog.HealingMetric, catalog.FightTimeMetric, catalog.ConditionMetric:
		return false
	}
	switch m.Kind() {
	case catalog.KindRate, catalog.KindPercent:
		return true
	}
	return mode == ModeUptime
}
