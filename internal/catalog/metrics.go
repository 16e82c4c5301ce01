package catalog

// OffenseMetric is an outgoing-damage metric. Rate metrics divide their
// numerator by a per-entity weight; percent metrics divide two totals.
type OffenseMetric struct {
	MetricID string
	Name     string
	// Field is the totals key holding the numerator. Empty means MetricID.
	Field string
	Rate  bool
	// Denominator is the totals key used when no weight is recorded for a rate,
	// or the divisor of a percent metric.
	Denominator string
	// Percent marks a ratio of two totals rather than a weighted rate.
	Percent bool
}

func (m OffenseMetric) ID() string    { return m.MetricID }
func (m OffenseMetric) Label() string { return m.Name }

func (m OffenseMetric) Kind() DerivationKind {
	switch {
	case m.Percent:
		return KindPercent
	case m.Rate:
		return KindRate
	default:
		return KindDirect
	}
}

// DefenseMetric is an incoming-damage or avoidance count.
type DefenseMetric struct {
	MetricID string
	Name     string
	Field    string
}

func (m DefenseMetric) ID() string           { return m.MetricID }
func (m DefenseMetric) Label() string        { return m.Name }
func (m DefenseMetric) Kind() DerivationKind { return KindDirect }

// SupportMetric is a cleanse, strip, stun-break or resurrect count.
// Time metrics are durations in seconds and always show one decimal.
type SupportMetric struct {
	MetricID string
	Name     string
	Field    string
	Time     bool
}

func (m SupportMetric) ID() string           { return m.MetricID }
func (m SupportMetric) Label() string        { return m.Name }
func (m SupportMetric) Kind() DerivationKind { return KindDirect }

// HealingMetric reads a healing base field, optionally prefixed by a category.
type HealingMetric struct {
	MetricID  string
	Name      string
	BaseField string
	PerSecond bool
	Decimals  int
}

func (m HealingMetric) ID() string    { return m.MetricID }
func (m HealingMetric) Label() string { return m.Name }

func (m HealingMetric) Kind() DerivationKind {
	switch {
	case m.BaseField == ResUtilityField:
		return KindSubkeyed
	case m.PerSecond:
		return KindPerSecondCapable
	default:
		return KindDirect
	}
}

// MitigationMetric is an avoided-damage estimate or hit count.
type MitigationMetric struct {
	MetricID string
	Name     string
	Field    string
}

func (m MitigationMetric) ID() string           { return m.MetricID }
func (m MitigationMetric) Label() string        { return m.Name }
func (m MitigationMetric) Kind() DerivationKind { return KindDirect }

// BoonMetric is the generation of a single boon. Its raw total is generated
// milliseconds keyed by the boon id.
type BoonMetric struct {
	BoonID   string
	Name     string
	Stacking bool
}

func (m BoonMetric) ID() string           { return m.BoonID }
func (m BoonMetric) Label() string        { return m.Name }
func (m BoonMetric) Kind() DerivationKind { return KindDirect }

// ConditionMetric is one condition's applications and damage, or every
// condition together when ConditionID is AllConditions.
type ConditionMetric struct {
	ConditionID string
	Name        string
	// NoDamage marks conditions that never tick damage.
	NoDamage bool
}

func (m ConditionMetric) ID() string           { return m.ConditionID }
func (m ConditionMetric) Label() string        { return m.Name }
func (m ConditionMetric) Kind() DerivationKind { return KindDirect }

// Measures lists the measures the condition has, applications first.
func (m ConditionMetric) Measures() []Measure {
	if m.NoDamage {
		return []Measure{MeasureApplications}
	}
	return []Measure{MeasureApplications, MeasureDamage}
}

// MeasureLabel names one measure of the condition, e.g. "Burning Damage".
func (m ConditionMetric) MeasureLabel(measure Measure) string {
	name := m.Name
	if m.ConditionID == AllConditions {
		name = "Total"
	}
	return name + " " + measure.Label()
}

// FightTimeMetric exposes an entity's active time as a sortable column.
type FightTimeMetric struct{}

// FightTimeID is the column id of FightTimeMetric.
const FightTimeID = "fightTime"

func (FightTimeMetric) ID() string           { return FightTimeID }
func (FightTimeMetric) Label() string        { return "Fight Time" }
func (FightTimeMetric) Kind() DerivationKind { return KindDirect }
