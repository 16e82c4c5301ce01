package catalog

import "strings"

// HealingCategory scopes healing to a recipient group.
type HealingCategory string

const (
	HealingTotal    HealingCategory = "total"
	HealingSquad    HealingCategory = "squad"
	HealingGroup    HealingCategory = "group"
	HealingSelf     HealingCategory = "self"
	HealingOffSquad HealingCategory = "offSquad"
)

// HealingCategories lists the categories in toggle order.
func HealingCategories() []HealingCategory {
	return []HealingCategory{HealingTotal, HealingSquad, HealingGroup, HealingSelf, HealingOffSquad}
}

// AllSubKey selects the base field of a subkeyed metric.
const AllSubKey = "all"

// Measure picks which total of a condition a column reads.
type Measure string

const (
	MeasureApplications Measure = "applications"
	MeasureDamage       Measure = "damage"
)

// Label is the column caption of the measure.
func (m Measure) Label() string {
	if m == MeasureDamage {
		return "Damage"
	}
	return "Applications"
}

// FieldOptions carry the section state that changes which field a metric reads.
type FieldOptions struct {
	SubKey   string
	Category HealingCategory
	// Measure and Incoming only apply to condition metrics.
	Measure  Measure
	Incoming bool
}

// Field returns the totals key a metric reads.
func Field(m Metric, opts FieldOptions) string {
	switch v := m.(type) {
	case OffenseMetric:
		if v.Field != "" {
			return v.Field
		}
		return v.MetricID
	case DefenseMetric:
		return orID(v.Field, v.MetricID)
	case SupportMetric:
		return orID(v.Field, v.MetricID)
	case MitigationMetric:
		return orID(v.Field, v.MetricID)
	case HealingMetric:
		if v.BaseField == ResUtilityField {
			if opts.SubKey == "" || opts.SubKey == AllSubKey {
				return ResUtilityField
			}
			return ResUtilityField + "_" + opts.SubKey
		}
		if opts.Category == "" || opts.Category == HealingTotal {
			return v.BaseField
		}
		return string(opts.Category) + capitalize(v.BaseField)
	case BoonMetric:
		return v.BoonID
	case ConditionMetric:
		return ConditionField(v.ConditionID, opts.Measure)
	default:
		return m.ID()
	}
}

// ConditionField returns the totals key of a condition measure. The
// AllConditions row reads totalApplications and totalDamage.
func ConditionField(id string, measure Measure) string {
	suffix := "Applications"
	if measure == MeasureDamage {
		suffix = "Damage"
	}
	if id == "" || id == AllConditions {
		return "total" + suffix
	}
	return id + suffix
}

// BuffApplicationsField is the totals key of applications counted from buff
// states. Outgoing applications prefer it when it is positive.
func BuffApplicationsField(id string) string {
	return id + "ApplicationsFromBuffs"
}

func orID(field, id string) string {
	if field != "" {
		return field
	}
	return id
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
