package catalog

// ResUtilityField is the healing base field broken down by skill.
const ResUtilityField = "resUtility"

// Offense returns the offense catalog.
func Offense() Catalog {
	return Catalog{Domain: DomainOffense, Metrics: []Metric{
		OffenseMetric{MetricID: "damage", Name: "Damage"},
		OffenseMetric{MetricID: "directDmg", Name: "Direct Damage"},
		OffenseMetric{MetricID: "connectedDamageCount", Name: "Connected Damage Count"},
		OffenseMetric{MetricID: "connectedDirectDamageCount", Name: "Connected Direct Damage Count"},
		OffenseMetric{MetricID: "battleStandardHits", Name: "Battle Standard Tracking"},
		OffenseMetric{MetricID: "criticalRate", Name: "Critical Rate", Rate: true, Denominator: "critableDirectDamageCount"},
		OffenseMetric{MetricID: "criticalDmg", Name: "Critical Damage"},
		OffenseMetric{MetricID: "flankingRate", Name: "Flanking Rate", Rate: true, Denominator: "connectedDirectDamageCount"},
		OffenseMetric{MetricID: "glanceRate", Name: "Glance Rate", Rate: true, Denominator: "connectedDirectDamageCount"},
		OffenseMetric{MetricID: "missed", Name: "Missed"},
		OffenseMetric{MetricID: "evaded", Name: "Evaded (enemy)"},
		OffenseMetric{MetricID: "blocked", Name: "Blocked (enemy)"},
		OffenseMetric{MetricID: "interrupts", Name: "Interrupts"},
		OffenseMetric{MetricID: "invulned", Name: "Invulned"},
		OffenseMetric{MetricID: "killed", Name: "Killed"},
		OffenseMetric{MetricID: "downed", Name: "Downed"},
		OffenseMetric{MetricID: "downContribution", Name: "Down Contribution"},
		OffenseMetric{MetricID: "downContributionPercent", Name: "Down Contribution %", Field: "downContribution", Percent: true, Denominator: "damage"},
		OffenseMetric{MetricID: "againstDownedDamage", Name: "Against Downed Damage"},
		OffenseMetric{MetricID: "appliedCrowdControl", Name: "Applied CC"},
		OffenseMetric{MetricID: "appliedCrowdControlDuration", Name: "Applied CC Duration"},
		OffenseMetric{MetricID: "appliedCrowdControlDownContribution", Name: "Applied CC Down Contribution"},
		OffenseMetric{MetricID: "appliedCrowdControlDurationDownContribution", Name: "Applied CC Duration Down Contribution"},
	}}
}

// Defense returns the defense catalog.
func Defense() Catalog {
	m := func(id, label string) Metric { return DefenseMetric{MetricID: id, Name: label, Field: id} }
	return Catalog{Domain: DomainDefense, Metrics: []Metric{
		m("damageTaken", "Damage Taken"),
		m("damageTakenCount", "Damage Taken Count"),
		m("conditionDamageTaken", "Condition Damage Taken"),
		m("conditionDamageTakenCount", "Condition Damage Taken Count"),
		m("powerDamageTaken", "Power Damage Taken"),
		m("powerDamageTakenCount", "Power Damage Taken Count"),
		m("downedDamageTaken", "Downed Damage Taken"),
		m("downedDamageTakenCount", "Downed Damage Taken Count"),
		m("damageBarrier", "Damage Barrier"),
		m("damageBarrierCount", "Damage Barrier Count"),
		m("blockedCount", "Blocked Count"),
		m("evadedCount", "Evaded Count"),
		m("missedCount", "Missed Count"),
		m("dodgeCount", "Dodge Count"),
		m("invulnedCount", "Invulnerable Count"),
		m("interruptedCount", "Interrupted Count"),
		m("downCount", "Down Count"),
		m("deadCount", "Death Count"),
		m("boonStrips", "Boon Strips (Incoming)"),
		m("conditionCleanses", "Cleanses (Incoming)"),
		m("receivedCrowdControl", "Crowd Control (Incoming)"),
	}}
}

// Support returns the support catalog.
func Support() Catalog {
	m := func(id, label string, time bool) Metric {
		return SupportMetric{MetricID: id, Name: label, Field: id, Time: time}
	}
	return Catalog{Domain: DomainSupport, Metrics: []Metric{
		m("condiCleanse", "Condition Cleanses", false),
		m("condiCleanseTime", "Condition Cleanse Time", true),
		m("condiCleanseSelf", "Condition Cleanse Self", false),
		m("condiCleanseTimeSelf", "Condition Cleanse Time Self", true),
		m("boonStrips", "Boon Strips", false),
		m("boonStripsTime", "Boon Strips Time", true),
		m("boonStripDownContribution", "Boon Strip Down Contribution", false),
		m("boonStripDownContributionTime", "Boon Strip Down Contribution Time", true),
		m("stunBreak", "Stun Breaks", false),
		m("removedStunDuration", "Removed Stun Duration", true),
		m("resurrects", "Resurrects", false),
		m("resurrectTime", "Resurrect Time", true),
	}}
}

// Healing returns the healing catalog.
func Healing() Catalog {
	return Catalog{Domain: DomainHealing, Metrics: []Metric{
		HealingMetric{MetricID: "healing", Name: "Healing", BaseField: "healing"},
		HealingMetric{MetricID: "healingPerSecond", Name: "Healing Per Second", BaseField: "healing", PerSecond: true, Decimals: 2},
		HealingMetric{MetricID: "barrier", Name: "Barrier", BaseField: "barrier"},
		HealingMetric{MetricID: "barrierPerSecond", Name: "Barrier Per Second", BaseField: "barrier", PerSecond: true, Decimals: 2},
		HealingMetric{MetricID: "downedHealing", Name: "Downed Healing", BaseField: "downedHealing"},
		HealingMetric{MetricID: "downedHealingPerSecond", Name: "Downed Healing Per Second", BaseField: "downedHealing", PerSecond: true, Decimals: 1},
		HealingMetric{MetricID: ResUtilityField, Name: "Resurrect Utility", BaseField: ResUtilityField},
	}}
}

// Mitigation returns the damage mitigation catalog.
func Mitigation() Catalog {
	m := func(id, label string) Metric { return MitigationMetric{MetricID: id, Name: label, Field: id} }
	return Catalog{Domain: DomainMitigation, Metrics: []Metric{
		m("totalHits", "Total Hits"),
		m("blocked", "Blocked"),
		m("evaded", "Evaded"),
		m("glanced", "Glanced"),
		m("missed", "Missed"),
		m("invulned", "Invulned"),
		m("interrupted", "Interrupted"),
		m("totalMitigation", "Total Mitigation"),
		m("minMitigation", "Min Mitigation"),
	}}
}

// BoonInfo describes one boon present in a dataset.
type BoonInfo struct {
	ID       string
	Name     string
	Stacking bool
}

// Boons builds a catalog with one generation metric per boon.
func Boons(boons []BoonInfo) Catalog {
	metrics := make([]Metric, 0, len(boons))
	for _, b := range boons {
		name := b.Name
		if name == "" {
			name = b.ID
		}
		metrics = append(metrics, BoonMetric{BoonID: b.ID, Name: name, Stacking: b.Stacking})
	}
	return Catalog{Domain: DomainBoons, Metrics: metrics}
}

// AllConditions is the id of the aggregate condition entry.
const AllConditions = "all"

var knownConditions = []ConditionInfo{
	{ID: "bleeding", Name: "Bleeding"},
	{ID: "burning", Name: "Burning"},
	{ID: "confusion", Name: "Confusion"},
	{ID: "poison", Name: "Poison"},
	{ID: "torment", Name: "Torment"},
	{ID: "vulnerability", Name: "Vulnerability", NoDamage: true},
	{ID: "weakness", Name: "Weakness", NoDamage: true},
	{ID: "blind", Name: "Blind", NoDamage: true},
	{ID: "crippled", Name: "Cripple", NoDamage: true},
	{ID: "chilled", Name: "Chill", NoDamage: true},
	{ID: "immobilized", Name: "Immobilize", NoDamage: true},
	{ID: "slow", Name: "Slow", NoDamage: true},
	{ID: "fear", Name: "Fear", NoDamage: true},
	{ID: "taunt", Name: "Taunt", NoDamage: true},
}

// ConditionInfo describes one condition present in a dataset.
type ConditionInfo struct {
	ID       string
	Name     string
	NoDamage bool
}

// Conditions builds the condition catalog: "All Conditions" first, then one
// metric per condition. With no conditions listed it falls back to the
// known conditions.
func Conditions(conditions []ConditionInfo) Catalog {
	if len(conditions) == 0 {
		conditions = knownConditions
	}
	metrics := make([]Metric, 0, len(conditions)+1)
	metrics = append(metrics, ConditionMetric{ConditionID: AllConditions, Name: "All Conditions"})
	for _, c := range conditions {
		if c.ID == AllConditions {
			continue
		}
		metrics = append(metrics, ConditionMetric{ConditionID: c.ID, Name: conditionName(c), NoDamage: c.NoDamage || knownNoDamage(c.ID)})
	}
	return Catalog{Domain: DomainConditions, Metrics: metrics}
}

func knownNoDamage(id string) bool {
	for _, k := range knownConditions {
		if k.ID == id {
			return k.NoDamage
		}
	}
	return false
}

func conditionName(c ConditionInfo) string {
	if c.Name != "" {
		return c.Name
	}
	for _, k := range knownConditions {
		if k.ID == c.ID {
			return k.Name
		}
	}
	return capitalize(c.ID)
}

// ForDomain returns the static catalog of a domain. Boons depend on the
// dataset and come back empty here.
func ForDomain(d Domain) Catalog {
	switch d {
	case DomainOffense:
		return Offense()
	case DomainDefense:
		return Defense()
	case DomainSupport:
		return Support()
	case DomainHealing:
		return Healing()
	case DomainMitigation:
		return Mitigation()
	case DomainConditions:
		return Conditions(nil)
	default:
		return Catalog{Domain: d}
	}
}
