package modifiers

// Kind determines how a modifier's value composes into a stat
type Kind string

const (
	// KindBase is a flat addition to the stat's base value
	KindBase Kind = "BASE"

	// KindInc is an additive percentage; 0.2 means +20% increased
	KindInc Kind = "INC"

	// KindMore is a multiplicative percentage; 0.2 means 20% more
	KindMore Kind = "MORE"

	// KindOverride replaces the computed value; the highest override wins
	KindOverride Kind = "OVERRIDE"

	// KindFlag marks a boolean capability; the value is ignored
	KindFlag Kind = "FLAG"

	// KindList accumulates opaque payloads in insertion order
	KindList Kind = "LIST"
)

// Source represents where a modifier comes from
type Source string

const (
	SourceItem       Source = "item"
	SourcePassive    Source = "passive"
	SourceGem        Source = "gem"
	SourceJewel      Source = "jewel"
	SourceFlask      Source = "flask"
	SourceAura       Source = "aura"
	SourceCurse      Source = "curse"
	SourceConfig     Source = "config"
	SourceEnchant    Source = "enchant"
	SourceCorruption Source = "corruption"
	SourceCrafted    Source = "crafted"
)

// Modifier is a single declarative contribution to one or more named stats.
// Value is interpreted strictly by Kind: an absolute delta for BASE, a
// fraction for INC/MORE (0.2 = 20%), an absolute replacement for OVERRIDE,
// and ignored for FLAG. LIST modifiers carry their contribution in Payload
// instead.
type Modifier struct {
	// Stats are the stat names this modifier writes to; a query matches
	// when any queried name intersects this set
	Stats []string

	// Kind selects the composition semantics for Value
	Kind Kind

	// Value is the numeric contribution for BASE/INC/MORE/OVERRIDE
	Value float64

	// Payload is the opaque contribution of a LIST modifier; payloads are
	// appended in insertion order and never merged
	Payload any

	// DamageFlags restricts eligibility by damage/attack type; zero means
	// unrestricted
	DamageFlags DamageFlag

	// KeywordFlags restricts eligibility by skill keyword; zero means
	// unrestricted
	KeywordFlags KeywordFlag

	// Source is the origin kind, used with SourceID for bulk removal
	Source Source

	// SourceID identifies the specific origin instance
	SourceID string

	// Condition optionally gates or scales this modifier per query
	Condition Condition

	// Disabled excludes the modifier from every aggregation without
	// removing it from storage
	Disabled bool
}

// clone returns a copy that shares no mutable storage with m. Payloads are
// opaque and kept by reference; condition variants are immutable values.
func (m Modifier) clone() Modifier {
	if m.Stats != nil {
		stats := make([]string, len(m.Stats))
		copy(stats, m.Stats)
		m.Stats = stats
	}
	return m
}

// appliesToStat reports whether the modifier writes to any queried name
func (m *Modifier) appliesToStat(names []string) bool {
	for _, want := range names {
		for _, have := range m.Stats {
			if have == want {
				return true
			}
		}
	}
	return false
}
