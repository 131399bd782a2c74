package modifiers

// ContextConfig holds the inputs for building a FilterContext
type ContextConfig struct {
	// DamageFlags are the damage/attack-type bits the query asks about
	DamageFlags DamageFlag

	// KeywordFlags are the skill-keyword bits the query asks about
	KeywordFlags KeywordFlag

	// Stats are the named numeric values visible to conditions
	Stats map[string]float64

	// Conditions are the named boolean toggles visible to conditions
	Conditions map[string]bool

	// Slot tags the query with an item slot location, e.g. "Weapon 1"
	Slot string
}

// FilterContext describes a single query's eligibility requirements. It is
// immutable after construction; NewContext copies the config maps so later
// caller mutation cannot leak in.
type FilterContext struct {
	damageFlags  DamageFlag
	keywordFlags KeywordFlag
	stats        map[string]float64
	conditions   map[string]bool
	slot         string
}

// NewContext builds an immutable FilterContext from cfg. A nil cfg yields
// an unrestricted context.
func NewContext(cfg *ContextConfig) *FilterContext {
	if cfg == nil {
		return &FilterContext{}
	}

	ctx := &FilterContext{
		damageFlags:  cfg.DamageFlags,
		keywordFlags: cfg.KeywordFlags,
		slot:         cfg.Slot,
	}
	if len(cfg.Stats) > 0 {
		ctx.stats = make(map[string]float64, len(cfg.Stats))
		for k, v := range cfg.Stats {
			ctx.stats[k] = v
		}
	}
	if len(cfg.Conditions) > 0 {
		ctx.conditions = make(map[string]bool, len(cfg.Conditions))
		for k, v := range cfg.Conditions {
			ctx.conditions[k] = v
		}
	}
	return ctx
}

// DamageFlags returns the query's damage/attack-type bits
func (c *FilterContext) DamageFlags() DamageFlag {
	if c == nil {
		return 0
	}
	return c.damageFlags
}

// KeywordFlags returns the query's skill-keyword bits
func (c *FilterContext) KeywordFlags() KeywordFlag {
	if c == nil {
		return 0
	}
	return c.keywordFlags
}

// Stat returns the named numeric value, or zero when absent
func (c *FilterContext) Stat(name string) float64 {
	if c == nil {
		return 0
	}
	return c.stats[name]
}

// Condition returns the named boolean toggle, or false when absent
func (c *FilterContext) Condition(name string) bool {
	if c == nil {
		return false
	}
	return c.conditions[name]
}

// Slot returns the slot-location tag, or empty when untagged
func (c *FilterContext) Slot() string {
	if c == nil {
		return ""
	}
	return c.slot
}
