package resolver

import (
	"github.com/KirkDiggler/buildstats/internal/modifiers"
)

// Attributes are the three primary character attributes
type Attributes struct {
	Str float64
	Dex float64
	Int float64
}

// Config is the resolver's view of the character outside the modifier
// pool: level, base attributes, and the ambient conditions and stats the
// configuration panel exposes to modifier conditions
type Config struct {
	Level      int
	Attributes Attributes
	Conditions map[string]bool
	Stats      map[string]float64
}

// Partial carries a configuration update; nil fields are left untouched
// and the condition/stat maps are merged key-wise
type Partial struct {
	Level      *int
	Attributes *Attributes
	Conditions map[string]bool
	Stats      map[string]float64
}

// SourceLine is one contributor in a breakdown
type SourceLine struct {
	// Label names the contributor, an origin kind such as "item" or the
	// synthesized "Attributes" entry
	Label string

	Base      float64
	Increased float64

	// More is a multiplier; 1 means no multiplicative contribution
	More float64

	// Override is the contributor's winning override value, nil when it
	// contributed none
	Override *float64
}

// Resolved is the final value of one stat query with its breakdown.
// Instances are shared through the resolver cache and must be treated as
// read-only by callers.
type Resolved struct {
	Stat      string
	Value     float64
	Base      float64
	Increased float64
	More      float64
	Override  *float64

	// Sources lists contributors with a non-zero net effect
	Sources []SourceLine
}

type cacheKey struct {
	stat    string
	damage  modifiers.DamageFlag
	keyword modifiers.KeywordFlag
}

type query struct {
	damage  modifiers.DamageFlag
	keyword modifiers.KeywordFlag
}

// Option narrows a resolve call to a damage/keyword context
type Option func(*query)

// WithDamageFlags restricts the query to the given damage/attack-type bits
func WithDamageFlags(flags modifiers.DamageFlag) Option {
	return func(q *query) {
		q.damage |= flags
	}
}

// WithKeywordFlags restricts the query to the given skill-keyword bits
func WithKeywordFlags(flags modifiers.KeywordFlag) Option {
	return func(q *query) {
		q.keyword |= flags
	}
}

// Resolver is the stat facade over one modifier store. It memoizes results
// by (stat, damage flags, keyword flags) and returns the stored *Resolved
// on a hit, so the UI layer can change-detect by pointer identity. Not
// safe for concurrent use; one build's store and resolver belong to one
// worker at a time.
type Resolver struct {
	store ModStore
	cfg   Config

	cache     map[cacheKey]*Resolved
	storeGen  uint64
	genValid  bool
	resolving map[cacheKey]bool
	cycles    int
}

// New creates a resolver over store with the given configuration
func New(store ModStore, cfg Config) *Resolver {
	return &Resolver{
		store:     store,
		cfg:       copyConfig(cfg),
		cache:     make(map[cacheKey]*Resolved),
		resolving: make(map[cacheKey]bool),
	}
}

// Resolve computes one stat, optionally narrowed by damage/keyword flags.
// While neither the store nor the configuration changes, repeated calls
// with the same stat and flags return the identical *Resolved.
func (r *Resolver) Resolve(stat string, opts ...Option) (*Resolved, error) {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return r.resolve(stat, q)
}

// ResolveMany resolves every requested stat under the same flags
func (r *Resolver) ResolveMany(stats []string, opts ...Option) (map[string]*Resolved, error) {
	var q query
	for _, opt := range opts {
		opt(&q)
	}

	results := make(map[string]*Resolved, len(stats))
	for _, stat := range stats {
		res, err := r.resolve(stat, q)
		if err != nil {
			return nil, err
		}
		results[stat] = res
	}
	return results, nil
}

// GetAttributes returns the configured base attributes. The copy is
// independent; callers resolve "Strength" etc. for modifier-adjusted
// values.
func (r *Resolver) GetAttributes() Attributes {
	return r.cfg.Attributes
}

// UpdateConfig merges a partial configuration and invalidates the cache
func (r *Resolver) UpdateConfig(p Partial) {
	if p.Level != nil {
		r.cfg.Level = *p.Level
	}
	if p.Attributes != nil {
		r.cfg.Attributes = *p.Attributes
	}
	if len(p.Conditions) > 0 {
		if r.cfg.Conditions == nil {
			r.cfg.Conditions = make(map[string]bool, len(p.Conditions))
		}
		for k, v := range p.Conditions {
			r.cfg.Conditions[k] = v
		}
	}
	if len(p.Stats) > 0 {
		if r.cfg.Stats == nil {
			r.cfg.Stats = make(map[string]float64, len(p.Stats))
		}
		for k, v := range p.Stats {
			r.cfg.Stats[k] = v
		}
	}
	r.cache = make(map[cacheKey]*Resolved)
}

// ClearCache drops every memoized result without touching configuration
func (r *Resolver) ClearCache() {
	r.cache = make(map[cacheKey]*Resolved)
}

// CycleCount reports how many resolutions were cut short by the cycle
// guard, a data-quality signal the caller may log
func (r *Resolver) CycleCount() int {
	return r.cycles
}

func (r *Resolver) resolve(stat string, q query) (*Resolved, error) {
	r.refresh()

	key := cacheKey{stat: stat, damage: q.damage, keyword: q.keyword}
	if hit, ok := r.cache[key]; ok {
		return hit, nil
	}

	// A stat whose resolution re-enters itself transitively resolves to
	// zero instead of recursing without bound. Guard results are not
	// cached: they depend on the in-flight path, not on the key.
	if r.resolving[key] {
		r.cycles++
		return &Resolved{Stat: stat, More: 1}, nil
	}
	r.resolving[key] = true
	defer delete(r.resolving, key)

	ctx, err := r.newContext(stat, q)
	if err != nil {
		return nil, err
	}

	calc, err := r.store.Calc(stat, ctx)
	if err != nil {
		return nil, err
	}
	contribs, err := r.store.Contributions(stat, ctx)
	if err != nil {
		return nil, err
	}

	attrBase, attrInc := r.attributeBonus(stat, q)

	res := &Resolved{
		Stat:      stat,
		Base:      calc.Base + attrBase,
		Increased: calc.Inc + attrInc,
		More:      calc.More,
	}

	// Attribute stats are seeded with their configured base so equipment
	// and tree modifiers stack on top of the character sheet
	var charBase float64
	if base, ok := r.attributeBase(stat); ok {
		charBase = base
		res.Base += base
	}

	if calc.Override != nil {
		v := *calc.Override
		res.Override = &v
		res.Value = v
	} else {
		res.Value = res.Base * (1 + res.Increased) * res.More
	}

	res.Sources = buildSources(contribs, charBase, attrBase, attrInc)

	r.cache[key] = res
	return res, nil
}

// refresh drops the cache when the backing store has mutated since the
// last resolve
func (r *Resolver) refresh() {
	gen := r.store.Generation()
	if r.genValid && gen == r.storeGen {
		return
	}
	r.storeGen = gen
	r.genValid = true
	r.cache = make(map[cacheKey]*Resolved)
}

// newContext assembles the filter context for one query: configured stats
// and conditions, the character level, and the effective attribute values.
// Attribute stats see configured bases only, which keeps attribute
// resolution non-recursive.
func (r *Resolver) newContext(stat string, q query) (*modifiers.FilterContext, error) {
	stats := make(map[string]float64, len(r.cfg.Stats)+4)
	for k, v := range r.cfg.Stats {
		stats[k] = v
	}
	stats["Level"] = float64(r.cfg.Level)

	if _, isAttr := r.attributeBase(stat); isAttr {
		stats[StatStrength] = r.cfg.Attributes.Str
		stats[StatDexterity] = r.cfg.Attributes.Dex
		stats[StatIntelligence] = r.cfg.Attributes.Int
	} else {
		for _, name := range attributeStats {
			res, err := r.resolve(name, query{})
			if err != nil {
				return nil, err
			}
			stats[name] = res.Value
		}
	}

	return modifiers.NewContext(&modifiers.ContextConfig{
		DamageFlags:  q.damage,
		KeywordFlags: q.keyword,
		Stats:        stats,
		Conditions:   r.cfg.Conditions,
	}), nil
}

// buildSources groups contributions by origin kind in first-appearance
// order, appends the configured character base and the synthesized
// attribute line, and drops every contributor whose net effect is exactly
// zero
func buildSources(contribs []modifiers.Contribution, charBase, attrBase, attrInc float64) []SourceLine {
	var order []string
	lines := make(map[string]*SourceLine)

	for _, c := range contribs {
		label := string(c.Source)
		line, ok := lines[label]
		if !ok {
			line = &SourceLine{Label: label, More: 1}
			lines[label] = line
			order = append(order, label)
		}
		switch c.Kind {
		case modifiers.KindBase:
			line.Base += c.Value
		case modifiers.KindInc:
			line.Increased += c.Value
		case modifiers.KindMore:
			line.More *= 1 + c.Value
		case modifiers.KindOverride:
			if line.Override == nil || c.Value > *line.Override {
				v := c.Value
				line.Override = &v
			}
		}
	}

	var out []SourceLine
	if charBase != 0 {
		out = append(out, SourceLine{Label: "Character", Base: charBase, More: 1})
	}
	for _, label := range order {
		line := lines[label]
		if line.Base == 0 && line.Increased == 0 && line.More == 1 && line.Override == nil {
			continue
		}
		out = append(out, *line)
	}
	if attrBase != 0 || attrInc != 0 {
		out = append(out, SourceLine{Label: "Attributes", Base: attrBase, Increased: attrInc, More: 1})
	}
	return out
}

func copyConfig(cfg Config) Config {
	out := cfg
	if cfg.Conditions != nil {
		out.Conditions = make(map[string]bool, len(cfg.Conditions))
		for k, v := range cfg.Conditions {
			out.Conditions[k] = v
		}
	}
	if cfg.Stats != nil {
		out.Stats = make(map[string]float64, len(cfg.Stats))
		for k, v := range cfg.Stats {
			out.Stats[k] = v
		}
	}
	return out
}
