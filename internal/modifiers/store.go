package modifiers

import (
	"github.com/KirkDiggler/buildstats/internal/errors"
)

// Calculation is the combined aggregate for one stat query
type Calculation struct {
	// Value is Override when present, otherwise Base * (1 + Inc) * More
	Value float64

	// Base is the sum of eligible BASE values
	Base float64

	// Inc is the sum of eligible INC fractions
	Inc float64

	// More is the product of (1 + value) over eligible MORE modifiers
	More float64

	// Override is the greatest eligible OVERRIDE value, nil when absent
	Override *float64
}

// Contribution is one eligible modifier's effect on a query, used by the
// resolver to assemble breakdowns
type Contribution struct {
	Source   Source
	SourceID string
	Kind     Kind

	// Value is the effective (condition-scaled) value
	Value float64
}

// Store is an append-only multiset of modifiers with aggregation queries.
// A store may delegate read-only to exactly one parent store (a minion's
// store delegating to the player's); queries fold local and parent results
// with the operator appropriate to the query kind. Stores are not safe for
// concurrent mutation; mutation and query must be serialized per build.
type Store struct {
	actor      string
	parent     *Store
	mods       []Modifier
	generation uint64
}

// NewStore creates an empty store tagged with an actor name, e.g. "player".
// The tag is for caller-side routing; the store never reads it.
func NewStore(actor string) *Store {
	return &Store{actor: actor}
}

// NewChildStore creates a store that delegates queries to parent. The
// parent must be fully constructed before the child starts querying; the
// child never mutates it.
func NewChildStore(actor string, parent *Store) *Store {
	return &Store{actor: actor, parent: parent}
}

// Actor returns the actor tag
func (s *Store) Actor() string {
	return s.actor
}

// Parent returns the parent store, or nil for a root store
func (s *Store) Parent() *Store {
	return s.parent
}

// Len returns the number of locally stored modifiers, including disabled
// ones
func (s *Store) Len() int {
	return len(s.mods)
}

// Generation returns a counter that changes whenever this store or any
// store in its parent chain mutates. Callers use it to invalidate caches
// without subscribing to events.
func (s *Store) Generation() uint64 {
	gen := s.generation
	if s.parent != nil {
		gen += s.parent.Generation()
	}
	return gen
}

// Add appends one modifier
func (s *Store) Add(mod Modifier) {
	s.mods = append(s.mods, mod.clone())
	s.generation++
}

// AddMany appends modifiers in order
func (s *Store) AddMany(mods []Modifier) {
	for _, mod := range mods {
		s.mods = append(s.mods, mod.clone())
	}
	s.generation++
}

// Merge copies other's locally stored modifiers into this store by value.
// It never re-parents: other's parent chain is not walked and this store's
// parent is untouched.
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}
	for _, mod := range other.mods {
		s.mods = append(s.mods, mod.clone())
	}
	s.generation++
}

// Clone returns a deep copy of the store's local modifiers sharing the
// same parent reference
func (s *Store) Clone() *Store {
	clone := &Store{actor: s.actor, parent: s.parent}
	clone.mods = make([]Modifier, 0, len(s.mods))
	for _, mod := range s.mods {
		clone.mods = append(clone.mods, mod.clone())
	}
	return clone
}

// RemoveBySource removes every local modifier from the given source,
// narrowed to one origin instance when sourceID is non-empty. The parent
// store is never touched.
func (s *Store) RemoveBySource(source Source, sourceID string) {
	kept := s.mods[:0]
	for _, mod := range s.mods {
		if mod.Source == source && (sourceID == "" || mod.SourceID == sourceID) {
			continue
		}
		kept = append(kept, mod)
	}
	s.mods = kept
	s.generation++
}

// Sum accumulates the effective values of eligible BASE or INC modifiers
// over this store and its parent chain. args is one or more stat names
// optionally followed by a single trailing *FilterContext. Zero stat names
// is degenerate and sums nothing.
func (s *Store) Sum(kind Kind, args ...any) (float64, error) {
	if kind != KindBase && kind != KindInc {
		return 0, errors.InvalidArgumentf("kind %s is not summable", kind)
	}
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return 0, err
	}
	return s.sum(kind, names, ctx), nil
}

func (s *Store) sum(kind Kind, names []string, ctx *FilterContext) float64 {
	var total float64
	for i := range s.mods {
		if scale, ok := s.eligible(&s.mods[i], kind, names, ctx); ok {
			total += s.mods[i].Value * scale
		}
	}
	if s.parent != nil {
		total += s.parent.sum(kind, names, ctx)
	}
	return total
}

// More computes the product of (1 + value) across eligible MORE modifiers,
// local and inherited. The multiplicative identity 1 is returned when
// nothing matches.
func (s *Store) More(args ...any) (float64, error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return 1, err
	}
	return s.more(names, ctx), nil
}

func (s *Store) more(names []string, ctx *FilterContext) float64 {
	product := 1.0
	for i := range s.mods {
		if scale, ok := s.eligible(&s.mods[i], KindMore, names, ctx); ok {
			product *= 1 + s.mods[i].Value*scale
		}
	}
	if s.parent != nil {
		product *= s.parent.more(names, ctx)
	}
	return product
}

// Flag reports whether at least one eligible FLAG modifier targets a
// queried name, locally or through the parent chain
func (s *Store) Flag(args ...any) (bool, error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return false, err
	}
	return s.flag(names, ctx), nil
}

func (s *Store) flag(names []string, ctx *FilterContext) bool {
	for i := range s.mods {
		if _, ok := s.eligible(&s.mods[i], KindFlag, names, ctx); ok {
			return true
		}
	}
	if s.parent != nil {
		return s.parent.flag(names, ctx)
	}
	return false
}

// Override returns the numerically greatest eligible OVERRIDE value across
// the store and its parent chain; ok is false when none match
func (s *Store) Override(args ...any) (value float64, ok bool, err error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return 0, false, err
	}
	value, ok = s.override(names, ctx)
	return value, ok, nil
}

func (s *Store) override(names []string, ctx *FilterContext) (float64, bool) {
	var best float64
	var found bool
	for i := range s.mods {
		scale, ok := s.eligible(&s.mods[i], KindOverride, names, ctx)
		if !ok {
			continue
		}
		v := s.mods[i].Value * scale
		if !found || v > best {
			best = v
			found = true
		}
	}
	if s.parent != nil {
		if v, ok := s.parent.override(names, ctx); ok && (!found || v > best) {
			best = v
			found = true
		}
	}
	return best, found
}

// List collects eligible LIST payloads in insertion order. Local payloads
// come first and the parent chain's are appended after them; that order is
// part of the store's contract.
func (s *Store) List(args ...any) ([]any, error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return nil, err
	}
	return s.list(names, ctx), nil
}

func (s *Store) list(names []string, ctx *FilterContext) []any {
	var payloads []any
	for i := range s.mods {
		if _, ok := s.eligible(&s.mods[i], KindList, names, ctx); ok {
			payloads = append(payloads, s.mods[i].Payload)
		}
	}
	if s.parent != nil {
		payloads = append(payloads, s.parent.list(names, ctx)...)
	}
	return payloads
}

// Calc runs the combined aggregate for one query: Value is the winning
// override when one exists, otherwise Base * (1 + Inc) * More
func (s *Store) Calc(args ...any) (Calculation, error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return Calculation{}, err
	}

	calc := Calculation{
		Base: s.sum(KindBase, names, ctx),
		Inc:  s.sum(KindInc, names, ctx),
		More: s.more(names, ctx),
	}
	if v, ok := s.override(names, ctx); ok {
		calc.Override = &v
		calc.Value = v
	} else {
		calc.Value = calc.Base * (1 + calc.Inc) * calc.More
	}
	return calc, nil
}

// Contributions returns every eligible numeric contribution
// (BASE/INC/MORE/OVERRIDE) for a query with its effective value, local
// entries before the parent chain's. FLAG and LIST modifiers carry no
// numeric effect and are omitted.
func (s *Store) Contributions(args ...any) ([]Contribution, error) {
	names, ctx, err := splitQueryArgs(args)
	if err != nil {
		return nil, err
	}
	return s.contributions(names, ctx), nil
}

func (s *Store) contributions(names []string, ctx *FilterContext) []Contribution {
	var contribs []Contribution
	for i := range s.mods {
		mod := &s.mods[i]
		switch mod.Kind {
		case KindBase, KindInc, KindMore, KindOverride:
		default:
			continue
		}
		scale, ok := s.eligible(mod, mod.Kind, names, ctx)
		if !ok {
			continue
		}
		contribs = append(contribs, Contribution{
			Source:   mod.Source,
			SourceID: mod.SourceID,
			Kind:     mod.Kind,
			Value:    mod.Value * scale,
		})
	}
	if s.parent != nil {
		contribs = append(contribs, s.parent.contributions(names, ctx)...)
	}
	return contribs
}

// eligible applies the shared matching rule: enabled, kind match, stat
// name intersection, both flag bitsets, then the condition. The returned
// scale is the condition's value factor.
func (s *Store) eligible(mod *Modifier, kind Kind, names []string, ctx *FilterContext) (float64, bool) {
	if mod.Disabled || mod.Kind != kind {
		return 0, false
	}
	if !mod.appliesToStat(names) {
		return 0, false
	}
	if !mod.DamageFlags.Matches(ctx.DamageFlags()) {
		return 0, false
	}
	if !mod.KeywordFlags.Matches(ctx.KeywordFlags()) {
		return 0, false
	}
	pass, scale := evalCondition(mod.Condition, ctx)
	if !pass {
		return 0, false
	}
	return scale, true
}

// splitQueryArgs enforces the aggregation calling convention: one or more
// stat-name strings followed by an optional single trailing
// *FilterContext. Violations are caller defects and reported as invalid
// argument errors rather than silently coerced.
func splitQueryArgs(args []any) ([]string, *FilterContext, error) {
	var names []string
	var ctx *FilterContext
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			if ctx != nil {
				return nil, nil, errors.InvalidArgument("filter context must be the last query argument")
			}
			names = append(names, v)
		case *FilterContext:
			if ctx != nil || i != len(args)-1 {
				return nil, nil, errors.InvalidArgument("filter context must be the last query argument")
			}
			if len(names) == 0 {
				return nil, nil, errors.InvalidArgument("filter context requires at least one stat name")
			}
			ctx = v
		default:
			return nil, nil, errors.InvalidArgumentf("query argument %d must be a stat name or *FilterContext, got %T", i, arg)
		}
	}
	return names, ctx, nil
}
