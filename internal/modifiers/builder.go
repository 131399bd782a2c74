package modifiers

import (
	"github.com/KirkDiggler/buildstats/internal/uuid"
)

// Builder assembles a modifier fluently, for callers that construct
// modifiers in code rather than receiving them from a translator
type Builder struct {
	mod Modifier
}

// NewBuilder starts a modifier targeting the given stat names
func NewBuilder(stats ...string) *Builder {
	return &Builder{
		mod: Modifier{
			Stats: stats,
			Kind:  KindBase,
		},
	}
}

// Base sets a flat-addition value
func (b *Builder) Base(value float64) *Builder {
	b.mod.Kind = KindBase
	b.mod.Value = value
	return b
}

// Inc sets an additive-percentage value (0.2 = +20% increased)
func (b *Builder) Inc(value float64) *Builder {
	b.mod.Kind = KindInc
	b.mod.Value = value
	return b
}

// More sets a multiplicative-percentage value (0.2 = 20% more)
func (b *Builder) More(value float64) *Builder {
	b.mod.Kind = KindMore
	b.mod.Value = value
	return b
}

// Override sets a hard-replacement value
func (b *Builder) Override(value float64) *Builder {
	b.mod.Kind = KindOverride
	b.mod.Value = value
	return b
}

// Flag marks the modifier as a boolean capability
func (b *Builder) Flag() *Builder {
	b.mod.Kind = KindFlag
	b.mod.Value = 0
	return b
}

// List sets an opaque payload contribution
func (b *Builder) List(payload any) *Builder {
	b.mod.Kind = KindList
	b.mod.Payload = payload
	return b
}

// From sets the origin kind and instance ID
func (b *Builder) From(source Source, sourceID string) *Builder {
	b.mod.Source = source
	b.mod.SourceID = sourceID
	return b
}

// FromGenerated sets the origin kind and mints a fresh instance ID, for
// origins created in code (a crafted item, a spawned jewel) that need a
// unique handle for later RemoveBySource
func (b *Builder) FromGenerated(source Source, gen uuid.Generator) *Builder {
	b.mod.Source = source
	b.mod.SourceID = gen.New()
	return b
}

// WithDamageFlags restricts eligibility by damage/attack-type bits
func (b *Builder) WithDamageFlags(flags DamageFlag) *Builder {
	b.mod.DamageFlags = flags
	return b
}

// WithKeywordFlags restricts eligibility by skill-keyword bits
func (b *Builder) WithKeywordFlags(flags KeywordFlag) *Builder {
	b.mod.KeywordFlags = flags
	return b
}

// When attaches a condition
func (b *Builder) When(cond Condition) *Builder {
	b.mod.Condition = cond
	return b
}

// Disabled stores the modifier excluded from aggregation
func (b *Builder) Disabled() *Builder {
	b.mod.Disabled = true
	return b
}

// Build returns the constructed modifier
func (b *Builder) Build() Modifier {
	return b.mod
}
