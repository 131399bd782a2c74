package modifiers

import (
	"github.com/KirkDiggler/buildstats/internal/errors"
)

// DamageFlag is a wide bitset describing the damage/attack-type context a
// modifier or query applies to. Zero means unrestricted.
type DamageFlag uint64

const (
	DamageAttack DamageFlag = 1 << iota
	DamageSpell
	DamageHit
	DamageAilment
	DamageOverTime
	DamageMelee
	DamageRanged
	DamageArea
	DamageProjectile
	DamageAxe
	DamageBow
	DamageClaw
	DamageDagger
	DamageMace
	DamageStaff
	DamageSword
	DamageWand
	DamageUnarmed
)

// KeywordFlag is a wide bitset describing the skill-keyword context a
// modifier or query applies to. It is independent of DamageFlag and
// evaluated with the identical matching rule.
type KeywordFlag uint64

const (
	KeywordAura KeywordFlag = 1 << iota
	KeywordCurse
	KeywordWarcry
	KeywordMovement
	KeywordMinion
	KeywordTotem
	KeywordTrap
	KeywordMine
	KeywordBrand
	KeywordChannelling
	KeywordVaal
	KeywordPhysical
	KeywordFire
	KeywordCold
	KeywordLightning
	KeywordChaos
)

// DamageFlagByName maps the external data names onto damage bits
var DamageFlagByName = map[string]DamageFlag{
	"Attack":     DamageAttack,
	"Spell":      DamageSpell,
	"Hit":        DamageHit,
	"Ailment":    DamageAilment,
	"OverTime":   DamageOverTime,
	"Melee":      DamageMelee,
	"Ranged":     DamageRanged,
	"Area":       DamageArea,
	"Projectile": DamageProjectile,
	"Axe":        DamageAxe,
	"Bow":        DamageBow,
	"Claw":       DamageClaw,
	"Dagger":     DamageDagger,
	"Mace":       DamageMace,
	"Staff":      DamageStaff,
	"Sword":      DamageSword,
	"Wand":       DamageWand,
	"Unarmed":    DamageUnarmed,
}

// KeywordFlagByName maps the external data names onto keyword bits
var KeywordFlagByName = map[string]KeywordFlag{
	"Aura":        KeywordAura,
	"Curse":       KeywordCurse,
	"Warcry":      KeywordWarcry,
	"Movement":    KeywordMovement,
	"Minion":      KeywordMinion,
	"Totem":       KeywordTotem,
	"Trap":        KeywordTrap,
	"Mine":        KeywordMine,
	"Brand":       KeywordBrand,
	"Channelling": KeywordChannelling,
	"Vaal":        KeywordVaal,
	"Physical":    KeywordPhysical,
	"Fire":        KeywordFire,
	"Cold":        KeywordCold,
	"Lightning":   KeywordLightning,
	"Chaos":       KeywordChaos,
}

// ParseDamageFlags combines the named damage bits into one bitset
func ParseDamageFlags(names ...string) (DamageFlag, error) {
	var flags DamageFlag
	for _, name := range names {
		bit, ok := DamageFlagByName[name]
		if !ok {
			return 0, errors.InvalidArgumentf("unknown damage flag %q", name)
		}
		flags |= bit
	}
	return flags, nil
}

// ParseKeywordFlags combines the named keyword bits into one bitset
func ParseKeywordFlags(names ...string) (KeywordFlag, error) {
	var flags KeywordFlag
	for _, name := range names {
		bit, ok := KeywordFlagByName[name]
		if !ok {
			return 0, errors.InvalidArgumentf("unknown keyword flag %q", name)
		}
		flags |= bit
	}
	return flags, nil
}

// Matches reports whether a modifier restricted to f is eligible for a
// query asking about the bits in query. An unrestricted modifier (f == 0)
// matches every query; otherwise the modifier must carry at least every
// bit the query asks about, and extra bits are irrelevant.
func (f DamageFlag) Matches(query DamageFlag) bool {
	return matchFlags(uint64(f), uint64(query))
}

// Matches applies the same superset rule to keyword bits
func (f KeywordFlag) Matches(query KeywordFlag) bool {
	return matchFlags(uint64(f), uint64(query))
}

// matchFlags is the single eligibility predicate shared by every
// aggregation: (mod & query) == query, with zero meaning unrestricted
func matchFlags(mod, query uint64) bool {
	return mod == 0 || mod&query == query
}
