package resolver

import (
	"github.com/KirkDiggler/buildstats/internal/modifiers"
)

// Attribute stat names, resolvable like any other stat: equipment and tree
// modifiers targeting them stack on the configured base.
const (
	StatStrength     = "Strength"
	StatDexterity    = "Dexterity"
	StatIntelligence = "Intelligence"
)

var attributeStats = []string{StatStrength, StatDexterity, StatIntelligence}

// attrBonus is one per-point contribution an attribute synthesizes into
// another stat
type attrBonus struct {
	stat     string
	kind     modifiers.Kind
	perPoint float64

	// damage restricts the bonus like a modifier's damage bitset
	damage modifiers.DamageFlag
}

var strengthBonuses = []attrBonus{
	{stat: "Life", kind: modifiers.KindBase, perPoint: 0.5},
	{stat: "Damage", kind: modifiers.KindInc, perPoint: 0.002, damage: modifiers.DamageMelee},
}

var dexterityBonuses = []attrBonus{
	{stat: "Accuracy", kind: modifiers.KindBase, perPoint: 2},
	{stat: "Evasion", kind: modifiers.KindInc, perPoint: 0.002},
}

var intelligenceBonuses = []attrBonus{
	{stat: "Mana", kind: modifiers.KindBase, perPoint: 0.5},
	{stat: "EnergyShield", kind: modifiers.KindInc, perPoint: 0.002},
}

// attributeBase returns the configured base for an attribute stat name
func (r *Resolver) attributeBase(stat string) (float64, bool) {
	switch stat {
	case StatStrength:
		return r.cfg.Attributes.Str, true
	case StatDexterity:
		return r.cfg.Attributes.Dex, true
	case StatIntelligence:
		return r.cfg.Attributes.Int, true
	default:
		return 0, false
	}
}

// attributeBonus sums the synthesized contributions of all three
// attributes to one stat query. Non-positive contributions are dropped so
// a negative attribute never subtracts.
func (r *Resolver) attributeBonus(stat string, q query) (base, inc float64) {
	apply := func(points float64, bonuses []attrBonus) {
		for _, b := range bonuses {
			if b.stat != stat || !b.damage.Matches(q.damage) {
				continue
			}
			amount := points * b.perPoint
			if amount <= 0 {
				continue
			}
			switch b.kind {
			case modifiers.KindBase:
				base += amount
			case modifiers.KindInc:
				inc += amount
			}
		}
	}

	apply(r.cfg.Attributes.Str, strengthBonuses)
	apply(r.cfg.Attributes.Dex, dexterityBonuses)
	apply(r.cfg.Attributes.Int, intelligenceBonuses)
	return base, inc
}
