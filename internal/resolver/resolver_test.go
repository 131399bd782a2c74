package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/buildstats/internal/modifiers"
	"github.com/KirkDiggler/buildstats/internal/resolver"
)

// The real store must satisfy the resolver's view of it
var _ resolver.ModStore = (*modifiers.Store)(nil)

func TestResolver_AttributeBonuses(t *testing.T) {
	t.Run("strength adds flat life", func(t *testing.T) {
		store := modifiers.NewStore("player")
		store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 100, Source: modifiers.SourceItem})

		r := resolver.New(store, resolver.Config{
			Level:      1,
			Attributes: resolver.Attributes{Str: 100},
		})

		res, err := r.Resolve("Life")
		require.NoError(t, err)
		assert.InDelta(t, 150, res.Value, 1e-9)
		assert.InDelta(t, 150, res.Base, 1e-9)
	})

	t.Run("attributes appear as one aggregated source", func(t *testing.T) {
		store := modifiers.NewStore("player")
		store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 100, Source: modifiers.SourceItem})

		r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Str: 100}})

		res, err := r.Resolve("Life")
		require.NoError(t, err)
		require.Len(t, res.Sources, 2)
		assert.Equal(t, "item", res.Sources[0].Label)
		assert.Equal(t, 100.0, res.Sources[0].Base)
		assert.Equal(t, "Attributes", res.Sources[1].Label)
		assert.Equal(t, 50.0, res.Sources[1].Base)
	})

	t.Run("strength scales melee damage", func(t *testing.T) {
		store := modifiers.NewStore("player")
		store.Add(modifiers.Modifier{Stats: []string{"Damage"}, Kind: modifiers.KindBase, Value: 100})

		r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Str: 100}})

		melee, err := r.Resolve("Damage", resolver.WithDamageFlags(modifiers.DamageMelee))
		require.NoError(t, err)
		assert.InDelta(t, 120, melee.Value, 1e-9)

		// The melee-flagged bonus does not apply to a melee+projectile query
		thrown, err := r.Resolve("Damage", resolver.WithDamageFlags(modifiers.DamageMelee|modifiers.DamageProjectile))
		require.NoError(t, err)
		assert.InDelta(t, 100, thrown.Value, 1e-9)
	})

	t.Run("dexterity and intelligence bonuses", func(t *testing.T) {
		store := modifiers.NewStore("player")
		store.Add(modifiers.Modifier{Stats: []string{"Evasion"}, Kind: modifiers.KindBase, Value: 1000})
		store.Add(modifiers.Modifier{Stats: []string{"Mana"}, Kind: modifiers.KindBase, Value: 40})

		r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Dex: 50, Int: 60}})

		evasion, err := r.Resolve("Evasion")
		require.NoError(t, err)
		assert.InDelta(t, 1100, evasion.Value, 1e-9) // 1000 * (1 + 50*0.002)

		accuracy, err := r.Resolve("Accuracy")
		require.NoError(t, err)
		assert.InDelta(t, 100, accuracy.Value, 1e-9) // 50 * 2 flat

		mana, err := r.Resolve("Mana")
		require.NoError(t, err)
		assert.InDelta(t, 70, mana.Value, 1e-9) // 40 + 60*0.5
	})

	t.Run("negative attributes contribute nothing", func(t *testing.T) {
		store := modifiers.NewStore("player")
		store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 100})

		r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Str: -40}})

		res, err := r.Resolve("Life")
		require.NoError(t, err)
		assert.InDelta(t, 100, res.Value, 1e-9, "attribute contributions are never negative")
	})
}

func TestResolver_FlagFiltering(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"Damage"}, Kind: modifiers.KindBase, Value: 100})
	store.Add(modifiers.Modifier{Stats: []string{"Damage"}, Kind: modifiers.KindInc, Value: 0.2, DamageFlags: modifiers.DamageAttack})
	store.Add(modifiers.Modifier{Stats: []string{"Damage"}, Kind: modifiers.KindInc, Value: 0.3, DamageFlags: modifiers.DamageSpell})

	r := resolver.New(store, resolver.Config{})

	attack, err := r.Resolve("Damage", resolver.WithDamageFlags(modifiers.DamageAttack))
	require.NoError(t, err)
	assert.InDelta(t, 120, attack.Value, 1e-9)

	spell, err := r.Resolve("Damage", resolver.WithDamageFlags(modifiers.DamageSpell))
	require.NoError(t, err)
	assert.InDelta(t, 130, spell.Value, 1e-9)
}

func TestResolver_ConfigConditions(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"Damage"}, Kind: modifiers.KindBase, Value: 100})
	store.Add(modifiers.Modifier{
		Stats:     []string{"Damage"},
		Kind:      modifiers.KindMore,
		Value:     0.4,
		Condition: modifiers.BoolCondition{Name: "LowLife"},
	})

	r := resolver.New(store, resolver.Config{Conditions: map[string]bool{"LowLife": true}})

	res, err := r.Resolve("Damage")
	require.NoError(t, err)
	assert.InDelta(t, 140, res.Value, 1e-9)

	r.UpdateConfig(resolver.Partial{Conditions: map[string]bool{"LowLife": false}})

	res, err = r.Resolve("Damage")
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Value, 1e-9)
}

func TestResolver_AttributesVisibleToConditions(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{
		Stats:     []string{"Armour"},
		Kind:      modifiers.KindBase,
		Value:     5,
		Condition: modifiers.PerStatCondition{Stat: "Strength", Divisor: 10},
	})

	r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Str: 50}})

	res, err := r.Resolve("Armour")
	require.NoError(t, err)
	assert.InDelta(t, 25, res.Value, 1e-9)

	// Modifiers to the attribute feed back into the scaling
	store.Add(modifiers.Modifier{Stats: []string{"Strength"}, Kind: modifiers.KindBase, Value: 50, Source: modifiers.SourceItem})

	res, err = r.Resolve("Armour")
	require.NoError(t, err)
	assert.InDelta(t, 50, res.Value, 1e-9)
}

func TestResolver_AttributeStats(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"Strength"}, Kind: modifiers.KindBase, Value: 30, Source: modifiers.SourceItem})

	r := resolver.New(store, resolver.Config{Attributes: resolver.Attributes{Str: 20}})

	res, err := r.Resolve("Strength")
	require.NoError(t, err)
	assert.InDelta(t, 50, res.Value, 1e-9)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, "Character", res.Sources[0].Label)
	assert.Equal(t, 20.0, res.Sources[0].Base)
	assert.Equal(t, "item", res.Sources[1].Label)
}

func TestResolver_Override(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"CritChance"}, Kind: modifiers.KindBase, Value: 5})
	store.Add(modifiers.Modifier{Stats: []string{"CritChance"}, Kind: modifiers.KindOverride, Value: 100, Source: modifiers.SourceJewel})

	r := resolver.New(store, resolver.Config{})

	res, err := r.Resolve("CritChance")
	require.NoError(t, err)
	require.NotNil(t, res.Override)
	assert.Equal(t, 100.0, *res.Override)
	assert.Equal(t, 100.0, res.Value)
}

func TestResolver_ZeroNetSourcesOmitted(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 100, Source: modifiers.SourceItem})
	store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindInc, Value: 0, Source: modifiers.SourcePassive})
	store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 40, Source: modifiers.SourceAura, Disabled: true})

	r := resolver.New(store, resolver.Config{})

	res, err := r.Resolve("Life")
	require.NoError(t, err)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "item", res.Sources[0].Label)
}

func TestResolver_UnknownStat(t *testing.T) {
	r := resolver.New(modifiers.NewStore("player"), resolver.Config{})

	res, err := r.Resolve("NeverContributed")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, 1.0, res.More)
	assert.Empty(t, res.Sources)
}

func TestResolver_ResolveMany(t *testing.T) {
	store := modifiers.NewStore("player")
	store.Add(modifiers.Modifier{Stats: []string{"Life"}, Kind: modifiers.KindBase, Value: 100})
	store.Add(modifiers.Modifier{Stats: []string{"Mana"}, Kind: modifiers.KindBase, Value: 60})

	r := resolver.New(store, resolver.Config{})

	results, err := r.ResolveMany([]string{"Life", "Mana"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.InDelta(t, 100, results["Life"].Value, 1e-9)
	assert.InDelta(t, 60, results["Mana"].Value, 1e-9)

	t.Run("shares the cache with Resolve", func(t *testing.T) {
		single, err := r.Resolve("Life")
		require.NoError(t, err)
		assert.Same(t, results["Life"], single)
	})
}

func TestResolver_GetAttributes(t *testing.T) {
	r := resolver.New(modifiers.NewStore("player"), resolver.Config{
		Attributes: resolver.Attributes{Str: 10, Dex: 20, Int: 30},
	})

	attrs := r.GetAttributes()
	attrs.Str = 999

	assert.Equal(t, resolver.Attributes{Str: 10, Dex: 20, Int: 30}, r.GetAttributes())
}
