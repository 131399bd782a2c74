package modifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalCondition_Bool(t *testing.T) {
	ctx := NewContext(&ContextConfig{
		Conditions: map[string]bool{"LowLife": true, "Fortified": false},
	})

	tests := []struct {
		name     string
		cond     Condition
		expected bool
	}{
		{"true condition passes", BoolCondition{Name: "LowLife"}, true},
		{"false condition fails", BoolCondition{Name: "Fortified"}, false},
		{"absent condition fails", BoolCondition{Name: "Onslaught"}, false},
		{"negated true condition fails", BoolCondition{Name: "LowLife", Negate: true}, false},
		{"negated false condition passes", BoolCondition{Name: "Fortified", Negate: true}, true},
		{"negated absent condition passes", BoolCondition{Name: "Onslaught", Negate: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass, scale := evalCondition(tt.cond, ctx)
			assert.Equal(t, tt.expected, pass)
			assert.Equal(t, 1.0, scale)
		})
	}
}

func TestEvalCondition_Threshold(t *testing.T) {
	ctx := NewContext(&ContextConfig{
		Stats: map[string]float64{"Strength": 150},
	})

	pass, _ := evalCondition(ThresholdCondition{Stat: "Strength", Min: 100}, ctx)
	assert.True(t, pass)

	pass, _ = evalCondition(ThresholdCondition{Stat: "Strength", Min: 150}, ctx)
	assert.True(t, pass, "threshold is inclusive")

	pass, _ = evalCondition(ThresholdCondition{Stat: "Strength", Min: 151}, ctx)
	assert.False(t, pass)

	pass, _ = evalCondition(ThresholdCondition{Stat: "Dexterity", Min: 1}, ctx)
	assert.False(t, pass, "absent stat reads as zero")
}

func TestEvalCondition_PerStat(t *testing.T) {
	ctx := NewContext(&ContextConfig{
		Stats: map[string]float64{"Strength": 55},
	})

	t.Run("scales by floor of stat over divisor", func(t *testing.T) {
		pass, scale := evalCondition(PerStatCondition{Stat: "Strength", Divisor: 10}, ctx)
		assert.True(t, pass)
		assert.Equal(t, 5.0, scale)
	})

	t.Run("absent stat scales to zero but still passes", func(t *testing.T) {
		pass, scale := evalCondition(PerStatCondition{Stat: "Dexterity", Divisor: 10}, ctx)
		assert.True(t, pass)
		assert.Equal(t, 0.0, scale)
	})

	t.Run("zero divisor skips scaling", func(t *testing.T) {
		pass, scale := evalCondition(PerStatCondition{Stat: "Strength", Divisor: 0}, ctx)
		assert.True(t, pass)
		assert.Equal(t, 1.0, scale)
	})

	t.Run("negative divisor skips scaling", func(t *testing.T) {
		pass, scale := evalCondition(PerStatCondition{Stat: "Strength", Divisor: -5}, ctx)
		assert.True(t, pass)
		assert.Equal(t, 1.0, scale)
	})
}

func TestEvalCondition_Counter(t *testing.T) {
	ctx := NewContext(&ContextConfig{
		Stats: map[string]float64{"PowerCharges": 3},
	})

	pass, scale := evalCondition(CounterCondition{Counter: "PowerCharges"}, ctx)
	assert.True(t, pass)
	assert.Equal(t, 3.0, scale)

	pass, scale = evalCondition(CounterCondition{Counter: "FrenzyCharges"}, ctx)
	assert.True(t, pass)
	assert.Equal(t, 0.0, scale)
}

func TestEvalCondition_Slot(t *testing.T) {
	ctx := NewContext(&ContextConfig{Slot: "Weapon 1"})

	pass, _ := evalCondition(SlotCondition{Slot: "Weapon 1"}, ctx)
	assert.True(t, pass)

	pass, _ = evalCondition(SlotCondition{Slot: "Weapon 2"}, ctx)
	assert.False(t, pass)
}

func TestEvalCondition_Unconditioned(t *testing.T) {
	pass, scale := evalCondition(nil, NewContext(nil))
	assert.True(t, pass)
	assert.Equal(t, 1.0, scale)
}

func TestEvalCondition_UnrecognizedFailsClosed(t *testing.T) {
	ctx := NewContext(&ContextConfig{
		Conditions: map[string]bool{"LowLife": true},
	})

	pass, _ := evalCondition(RawCondition{Kind: "SomeFutureKind"}, ctx)
	assert.False(t, pass, "foreign condition kinds must exclude, not crash")
}

func TestEvalCondition_NilContext(t *testing.T) {
	// Aggregations without a context still evaluate conditions; lookups
	// read as zero/false
	pass, _ := evalCondition(BoolCondition{Name: "LowLife"}, nil)
	assert.False(t, pass)

	pass, scale := evalCondition(PerStatCondition{Stat: "Strength", Divisor: 10}, nil)
	assert.True(t, pass)
	assert.Equal(t, 0.0, scale)
}
