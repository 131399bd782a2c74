package modifiers

import "math"

// Condition gates a modifier on the query context and can scale its
// effective value. The set of variants is closed: evaluation is an
// exhaustive switch, and any variant it does not recognize fails closed so
// newer data formats exclude themselves instead of crashing.
type Condition interface {
	condition()
}

// BoolCondition passes when the named context condition equals the
// expected truth value
type BoolCondition struct {
	// Name is the context condition key, e.g. "LowLife"
	Name string

	// Negate flips the expected truth value
	Negate bool
}

// ThresholdCondition passes when the named context stat is at least Min
type ThresholdCondition struct {
	Stat string
	Min  float64
}

// PerStatCondition always passes and scales the effective value by
// floor(stat / Divisor). A non-positive divisor skips scaling entirely.
type PerStatCondition struct {
	Stat    string
	Divisor float64
}

// CounterCondition always passes and scales the effective value by the
// named counter stat directly, e.g. per-charge effects
type CounterCondition struct {
	Counter string
}

// SlotCondition passes when the query originates from the named slot
type SlotCondition struct {
	Slot string
}

// RawCondition carries a condition kind this engine version does not
// understand. It exists so translators can hand newer data through the
// boundary; evaluation always fails closed.
type RawCondition struct {
	Kind   string
	Params map[string]any
}

func (BoolCondition) condition()      {}
func (ThresholdCondition) condition() {}
func (PerStatCondition) condition()   {}
func (CounterCondition) condition()   {}
func (SlotCondition) condition()      {}
func (RawCondition) condition()       {}

// evalCondition evaluates cond against ctx, returning whether the modifier
// is included and the factor its value is scaled by. A nil condition
// passes unscaled. ctx may be nil; nil-context lookups read as zero/false.
func evalCondition(cond Condition, ctx *FilterContext) (pass bool, scale float64) {
	switch c := cond.(type) {
	case nil:
		return true, 1
	case BoolCondition:
		return ctx.Condition(c.Name) != c.Negate, 1
	case ThresholdCondition:
		return ctx.Stat(c.Stat) >= c.Min, 1
	case PerStatCondition:
		if c.Divisor <= 0 {
			return true, 1
		}
		return true, math.Floor(ctx.Stat(c.Stat) / c.Divisor)
	case CounterCondition:
		return true, ctx.Stat(c.Counter)
	case SlotCondition:
		return ctx.Slot() == c.Slot, 1
	default:
		// Unrecognized kinds fail closed
		return false, 1
	}
}
