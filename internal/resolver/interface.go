package resolver

//go:generate mockgen -destination=mock/mock_store.go -package=mockresolver -source=interface.go

import (
	"github.com/KirkDiggler/buildstats/internal/modifiers"
)

// ModStore is the slice of the modifier store the resolver consumes. Query
// arguments follow the store convention: stat names plus an optional
// trailing *modifiers.FilterContext.
type ModStore interface {
	// Calc runs the combined aggregate for one stat query
	Calc(args ...any) (modifiers.Calculation, error)

	// Contributions returns the per-modifier numeric contributions backing
	// a breakdown
	Contributions(args ...any) ([]modifiers.Contribution, error)

	// Generation changes whenever the store or its parent chain mutates
	Generation() uint64
}
