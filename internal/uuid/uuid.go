// uuid is a small generator abstraction so callers can mint source-instance
// IDs with a mockable interface
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

// Generator is an interface for generating unique IDs
type Generator interface {
	New() string
}

// V4Generator implements Generator using random (version 4) UUIDs
type V4Generator struct{}

// New generates a new UUID string
func (g *V4Generator) New() string {
	return uuid.New().String()
}

// NewV4Generator creates a new V4Generator
func NewV4Generator() *V4Generator {
	return &V4Generator{}
}
