package types

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for label/input pairing. Injecting
// the generator keeps the component free of process-wide counters.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator is the default generator; every ID is a fresh UUID.
type UUIDGenerator struct{}

// NextID returns a new UUID string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix-1, prefix-2, ... and exists mainly so
// tests get deterministic IDs. Not safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	n      int
}

// NextID returns the next sequential identifier.
func (g *SequenceGenerator) NextID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}
