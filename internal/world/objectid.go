package world

import "sync/atomic"

// Creature object IDs start here; 0 stays reserved for invalid/mock objects.
const firstCreatureID uint32 = 0x10000000

// ObjectIDGenerator generates unique object IDs for world entities.
// One generator per World, so two worlds (or two tests) never share a sequence.
type ObjectIDGenerator struct {
	nextCreatureID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextCreatureID.Store(firstCreatureID)
	return gen
}

// NextCreatureID generates next unique creature object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextCreatureID() uint32 {
	return g.nextCreatureID.Add(1)
}
