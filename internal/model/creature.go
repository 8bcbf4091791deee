package model

import (
	"maps"
	"slices"

	"github.com/udisondev/wizards/internal/game/layered"
)

// Creature is a world object carrying layered attributes.
// Implements layered.Owner; all attribute behaviour is delegated to the
// layered package functions with the creature itself as owner.
//
// Attribute mutation is single-writer: call the mutating methods from the
// goroutine that drives this creature (world tick or command handler).
type Creature struct {
	*WorldObject
	layered.Attributes

	clock   layered.Clock
	handles *layered.HandleAllocator
}

// NewCreature создаёт существо без базовых атрибутов.
// clock and handles are shared with every other creature of the same world.
func NewCreature(objectID uint32, name string, clock layered.Clock, handles *layered.HandleAllocator) *Creature {
	return &Creature{
		WorldObject: NewWorldObject(objectID, name),
		clock:       clock,
		handles:     handles,
	}
}

func (c *Creature) Clock() layered.Clock                      { return c.clock }
func (c *Creature) HandleAllocator() *layered.HandleAllocator { return c.handles }

// SetBaseAttribute sets the base value for key. Existing layered effects are not altered.
func (c *Creature) SetBaseAttribute(key layered.AttributeKey, value int32) {
	layered.SetBaseAttribute(c, key, value)
}

// BaseAttribute returns the base value for key, 0 until set.
func (c *Creature) BaseAttribute(key layered.AttributeKey) int32 {
	return layered.GetBaseAttribute(c, key)
}

// CurrentAttribute returns the base value for key with all layered effects applied.
func (c *Creature) CurrentAttribute(key layered.AttributeKey) int32 {
	return layered.GetCurrentAttribute(c, key)
}

// AddLayeredEffect applies def. Returns false if the effect was rejected.
func (c *Creature) AddLayeredEffect(def layered.EffectDefinition) (layered.EffectHandle, bool) {
	return layered.AddLayeredEffect(c, def)
}

// RemoveLayeredEffect removes one effect previously returned by AddLayeredEffect.
func (c *Creature) RemoveLayeredEffect(handle layered.EffectHandle) bool {
	return layered.RemoveLayeredEffect(c, handle)
}

// ClearLayeredEffects removes all layered effects; current attributes fall back to base.
func (c *Creature) ClearLayeredEffects() bool {
	return layered.ClearLayeredEffects(c)
}

// OnAttributeChanged subscribes fn to every current-value change of this creature.
func (c *Creature) OnAttributeChanged(fn layered.ChangeListener) layered.Subscription {
	return c.AttributeChanged().Subscribe(fn)
}

// Snapshot returns base and current values of every attribute.
func (c *Creature) Snapshot() []layered.AttributeValue {
	return layered.Snapshot(c)
}

// ApplyInitialAttributes replaces the stored base values with initial and
// replays them through SetBaseAttribute, so subscribers attached before
// this call observe one change event per non-zero attribute.
// Keys are applied in ascending order.
func (c *Creature) ApplyInitialAttributes(initial map[layered.AttributeKey]int32) {
	c.ResetBaseAttributes()
	for _, key := range slices.Sorted(maps.Keys(initial)) {
		c.SetBaseAttribute(key, initial[key])
	}
}

// CurrentTypes returns the current Types attribute as a bitmask.
func (c *Creature) CurrentTypes() CreatureTypes {
	return CreatureTypes(uint32(c.CurrentAttribute(layered.AttributeTypes)))
}

// CurrentSubtypes returns the current Subtypes attribute as a bitmask.
func (c *Creature) CurrentSubtypes() CreatureSubtypes {
	return CreatureSubtypes(uint32(c.CurrentAttribute(layered.AttributeSubtypes)))
}

// CurrentSupertypes returns the current Supertypes attribute as a bitmask.
func (c *Creature) CurrentSupertypes() CreatureSupertypes {
	return CreatureSupertypes(uint32(c.CurrentAttribute(layered.AttributeSupertypes)))
}
