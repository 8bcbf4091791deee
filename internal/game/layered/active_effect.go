package layered

import "time"

// ActiveEffect is a definition applied to an owner at a point in time.
// Created once by SortedEffects.Add and owned by that collection.
type ActiveEffect struct {
	handle     EffectHandle
	startTime  time.Duration
	definition EffectDefinition
}

func (e ActiveEffect) Handle() EffectHandle         { return e.handle }
func (e ActiveEffect) StartTime() time.Duration     { return e.startTime }
func (e ActiveEffect) Definition() EffectDefinition { return e.definition }

// IsValid reports whether the effect may take part in evaluation.
func (e ActiveEffect) IsValid() bool {
	return e.handle.IsValid() && e.startTime >= 0 && e.definition.IsValid()
}

// appliesAfter reports whether e sorts at or after other:
// higher layer, or same layer and started no earlier.
func (e ActiveEffect) appliesAfter(other ActiveEffect) bool {
	if e.definition.layer != other.definition.layer {
		return e.definition.layer > other.definition.layer
	}
	return e.startTime >= other.startTime
}
