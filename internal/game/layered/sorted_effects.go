package layered

import (
	"log/slog"
	"slices"
	"time"
)

// SortedEffects holds the active effects of a single attribute, ordered by
// (layer ascending, start time ascending). Effects with an identical key keep
// their insertion order, so later adds stack on top of earlier ones.
//
// All operations are O(n) in the number of effects on the attribute.
// Not safe for concurrent use: an owner mutates its collections from one goroutine.
type SortedEffects struct {
	handles *HandleAllocator
	effects []ActiveEffect
}

// NewSortedEffects creates an empty collection that draws handles from handles.
func NewSortedEffects(handles *HandleAllocator) *SortedEffects {
	return &SortedEffects{
		handles: handles,
		effects: make([]ActiveEffect, 0, 4),
	}
}

// Add activates def at time now and returns its handle.
// Returns InvalidHandle without mutating if def is invalid, now is negative,
// or the collection has no handle allocator.
func (s *SortedEffects) Add(def EffectDefinition, now time.Duration) EffectHandle {
	if s.handles == nil {
		slog.Error("layered effect rejected: no handle allocator", "effect", def)
		return InvalidHandle
	}
	if !def.IsValid() {
		slog.Warn("layered effect rejected: invalid definition", "effect", def)
		return InvalidHandle
	}
	if now < 0 {
		slog.Error("layered effect rejected: invalid timestamp", "effect", def, "now", now)
		return InvalidHandle
	}

	ae := ActiveEffect{
		handle:     s.handles.Next(def.attribute),
		startTime:  now,
		definition: def,
	}

	idx := 0
	for _, cur := range s.effects {
		if !ae.appliesAfter(cur) {
			break
		}
		idx++
	}
	s.effects = slices.Insert(s.effects, idx, ae)

	slog.Debug("layered effect added",
		"handle", ae.handle,
		"effect", def,
		"index", idx,
		"count", len(s.effects))
	return ae.handle
}

// Remove drops every effect carrying handle.
// Returns true if at least one effect was removed. Stale handles are a no-op.
func (s *SortedEffects) Remove(handle EffectHandle) bool {
	before := len(s.effects)
	s.effects = slices.DeleteFunc(s.effects, func(ae ActiveEffect) bool {
		return ae.handle == handle
	})
	return len(s.effects) < before
}

// Clear drops all effects. Returns true if the collection was non-empty.
func (s *SortedEffects) Clear() bool {
	if len(s.effects) == 0 {
		return false
	}
	clear(s.effects)
	s.effects = s.effects[:0]
	return true
}

// CurrentValue folds every valid effect over base in stored order.
func (s *SortedEffects) CurrentValue(base int32) int32 {
	value := base
	for _, ae := range s.effects {
		if !ae.IsValid() {
			continue
		}
		value = Evaluate(value, ae.definition.modification, ae.definition.operation)
	}
	return value
}

// Len returns the number of active effects.
func (s *SortedEffects) Len() int {
	return len(s.effects)
}

// Effects returns a copy of the active effects in application order.
func (s *SortedEffects) Effects() []ActiveEffect {
	return slices.Clone(s.effects)
}

// Contains reports whether handle names an effect in the collection.
func (s *SortedEffects) Contains(handle EffectHandle) bool {
	return slices.ContainsFunc(s.effects, func(ae ActiveEffect) bool {
		return ae.handle == handle
	})
}
