package layered

import (
	"log/slog"
	"maps"
	"slices"
)

// Owner is the capability any entity exposes to carry layered attributes.
//
// An object implementing Owner has a set of base attributes that represent
// its default state, plus layered effects that modify them. Its current
// attributes are always the base attributes with all layered effects applied
// in order; a change to either is reflected immediately.
//
// Implementations only provide storage. All behaviour lives in the package
// functions below (SetBaseAttribute, AddLayeredEffect, ...), shared by every owner.
// Maps returned by an Owner are owned by it exclusively and must be non-nil.
type Owner interface {
	BaseAttributes() map[AttributeKey]int32
	EffectCollections() map[AttributeKey]*SortedEffects
	AttributeChanged() *Notifier
	HandleAllocator() *HandleAllocator
	Clock() Clock
}

// SetBaseAttribute stores value as the base for key. Existing layered
// effects are untouched; the current value is re-derived from the new base.
func SetBaseAttribute(o Owner, key AttributeKey, value int32) {
	oldValue := GetCurrentAttribute(o, key)
	o.BaseAttributes()[key] = value
	notifyChanged(o, key, oldValue)
}

// GetBaseAttribute returns the stored base value, 0 if never set.
func GetBaseAttribute(o Owner, key AttributeKey) int32 {
	return o.BaseAttributes()[key]
}

// GetCurrentAttribute returns the base value with every active effect on key folded over it.
func GetCurrentAttribute(o Owner, key AttributeKey) int32 {
	base := GetBaseAttribute(o, key)
	if effects, ok := o.EffectCollections()[key]; ok {
		return effects.CurrentValue(base)
	}
	return base
}

// AddLayeredEffect applies def to the owner. Effects are not necessarily
// applied in the order they were added: see EffectDefinition for layering.
//
// Returns InvalidHandle and false, with no mutation and no event, if def is
// invalid or the owner has no clock or handle allocator.
func AddLayeredEffect(o Owner, def EffectDefinition) (EffectHandle, bool) {
	if !def.IsValid() {
		slog.Warn("layered effect rejected: invalid definition", "effect", def)
		return InvalidHandle, false
	}

	clock := o.Clock()
	if clock == nil {
		slog.Error("layered effect rejected: owner has no clock", "effect", def)
		return InvalidHandle, false
	}
	handles := o.HandleAllocator()
	if handles == nil {
		slog.Error("layered effect rejected: owner has no handle allocator", "effect", def)
		return InvalidHandle, false
	}

	key := def.Attribute()
	oldValue := GetCurrentAttribute(o, key)

	collections := o.EffectCollections()
	effects, ok := collections[key]
	if !ok {
		effects = NewSortedEffects(handles)
		collections[key] = effects
	}
	handle := effects.Add(def, clock.Now())

	notifyChanged(o, key, oldValue)
	return handle, handle.IsValid()
}

// RemoveLayeredEffect removes the effect named by handle.
// Returns false, without an event, for invalid or stale handles.
func RemoveLayeredEffect(o Owner, handle EffectHandle) bool {
	if !handle.IsValid() {
		return false
	}

	key := handle.Attribute()
	effects, ok := o.EffectCollections()[key]
	if !ok {
		return false
	}

	oldValue := GetCurrentAttribute(o, key)
	if !effects.Remove(handle) {
		slog.Debug("layered effect not found", "handle", handle)
		return false
	}

	notifyChanged(o, key, oldValue)
	return true
}

// ClearLayeredEffects removes every layered effect from the owner. Afterwards
// every current attribute equals its base attribute. Attributes without
// effects are untouched. Returns whether anything was removed.
//
// Attributes are visited in key order so events arrive deterministically.
func ClearLayeredEffects(o Owner) bool {
	collections := o.EffectCollections()
	cleared := false
	for _, key := range slices.Sorted(maps.Keys(collections)) {
		effects := collections[key]
		if effects.Len() == 0 {
			continue
		}
		oldValue := GetCurrentAttribute(o, key)
		if effects.Clear() {
			cleared = true
			notifyChanged(o, key, oldValue)
		}
	}
	return cleared
}

// EffectsOn returns the active effects on key in application order.
func EffectsOn(o Owner, key AttributeKey) []ActiveEffect {
	if effects, ok := o.EffectCollections()[key]; ok {
		return effects.Effects()
	}
	return nil
}

// AttributeValue is a point-in-time reading of one attribute.
type AttributeValue struct {
	Attribute AttributeKey
	Base      int32
	Current   int32
	Effects   int
}

// Snapshot reads every valid attribute of the owner in key order.
func Snapshot(o Owner) []AttributeValue {
	keys := AllAttributeKeys()
	out := make([]AttributeValue, 0, len(keys))
	for _, key := range keys {
		if !key.IsValid() {
			continue
		}
		v := AttributeValue{
			Attribute: key,
			Base:      GetBaseAttribute(o, key),
			Current:   GetCurrentAttribute(o, key),
		}
		if effects, ok := o.EffectCollections()[key]; ok {
			v.Effects = effects.Len()
		}
		out = append(out, v)
	}
	return out
}

func notifyChanged(o Owner, key AttributeKey, oldValue int32) {
	notifier := o.AttributeChanged()
	if notifier == nil {
		return
	}
	notifier.Broadcast(NewChangeEvent(o, key, oldValue))
}
