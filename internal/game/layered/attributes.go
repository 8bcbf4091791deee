package layered

// Attributes is the storage half of Owner, meant to be embedded by entities.
// The embedding type still provides HandleAllocator and Clock, and passes
// itself (not the embedded Attributes) to the package functions so that
// change events carry the entity as their Owner.
//
// Zero value is ready to use.
type Attributes struct {
	base     map[AttributeKey]int32
	effects  map[AttributeKey]*SortedEffects
	notifier Notifier
}

// BaseAttributes returns the mutable base-value map.
func (a *Attributes) BaseAttributes() map[AttributeKey]int32 {
	if a.base == nil {
		a.base = make(map[AttributeKey]int32)
	}
	return a.base
}

// EffectCollections returns the mutable per-attribute effect map.
func (a *Attributes) EffectCollections() map[AttributeKey]*SortedEffects {
	if a.effects == nil {
		a.effects = make(map[AttributeKey]*SortedEffects)
	}
	return a.effects
}

// AttributeChanged returns the change-notification channel.
func (a *Attributes) AttributeChanged() *Notifier {
	return &a.notifier
}

// ResetBaseAttributes forgets every stored base value without notifying.
// Used before replaying initial values through SetBaseAttribute.
func (a *Attributes) ResetBaseAttributes() {
	clear(a.BaseAttributes())
}
