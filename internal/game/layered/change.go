package layered

import "slices"

// ChangeEvent reports that the current value of an attribute changed.
// Constructed after every mutation that may have changed a current value,
// broadcast only when IsValid.
type ChangeEvent struct {
	Owner     Owner
	Attribute AttributeKey
	OldValue  int32
	NewValue  int32
}

// NewChangeEvent captures the owner's current value of key as NewValue.
func NewChangeEvent(owner Owner, key AttributeKey, oldValue int32) ChangeEvent {
	evt := ChangeEvent{
		Owner:     owner,
		Attribute: key,
		OldValue:  oldValue,
		NewValue:  oldValue,
	}
	if owner != nil {
		evt.NewValue = GetCurrentAttribute(owner, key)
	}
	return evt
}

// IsValid reports whether the event describes an actual change.
func (e ChangeEvent) IsValid() bool {
	return e.Owner != nil && e.Attribute != AttributeInvalid && e.NewValue != e.OldValue
}

// ChangeListener receives change events synchronously, inside the mutating call.
type ChangeListener func(ChangeEvent)

// Subscription identifies a registered listener for Unsubscribe.
type Subscription uint64

type listenerEntry struct {
	sub Subscription
	fn  ChangeListener
}

// Notifier is a multicast list of change listeners. Zero value is ready to use.
//
// Not safe for concurrent use, same as the owner it belongs to.
type Notifier struct {
	listeners []listenerEntry
	nextSub   Subscription
}

// Subscribe registers fn and returns a token for Unsubscribe.
// Listeners are called in subscription order.
func (n *Notifier) Subscribe(fn ChangeListener) Subscription {
	n.nextSub++
	n.listeners = append(n.listeners, listenerEntry{sub: n.nextSub, fn: fn})
	return n.nextSub
}

// Unsubscribe removes the listener registered under sub.
// Returns false if sub is unknown.
func (n *Notifier) Unsubscribe(sub Subscription) bool {
	idx := slices.IndexFunc(n.listeners, func(e listenerEntry) bool { return e.sub == sub })
	if idx < 0 {
		return false
	}
	n.listeners = slices.Delete(n.listeners, idx, idx+1)
	return true
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	return len(n.listeners)
}

// Broadcast delivers evt to every listener if the event is valid.
// Returns whether the event was delivered.
//
// Listeners may subscribe or unsubscribe during delivery; changes apply
// from the next broadcast.
func (n *Notifier) Broadcast(evt ChangeEvent) bool {
	if !evt.IsValid() {
		return false
	}
	for _, e := range slices.Clone(n.listeners) {
		e.fn(evt)
	}
	return true
}
