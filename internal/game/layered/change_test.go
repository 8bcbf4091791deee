package layered

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_BroadcastOrder(t *testing.T) {
	var n Notifier
	owner := newTestOwner()

	var calls []string
	n.Subscribe(func(ChangeEvent) { calls = append(calls, "first") })
	n.Subscribe(func(ChangeEvent) { calls = append(calls, "second") })

	delivered := n.Broadcast(ChangeEvent{Owner: owner, Attribute: AttributePower, OldValue: 1, NewValue: 2})

	assert.True(t, delivered)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestNotifier_SkipsInvalidEvents(t *testing.T) {
	var n Notifier
	owner := newTestOwner()

	calls := 0
	n.Subscribe(func(ChangeEvent) { calls++ })

	tests := []struct {
		name string
		evt  ChangeEvent
	}{
		{"no change", ChangeEvent{Owner: owner, Attribute: AttributePower, OldValue: 3, NewValue: 3}},
		{"invalid attribute", ChangeEvent{Owner: owner, Attribute: AttributeInvalid, OldValue: 0, NewValue: 3}},
		{"no owner", ChangeEvent{Attribute: AttributePower, OldValue: 0, NewValue: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, n.Broadcast(tt.evt))
		})
	}
	assert.Zero(t, calls)
}

func TestNotifier_Unsubscribe(t *testing.T) {
	var n Notifier
	owner := newTestOwner()

	calls := 0
	sub := n.Subscribe(func(ChangeEvent) { calls++ })
	assert.Equal(t, 1, n.Len())

	assert.True(t, n.Unsubscribe(sub))
	assert.False(t, n.Unsubscribe(sub), "second unsubscribe is a no-op")
	assert.Equal(t, 0, n.Len())

	n.Broadcast(ChangeEvent{Owner: owner, Attribute: AttributePower, OldValue: 0, NewValue: 1})
	assert.Zero(t, calls)
}

func TestNotifier_UnsubscribeDuringBroadcast(t *testing.T) {
	var n Notifier
	owner := newTestOwner()
	evt := ChangeEvent{Owner: owner, Attribute: AttributePower, OldValue: 0, NewValue: 1}

	calls := 0
	var sub Subscription
	sub = n.Subscribe(func(ChangeEvent) {
		calls++
		n.Unsubscribe(sub)
	})
	other := 0
	n.Subscribe(func(ChangeEvent) { other++ })

	n.Broadcast(evt)
	n.Broadcast(evt)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestNewChangeEvent_ReadsCurrentValue(t *testing.T) {
	owner := newTestOwner()
	owner.BaseAttributes()[AttributeToughness] = 4

	evt := NewChangeEvent(owner, AttributeToughness, 1)
	assert.Equal(t, int32(1), evt.OldValue)
	assert.Equal(t, int32(4), evt.NewValue)
	assert.True(t, evt.IsValid())

	assert.False(t, NewChangeEvent(nil, AttributeToughness, 1).IsValid())
}
