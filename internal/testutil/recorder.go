package testutil

import (
	"sync"

	"github.com/udisondev/wizards/internal/game/layered"
)

// ChangeRecorder собирает ChangeEvent'ы для проверки в тестах.
type ChangeRecorder struct {
	mu     sync.Mutex
	events []layered.ChangeEvent
}

// RecordChanges подписывает recorder на notifier.
func RecordChanges(n *layered.Notifier) *ChangeRecorder {
	r := &ChangeRecorder{}
	n.Subscribe(r.Record)
	return r
}

// Record добавляет событие. Подходит как layered.ChangeListener.
func (r *ChangeRecorder) Record(evt layered.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

// Events возвращает копию собранных событий.
func (r *ChangeRecorder) Events() []layered.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]layered.ChangeEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Values возвращает пары (old, new) для key в порядке поступления.
func (r *ChangeRecorder) Values(key layered.AttributeKey) [][2]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][2]int32
	for _, evt := range r.events {
		if evt.Attribute == key {
			out = append(out, [2]int32{evt.OldValue, evt.NewValue})
		}
	}
	return out
}

// Len возвращает количество событий.
func (r *ChangeRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset очищает собранные события.
func (r *ChangeRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
