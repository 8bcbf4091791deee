package world

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/udisondev/wizards/internal/game/layered"
	"github.com/udisondev/wizards/internal/model"
)

// World owns everything creatures of one game share: the clock that stamps
// layered effects, the handle allocator and the object ID sequence.
type World struct {
	clock   layered.Clock
	handles *layered.HandleAllocator
	ids     *ObjectIDGenerator

	creatures sync.Map // map[uint32]*model.Creature — objectID → creature
	count     atomic.Int32

	listenersMu sync.RWMutex
	listeners   []layered.ChangeListener
}

// New creates an empty world. A nil clock yields a world whose creatures
// reject every layered effect.
func New(clock layered.Clock) *World {
	return &World{
		clock:   clock,
		handles: layered.NewHandleAllocator(),
		ids:     NewObjectIDGenerator(),
	}
}

// Clock returns the world time source.
func (w *World) Clock() layered.Clock {
	return w.clock
}

// Handles returns the handle allocator shared by every creature of this world.
func (w *World) Handles() *layered.HandleAllocator {
	return w.handles
}

// OnAnyAttributeChanged registers fn for attribute changes of every creature
// in the world, including ones spawned later.
func (w *World) OnAnyAttributeChanged(fn layered.ChangeListener) {
	w.listenersMu.Lock()
	defer w.listenersMu.Unlock()
	w.listeners = append(w.listeners, fn)
}

func (w *World) dispatch(evt layered.ChangeEvent) {
	w.listenersMu.RLock()
	listeners := slices.Clone(w.listeners)
	w.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(evt)
	}
}

// Spawn creates a creature, registers it and replays initial base
// attributes so world listeners observe the initial values as changes.
func (w *World) Spawn(name string, initial map[layered.AttributeKey]int32) *model.Creature {
	c := model.NewCreature(w.ids.NextCreatureID(), name, w.clock, w.handles)
	c.OnAttributeChanged(w.dispatch)

	w.creatures.Store(c.ObjectID(), c)
	w.count.Add(1)

	c.ApplyInitialAttributes(initial)

	slog.Debug("creature spawned",
		"objectID", c.ObjectID(),
		"name", name,
		"attributes", len(initial))
	return c
}

// Despawn removes the creature from the world. Its effects are dropped with it.
// Returns false if objectID is unknown.
func (w *World) Despawn(objectID uint32) bool {
	value, ok := w.creatures.LoadAndDelete(objectID)
	if !ok {
		return false
	}
	w.count.Add(-1)

	c := value.(*model.Creature)
	slog.Debug("creature despawned", "objectID", objectID, "name", c.Name())
	return true
}

// Creature returns creature by object ID.
func (w *World) Creature(objectID uint32) (*model.Creature, bool) {
	value, ok := w.creatures.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.Creature), true
}

// Creatures returns all creatures ordered by object ID.
func (w *World) Creatures() []*model.Creature {
	out := make([]*model.Creature, 0, w.Count())
	w.creatures.Range(func(_, value any) bool {
		out = append(out, value.(*model.Creature))
		return true
	})
	slices.SortFunc(out, func(a, b *model.Creature) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})
	return out
}

// Count returns number of spawned creatures (O(1) cached count).
func (w *World) Count() int {
	return int(w.count.Load())
}
