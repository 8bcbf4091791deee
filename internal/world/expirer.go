package world

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/wizards/internal/game/layered"
	"github.com/udisondev/wizards/internal/model"
)

const DefaultTickInterval = 100 * time.Millisecond

type timedEffect struct {
	creatureID uint32
	handle     layered.EffectHandle
	expiresAt  time.Duration
}

// Expirer removes layered effects whose duration has elapsed.
// Durations are content policy: the layered engine itself has no notion of them.
//
// Tick mutates creatures, so it must run on the goroutine that owns them.
// Track/Cancel/Pending are safe to call from anywhere.
type Expirer struct {
	world    *World
	interval time.Duration

	mu      sync.Mutex
	pending []timedEffect // ordered by expiresAt, then insertion

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewExpirer creates an expirer for w ticking every interval
// (DefaultTickInterval if interval <= 0).
func NewExpirer(w *World, interval time.Duration) *Expirer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Expirer{
		world:    w,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Track schedules removal of handle from c after d.
// Returns false for invalid handles or non-positive durations (permanent effects).
func (e *Expirer) Track(c *model.Creature, handle layered.EffectHandle, d time.Duration) bool {
	if !handle.IsValid() || d <= 0 {
		return false
	}
	clock := e.world.Clock()
	if clock == nil {
		return false
	}

	te := timedEffect{
		creatureID: c.ObjectID(),
		handle:     handle,
		expiresAt:  clock.Now() + d,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	idx, _ := slices.BinarySearchFunc(e.pending, te.expiresAt, func(p timedEffect, t time.Duration) int {
		if p.expiresAt <= t {
			return -1
		}
		return 1
	})
	e.pending = slices.Insert(e.pending, idx, te)
	return true
}

// Cancel stops tracking handle without removing the effect.
func (e *Expirer) Cancel(handle layered.EffectHandle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	before := len(e.pending)
	e.pending = slices.DeleteFunc(e.pending, func(p timedEffect) bool {
		return p.handle == handle
	})
	return len(e.pending) < before
}

// Pending returns the number of tracked effects.
func (e *Expirer) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Tick removes every tracked effect that expired at or before now.
// Returns the number of effects actually removed; effects already removed
// by other means (or whose creature despawned) are dropped silently.
func (e *Expirer) Tick(now time.Duration) int {
	e.mu.Lock()
	n := 0
	for n < len(e.pending) && e.pending[n].expiresAt <= now {
		n++
	}
	expired := slices.Clone(e.pending[:n])
	e.pending = slices.Delete(e.pending, 0, n)
	e.mu.Unlock()

	removed := 0
	for _, te := range expired {
		c, ok := e.world.Creature(te.creatureID)
		if !ok {
			continue
		}
		if c.RemoveLayeredEffect(te.handle) {
			removed++
			slog.Debug("layered effect expired",
				"objectID", te.creatureID,
				"handle", te.handle)
		}
	}
	return removed
}

// Start runs the tick loop until ctx is canceled or Stop is called.
func (e *Expirer) Start(ctx context.Context) error {
	return e.run(ctx, false)
}

// RunUntilIdle runs the tick loop until nothing is pending, ctx is canceled
// or Stop is called.
func (e *Expirer) RunUntilIdle(ctx context.Context) error {
	return e.run(ctx, true)
}

// Stop stops the tick loop. Safe to call more than once.
func (e *Expirer) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
}

func (e *Expirer) run(ctx context.Context, untilIdle bool) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	slog.Info("effect expirer started", "interval", e.interval, "pending", e.Pending())

	for {
		if untilIdle && e.Pending() == 0 {
			slog.Info("effect expirer idle")
			return nil
		}

		select {
		case <-ctx.Done():
			slog.Info("effect expirer stopping")
			return ctx.Err()

		case <-e.stopCh:
			slog.Info("effect expirer stopped")
			return nil

		case <-ticker.C:
			clock := e.world.Clock()
			if clock == nil {
				continue
			}
			if removed := e.Tick(clock.Now()); removed > 0 {
				slog.Debug("effect expirer tick", "removed", removed, "pending", e.Pending())
			}
		}
	}
}
