package layered

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandleAllocator_Next(t *testing.T) {
	a := NewHandleAllocator()

	h0 := a.Next(AttributePower)
	h1 := a.Next(AttributePower)
	h2 := a.Next(AttributeColor)

	assert.Equal(t, int64(0), h0.ID())
	assert.Equal(t, int64(1), h1.ID())
	assert.Equal(t, int64(2), h2.ID())
	assert.Equal(t, AttributeColor, h2.Attribute())
	assert.NotEqual(t, h0, h1)
	assert.True(t, h0.IsValid())
}

func TestHandleAllocator_Reset(t *testing.T) {
	a := NewHandleAllocator()
	a.Next(AttributePower)
	a.Next(AttributePower)

	a.Reset()
	assert.Equal(t, int64(0), a.Next(AttributePower).ID())
}

func TestHandleAllocator_Concurrent(t *testing.T) {
	a := NewHandleAllocator()
	const workers, perWorker = 8, 500

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for range perWorker {
				local = append(local, a.Next(AttributePower).ID())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestInvalidHandle(t *testing.T) {
	assert.False(t, InvalidHandle.IsValid())
	assert.Equal(t, int64(-1), InvalidHandle.ID())
	assert.Equal(t, "EffectHandle(invalid)", InvalidHandle.String())

	a := NewHandleAllocator()
	for range 3 {
		assert.NotEqual(t, InvalidHandle, a.Next(AttributePower))
	}

	// A real id on the invalid attribute cannot name an effect either.
	assert.False(t, EffectHandle{id: 5, attribute: AttributeInvalid}.IsValid())
}

func TestActiveEffect_IsValid(t *testing.T) {
	a := NewHandleAllocator()
	def := NewEffectDefinition(AttributePower, OperationAdd, 1, 0)

	assert.True(t, ActiveEffect{handle: a.Next(AttributePower), startTime: 0, definition: def}.IsValid())
	assert.False(t, ActiveEffect{handle: InvalidHandle, startTime: 0, definition: def}.IsValid())
	assert.False(t, ActiveEffect{handle: a.Next(AttributePower), startTime: -time.Second, definition: def}.IsValid())
	assert.False(t, ActiveEffect{handle: a.Next(AttributePower), startTime: 0}.IsValid())
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Second)
	assert.Equal(t, time.Second, c.Now())

	assert.Equal(t, 3*time.Second, c.Advance(2*time.Second))
	assert.Equal(t, 3*time.Second, c.Advance(-time.Second), "clock never runs backwards")

	assert.False(t, c.Set(time.Second))
	assert.True(t, c.Set(10*time.Second))
	assert.Equal(t, 10*time.Second, c.Now())
}

func TestWorldClock_Monotonic(t *testing.T) {
	c := NewWorldClock()
	first := c.Now()
	second := c.Now()

	assert.GreaterOrEqual(t, first, time.Duration(0))
	assert.GreaterOrEqual(t, second, first)
}
