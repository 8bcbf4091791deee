package layered

import (
	"fmt"
	"sync/atomic"
)

const invalidHandleID int64 = -1

// EffectHandle identifies one active effect for later removal.
// It is a plain lookup key: comparable, owns nothing, and inert once the
// effect it names has been removed.
type EffectHandle struct {
	id        int64
	attribute AttributeKey
}

// InvalidHandle is returned by failed adds. It never equals a real handle.
var InvalidHandle = EffectHandle{id: invalidHandleID, attribute: AttributeInvalid}

func (h EffectHandle) ID() int64               { return h.id }
func (h EffectHandle) Attribute() AttributeKey { return h.attribute }

// IsValid reports whether h could name an active effect.
func (h EffectHandle) IsValid() bool {
	return h.id != invalidHandleID && h.attribute.IsValid()
}

func (h EffectHandle) String() string {
	if !h.IsValid() {
		return "EffectHandle(invalid)"
	}
	return fmt.Sprintf("EffectHandle(%d, %s)", h.id, h.attribute)
}

// HandleAllocator hands out process-unique handle ids.
// One allocator is created at startup and shared by every owner in a world.
//
// Thread-safe via atomic increment.
type HandleAllocator struct {
	next atomic.Int64
}

// NewHandleAllocator creates an allocator whose first id is 0.
func NewHandleAllocator() *HandleAllocator {
	return &HandleAllocator{}
}

// Next generates a fresh handle for an effect on attribute.
func (a *HandleAllocator) Next(attribute AttributeKey) EffectHandle {
	return EffectHandle{id: a.next.Add(1) - 1, attribute: attribute}
}

// Reset restarts numbering at 0. Only safe when no handles from the
// previous sequence are still in use (between test cases).
func (a *HandleAllocator) Reset() {
	a.next.Store(0)
}
