// SPDX-License-Identifier: EPL-2.0

package kitcell

import (
	"sync/atomic"

	"github.com/ik5/drumcore/kit"
)

// Cell holds the active kit.Kit behind an atomic pointer.
type Cell struct {
	ptr atomic.Pointer[kit.Kit]

	retire  chan *kit.Kit
	retired atomic.Uint64
}

// New creates a Cell holding initial, and starts the background
// goroutine that drains kits retired by Store.
func New(initial *kit.Kit) *Cell {
	c := &Cell{retire: make(chan *kit.Kit, 8)}
	c.ptr.Store(initial)
	go c.reclaimLoop()
	return c
}

// Load returns the currently active kit. Safe to call from the audio
// thread on every callback: it is a single atomic load, no allocation,
// no locking.
func (c *Cell) Load() *kit.Kit {
	return c.ptr.Load()
}

// Store publishes next as the active kit and retires whatever was
// previously active. The previous kit is handed to a background
// goroutine rather than dropped inline, so its cost of going out of
// scope never lands on whichever goroutine called Store.
func (c *Cell) Store(next *kit.Kit) {
	old := c.ptr.Swap(next)
	if old == nil {
		return
	}
	select {
	case c.retire <- old:
	default:
		// Retirement queue is full; the garbage collector still
		// reclaims old once nothing else references it.
	}
}

// Retired reports how many kits have been swapped out and reclaimed.
func (c *Cell) Retired() uint64 {
	return c.retired.Load()
}

// Close stops the reclamation goroutine. The Cell must not be used
// after Close.
func (c *Cell) Close() {
	close(c.retire)
}

func (c *Cell) reclaimLoop() {
	for range c.retire {
		c.retired.Add(1)
	}
}
