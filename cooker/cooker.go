// Package cooker models the cafeteria's shared gas cooker: a fixed set of
// independent burners that ingredient preparation competes for.
//
// The cooker is safe for concurrent use from any number of cooking sessions.
// Burner allocation is asynchronous: UseBurner returns immediately and invokes
// the supplied callback from a separate goroutine once a burner has been
// claimed. Callers must pair every acquired burner with exactly one
// ReleaseBurner call.
//
// Example usage:
//
//	gc := cooker.NewGasCooker(8)
//	gc.UseBurner(func() {
//	    // burner is held; start cooking
//	})
//	// ... later, when cooking is done:
//	gc.ReleaseBurner()
package cooker

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultBurnerCount is the number of burners on the cafeteria's single
// gas cooker.
const DefaultBurnerCount = 8

// GasCooker is a capacity-limited pool of burners shared by all concurrently
// cooking ingredients.
type GasCooker struct {
	burners *semaphore.Weighted
	inUse   atomic.Int64
	total   int
}

// NewGasCooker creates a cooker with the given number of burners.
// A non-positive count falls back to DefaultBurnerCount.
func NewGasCooker(burners int) *GasCooker {
	if burners <= 0 {
		burners = DefaultBurnerCount
	}
	return &GasCooker{
		burners: semaphore.NewWeighted(int64(burners)),
		total:   burners,
	}
}

// UseBurner claims a free burner and invokes onAcquired while holding it.
// The call returns immediately; onAcquired runs on a separate goroutine once
// a burner becomes available, which may be after an arbitrary wait when all
// burners are busy. Queueing order across waiters is not specified.
func (c *GasCooker) UseBurner(onAcquired func()) {
	go func() {
		// Acquire with a background context never returns an error.
		_ = c.burners.Acquire(context.Background(), 1)
		c.inUse.Add(1)
		onAcquired()
	}()
}

// ReleaseBurner returns a previously acquired burner to the pool.
// Must be called exactly once per acquired burner.
func (c *GasCooker) ReleaseBurner() {
	c.inUse.Add(-1)
	c.burners.Release(1)
}

// BurnersInUse reports how many burners are currently held.
func (c *GasCooker) BurnersInUse() int {
	return int(c.inUse.Load())
}

// BurnerCount reports the total number of burners.
func (c *GasCooker) BurnerCount() int {
	return c.total
}
