package cooker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasCooker_DefaultBurnerCount(t *testing.T) {
	gc := NewGasCooker(0)
	assert.Equal(t, DefaultBurnerCount, gc.BurnerCount())

	gc = NewGasCooker(-3)
	assert.Equal(t, DefaultBurnerCount, gc.BurnerCount())

	gc = NewGasCooker(2)
	assert.Equal(t, 2, gc.BurnerCount())
}

func TestGasCooker_AcquireRelease(t *testing.T) {
	gc := NewGasCooker(1)

	acquired := make(chan struct{})
	gc.UseBurner(func() {
		close(acquired)
	})

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("burner was never acquired")
	}
	assert.Equal(t, 1, gc.BurnersInUse())

	gc.ReleaseBurner()
	assert.Equal(t, 0, gc.BurnersInUse())
}

func TestGasCooker_CapacityLimitsConcurrency(t *testing.T) {
	gc := NewGasCooker(1)

	first := make(chan struct{})
	gc.UseBurner(func() {
		close(first)
	})
	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("first burner was never acquired")
	}

	// The second waiter must block until the first burner is released.
	second := make(chan struct{})
	gc.UseBurner(func() {
		close(second)
	})

	select {
	case <-second:
		t.Fatal("second burner acquired while cooker was full")
	case <-time.After(50 * time.Millisecond):
	}

	gc.ReleaseBurner()

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("second burner was never acquired after release")
	}
	gc.ReleaseBurner()
}

func TestGasCooker_ConcurrentUsers(t *testing.T) {
	const burners = 4
	const users = 32

	gc := NewGasCooker(burners)

	var mu sync.Mutex
	maxInUse := 0

	var wg sync.WaitGroup
	wg.Add(users)
	for i := 0; i < users; i++ {
		gc.UseBurner(func() {
			defer wg.Done()

			mu.Lock()
			if n := gc.BurnersInUse(); n > maxInUse {
				maxInUse = n
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)
			gc.ReleaseBurner()
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not all users acquired a burner")
	}

	require.LessOrEqual(t, maxInUse, burners, "burner capacity was exceeded")
	assert.Equal(t, 0, gc.BurnersInUse())
}
