package journal

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RecentOrdering(t *testing.T) {
	store := NewMemoryStore(10)

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Append(Entry{OrderID: i, Success: true}))
	}

	recent := store.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, 3, recent[0].OrderID, "most recent entry first")
	assert.Equal(t, 2, recent[1].OrderID)
	assert.Equal(t, 1, recent[2].OrderID)
}

func TestMemoryStore_Bounded(t *testing.T) {
	store := NewMemoryStore(2)

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Append(Entry{OrderID: i}))
	}

	recent := store.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, 5, recent[0].OrderID)
	assert.Equal(t, 4, recent[1].OrderID)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = store.Append(Entry{OrderID: id, Error: fmt.Sprintf("err %d", id)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Recent(), 50)
}

func TestEntry_Duration(t *testing.T) {
	placed := time.Now()
	entry := Entry{PlacedAt: placed, FinishedAt: placed.Add(2 * time.Second)}
	assert.Equal(t, 2*time.Second, entry.Duration())
}
