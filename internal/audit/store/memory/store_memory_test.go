package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/audit"
)

func record(op string) audit.Record {
	return audit.Record{Kind: audit.KindAccess, Group: "User Admin API", Operation: op}
}

func operations(records []audit.Record) []string {
	ops := make([]string, 0, len(records))
	for _, r := range records {
		ops = append(ops, r.Operation)
	}
	return ops
}

func TestInMemoryStore_RecentKeepsNewestInOrder(t *testing.T) {
	store := NewInMemoryStore(3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Write(ctx, record(fmt.Sprintf("op%d", i))))
	}

	assert.Equal(t, []string{"op3", "op4", "op5"}, operations(store.All()))
	assert.Equal(t, []string{"op4", "op5"}, operations(store.Recent(2)))
}

func TestInMemoryStore_PartiallyFilled(t *testing.T) {
	store := NewInMemoryStore(10)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, record("a")))
	require.NoError(t, store.Write(ctx, record("b")))

	assert.Equal(t, []string{"a", "b"}, operations(store.Recent(5)))
}

func TestInMemoryStore_Clear(t *testing.T) {
	store := NewInMemoryStore(2)
	require.NoError(t, store.Write(context.Background(), record("a")))

	store.Clear()

	assert.Empty(t, store.All())
}

func TestInMemoryStore_ConcurrentWrites(t *testing.T) {
	store := NewInMemoryStore(100)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Write(context.Background(), record(fmt.Sprintf("op%d", i)))
		}()
	}
	wg.Wait()

	assert.Len(t, store.All(), 50)
}
