package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/admin/models"
	"taskhub/pkg/platform/sentinel"
)

func seeded(t *testing.T) *InMemoryStore {
	t.Helper()
	s := NewInMemoryStore()
	require.NoError(t, s.Seed(context.Background(), DefaultFixture()))
	return s
}

func TestUpdateUserRole(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	require.NoError(t, s.UpdateUserRole(ctx, 2, models.RoleAdmin))
	user, err := s.FindUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	err = s.UpdateUserRole(ctx, 99, models.RoleAdmin)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	require.NoError(t, s.DeleteComment(ctx, 1))
	_, err := s.FindComment(ctx, 1)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.ErrorIs(t, s.DeleteComment(ctx, 1), sentinel.ErrNotFound)
}

func TestAddManager(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	m, err := s.AddManager(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.TodoID)
	assert.Equal(t, int64(3), m.UserID)
	assert.NotZero(t, m.ID)

	_, err = s.AddManager(ctx, 1, 3)
	assert.ErrorIs(t, err, sentinel.ErrConflict)

	_, err = s.AddManager(ctx, 42, 3)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = s.AddManager(ctx, 1, 42)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	managers, err := s.ListManagers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, managers, 1)
}

func TestAddManager_ConcurrentIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.SaveTodo(ctx, models.Todo{ID: 1}))
	for i := int64(1); i <= 20; i++ {
		require.NoError(t, s.SaveUser(ctx, models.User{ID: i}))
	}

	var wg sync.WaitGroup
	ids := make(chan int64, 20)
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			m, err := s.AddManager(ctx, 1, userID)
			assert.NoError(t, err)
			ids <- m.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate manager id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}
