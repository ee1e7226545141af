// Package store keeps the users, todos, comments and managers the admin
// surfaces operate on.
package store

import (
	"context"
	"fmt"
	"sync"

	"taskhub/internal/admin/models"
	"taskhub/pkg/platform/sentinel"
)

// InMemoryStore is a concurrency-safe store for the admin surfaces.
type InMemoryStore struct {
	mu            sync.RWMutex
	users         map[int64]models.User
	todos         map[int64]models.Todo
	comments      map[int64]models.Comment
	managers      map[int64]models.Manager
	nextManagerID int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:    make(map[int64]models.User),
		todos:    make(map[int64]models.Todo),
		comments: make(map[int64]models.Comment),
		managers: make(map[int64]models.Manager),
	}
}

func (s *InMemoryStore) SaveUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *InMemoryStore) FindUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, sentinel.ErrNotFound)
	}
	return user, nil
}

func (s *InMemoryStore) UpdateUserRole(_ context.Context, id int64, role models.UserRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, sentinel.ErrNotFound)
	}
	user.Role = role
	s.users[id] = user
	return nil
}

func (s *InMemoryStore) SaveTodo(_ context.Context, todo models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos[todo.ID] = todo
	return nil
}

func (s *InMemoryStore) FindTodo(_ context.Context, id int64) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, fmt.Errorf("todo %d: %w", id, sentinel.ErrNotFound)
	}
	return todo, nil
}

func (s *InMemoryStore) SaveComment(_ context.Context, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.ID] = comment
	return nil
}

func (s *InMemoryStore) FindComment(_ context.Context, id int64) (models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, fmt.Errorf("comment %d: %w", id, sentinel.ErrNotFound)
	}
	return comment, nil
}

func (s *InMemoryStore) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.comments, id)
	return nil
}

// AddManager assigns userID as a manager of todoID. Assigning the same user
// twice returns sentinel.ErrConflict.
func (s *InMemoryStore) AddManager(_ context.Context, todoID, userID int64) (models.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[todoID]; !ok {
		return models.Manager{}, fmt.Errorf("todo %d: %w", todoID, sentinel.ErrNotFound)
	}
	if _, ok := s.users[userID]; !ok {
		return models.Manager{}, fmt.Errorf("user %d: %w", userID, sentinel.ErrNotFound)
	}
	for _, m := range s.managers {
		if m.TodoID == todoID && m.UserID == userID {
			return models.Manager{}, fmt.Errorf("manager of todo %d: %w", todoID, sentinel.ErrConflict)
		}
	}
	s.nextManagerID++
	m := models.Manager{ID: s.nextManagerID, TodoID: todoID, UserID: userID}
	s.managers[m.ID] = m
	return m, nil
}

// ListManagers returns the managers of a todo.
func (s *InMemoryStore) ListManagers(_ context.Context, todoID int64) ([]models.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Manager
	for _, m := range s.managers {
		if m.TodoID == todoID {
			out = append(out, m)
		}
	}
	return out, nil
}
