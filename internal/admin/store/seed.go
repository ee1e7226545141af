package store

import (
	"context"
	"fmt"

	"taskhub/internal/admin/models"
)

// Fixture is the data loaded by Seed.
type Fixture struct {
	Users    []models.User
	Todos    []models.Todo
	Comments []models.Comment
}

// DefaultFixture is a small data set for local runs.
func DefaultFixture() Fixture {
	return Fixture{
		Users: []models.User{
			{ID: 1, Email: "admin@taskhub.local", Role: models.RoleAdmin},
			{ID: 2, Email: "alice@taskhub.local", Role: models.RoleUser},
			{ID: 3, Email: "bob@taskhub.local", Role: models.RoleUser},
		},
		Todos: []models.Todo{
			{ID: 1, OwnerID: 2, Title: "Write release notes"},
			{ID: 2, OwnerID: 3, Title: "Review onboarding checklist"},
		},
		Comments: []models.Comment{
			{ID: 1, TodoID: 1, AuthorID: 3, Content: "Looks good"},
			{ID: 2, TodoID: 2, AuthorID: 2, Content: "Needs a second pass"},
		},
	}
}

// Seed loads a fixture into the store.
func (s *InMemoryStore) Seed(ctx context.Context, f Fixture) error {
	for _, u := range f.Users {
		if err := s.SaveUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}
	for _, t := range f.Todos {
		if err := s.SaveTodo(ctx, t); err != nil {
			return fmt.Errorf("seed todo %d: %w", t.ID, err)
		}
	}
	for _, c := range f.Comments {
		if err := s.SaveComment(ctx, c); err != nil {
			return fmt.Errorf("seed comment %d: %w", c.ID, err)
		}
	}
	return nil
}
