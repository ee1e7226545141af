// Package manager assigns managers to todos. Its operations run through the
// admin auditor like every other surface but fall outside the audited groups.
package manager

import (
	"context"
	"errors"
	"log/slog"

	"taskhub/internal/admin/models"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/sentinel"
)

// Store is the persistence the service needs.
type Store interface {
	FindUser(ctx context.Context, id int64) (models.User, error)
	AddManager(ctx context.Context, todoID, userID int64) (models.Manager, error)
}

// Service manages todo managers.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// SaveManager assigns the requested user as a manager of todoID.
func (s *Service) SaveManager(ctx context.Context, todoID int64, req models.ManagerSaveRequest) (models.ManagerSaveResult, error) {
	m, err := s.store.AddManager(ctx, todoID, req.ManagerUserID)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return models.ManagerSaveResult{}, dErrors.Wrap(err, dErrors.CodeNotFound, "todo or user not found")
		case errors.Is(err, sentinel.ErrConflict):
			return models.ManagerSaveResult{}, dErrors.Wrap(err, dErrors.CodeConflict, "user already manages this todo")
		default:
			return models.ManagerSaveResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save manager")
		}
	}
	user, err := s.store.FindUser(ctx, req.ManagerUserID)
	if err != nil {
		return models.ManagerSaveResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load manager user")
	}
	s.logger.InfoContext(ctx, "manager saved",
		"todo_id", todoID,
		"manager_user_id", req.ManagerUserID,
	)
	return models.ManagerSaveResult{Manager: m, User: user}, nil
}
