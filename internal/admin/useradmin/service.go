// Package useradmin implements the user-administration surface.
package useradmin

import (
	"context"
	"errors"
	"log/slog"

	"taskhub/internal/admin/models"
	"taskhub/internal/adminaudit"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/sentinel"
)

// Store is the persistence the service needs.
type Store interface {
	UpdateUserRole(ctx context.Context, id int64, role models.UserRole) error
}

// Service changes user roles.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ChangeUserRole sets the role of userID.
func (s *Service) ChangeUserRole(ctx context.Context, userID int64, req models.UserRoleChangeRequest) (adminaudit.Void, error) {
	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return adminaudit.Void{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid user role")
	}
	if err := s.store.UpdateUserRole(ctx, userID, role); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return adminaudit.Void{}, dErrors.Wrap(err, dErrors.CodeNotFound, "user not found")
		}
		return adminaudit.Void{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to change user role")
	}
	s.logger.InfoContext(ctx, "user role changed",
		"user_id", userID,
		"role", string(role),
	)
	return adminaudit.Void{}, nil
}
