// Package commentadmin implements the comment-administration surface.
package commentadmin

import (
	"context"
	"errors"
	"log/slog"

	"taskhub/internal/adminaudit"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/sentinel"
)

// Store is the persistence the service needs.
type Store interface {
	DeleteComment(ctx context.Context, id int64) error
}

// Service moderates comments.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// DeleteComment removes a comment regardless of its author.
func (s *Service) DeleteComment(ctx context.Context, commentID int64) (adminaudit.Void, error) {
	if err := s.store.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return adminaudit.Void{}, dErrors.Wrap(err, dErrors.CodeNotFound, "comment not found")
		}
		return adminaudit.Void{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete comment")
	}
	s.logger.InfoContext(ctx, "comment deleted", "comment_id", commentID)
	return adminaudit.Void{}, nil
}
