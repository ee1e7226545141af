package commentadmin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskhub/internal/adminaudit"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/httputil"
	"taskhub/pkg/requestcontext"
)

// OperationDeleteComment identifies the comment deletion operation.
var OperationDeleteComment = adminaudit.OperationID(adminaudit.CommentAdminSurface, "deleteComment")

// Operations is the comment admin service consumed by the handler.
type Operations interface {
	DeleteComment(ctx context.Context, commentID int64) (adminaudit.Void, error)
}

// Handler serves the comment admin endpoints.
type Handler struct {
	logger        *slog.Logger
	deleteComment func(context.Context, int64) (adminaudit.Void, error)
}

// NewHandler wires the operations through the auditor.
func NewHandler(ops Operations, auditor *adminaudit.Auditor, logger *slog.Logger) *Handler {
	return &Handler{
		logger:        logger,
		deleteComment: adminaudit.Func1(auditor, OperationDeleteComment, ops.DeleteComment),
	}
}

// Register registers the comment admin routes.
func (h *Handler) Register(r chi.Router) {
	r.Delete("/admin/comments/{commentId}", h.handleDeleteComment)
}

func (h *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	commentID, err := httputil.Int64Param(r, "commentId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if _, err := h.deleteComment(ctx, commentID); err != nil {
		if de, ok := dErrors.As(err); ok && de.Code != dErrors.CodeInternal {
			h.logger.WarnContext(ctx, "delete comment rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete comment",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to delete comment"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
