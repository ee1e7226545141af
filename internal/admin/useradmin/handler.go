package useradmin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"taskhub/internal/admin/models"
	"taskhub/internal/adminaudit"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/httputil"
	"taskhub/pkg/requestcontext"
)

// OperationChangeUserRole identifies the role change operation.
var OperationChangeUserRole = adminaudit.OperationID(adminaudit.UserAdminSurface, "changeUserRole")

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Operations

// Operations is the user admin service consumed by the handler.
type Operations interface {
	ChangeUserRole(ctx context.Context, userID int64, req models.UserRoleChangeRequest) (adminaudit.Void, error)
}

// Handler serves the user admin endpoints.
type Handler struct {
	logger         *slog.Logger
	validate       *validator.Validate
	changeUserRole func(context.Context, int64, models.UserRoleChangeRequest) (adminaudit.Void, error)
}

// NewHandler wires the operations through the auditor.
func NewHandler(ops Operations, auditor *adminaudit.Auditor, logger *slog.Logger) *Handler {
	return &Handler{
		logger:         logger,
		validate:       models.NewValidator(),
		changeUserRole: adminaudit.Func2(auditor, OperationChangeUserRole, ops.ChangeUserRole),
	}
}

// Register registers the user admin routes.
func (h *Handler) Register(r chi.Router) {
	r.Patch("/admin/users/{userId}", h.handleChangeUserRole)
}

func (h *Handler) handleChangeUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, err := httputil.Int64Param(r, "userId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.UserRoleChangeRequest
	if err := httputil.DecodeJSON(r, &req, h.validate); err != nil {
		h.logger.WarnContext(ctx, "invalid role change request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if _, err := h.changeUserRole(ctx, userID, req); err != nil {
		h.writeServiceError(ctx, w, requestID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	if de, ok := dErrors.As(err); ok && de.Code != dErrors.CodeInternal {
		h.logger.WarnContext(ctx, "change user role rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	h.logger.ErrorContext(ctx, "failed to change user role",
		"request_id", requestID,
		"error", err.Error(),
	)
	httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to change user role"))
}
