package manager

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

// Surface is the manager surface name.
const Surface = "manager"

// OperationSaveManager identifies the manager assignment operation.
var OperationSaveManager = adminaudit.OperationID(Surface, "saveManager")

// Operations is the manager service consumed by the handler.
type Operations interface {
	SaveManager(ctx context.Context, todoID int64, req models.ManagerSaveRequest) (models.ManagerSaveResult, error)
}

// Handler serves the manager endpoints.
type Handler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	saveManager func(context.Context, int64, models.ManagerSaveRequest) (models.ManagerSaveResult, error)
}

// NewHandler wires the operations through the auditor.
func NewHandler(ops Operations, auditor *adminaudit.Auditor, logger *slog.Logger) *Handler {
	return &Handler{
		logger:      logger,
		validate:    models.NewValidator(),
		saveManager: adminaudit.Func2(auditor, OperationSaveManager, ops.SaveManager),
	}
}

// Register registers the manager routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/todos/{todoId}/managers", h.handleSaveManager)
}

func (h *Handler) handleSaveManager(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	todoID, err := httputil.Int64Param(r, "todoId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.ManagerSaveRequest
	if err := httputil.DecodeJSON(r, &req, h.validate); err != nil {
		h.logger.WarnContext(ctx, "invalid manager save request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.saveManager(ctx, todoID, req)
	if err != nil {
		if de, ok := dErrors.As(err); ok && de.Code != dErrors.CodeInternal {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to save manager",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to save manager"))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result.ToResponse())
}
