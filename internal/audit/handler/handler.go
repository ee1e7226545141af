// Package handler exposes recently captured admin audit records to operators.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskhub/internal/audit"
	dErrors "taskhub/pkg/domainerrors"
	"taskhub/pkg/platform/httputil"
	"taskhub/pkg/requestcontext"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// RecentLister returns up to limit of the newest records, oldest first.
type RecentLister interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Record, error)
}

type recentResponse struct {
	Records []audit.Envelope `json:"records"`
	Count   int              `json:"count"`
}

// Handler serves GET /admin/audit/recent.
type Handler struct {
	records RecentLister
	logger  *slog.Logger
}

func New(records RecentLister, logger *slog.Logger) *Handler {
	return &Handler{records: records, logger: logger}
}

// Register registers the audit routes. Callers must guard them with the admin
// token middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/audit/recent", h.handleRecent)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.logger.WarnContext(ctx, "invalid audit limit",
				"request_id", requestcontext.RequestID(ctx),
				"limit", raw,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = min(n, maxLimit)
	}

	records, err := h.records.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit records",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list audit records"))
		return
	}
	resp := recentResponse{Records: make([]audit.Envelope, 0, len(records)), Count: len(records)}
	for _, rec := range records {
		resp.Records = append(resp.Records, rec.Envelope())
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
