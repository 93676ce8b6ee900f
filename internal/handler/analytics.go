package handler

import (
	"log/slog"
	"net/http"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/handler/dto"
	"github.com/spendwise/spendwise/internal/service"
)

// AnalyticsHandler handles HTTP requests for expense aggregation.
type AnalyticsHandler struct {
	svc    *service.AnalyticsService
	logger *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc:    svc,
		logger: logger,
	}
}

// ExpenseSummary handles GET /api/analytics/expense-summary.
func (h *AnalyticsHandler) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	summary, err := h.svc.Summarize(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
