package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/handler/dto"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/service"
)

// BudgetHandler handles HTTP requests for budgets.
type BudgetHandler struct {
	svc    *service.BudgetService
	logger *slog.Logger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(svc *service.BudgetService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/budgets.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	var req dto.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Type == nil || req.Amount == nil || req.Month == nil || req.Year == nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "type, amount, month, and year are required")
		return
	}

	budget, err := h.svc.Create(r.Context(), user.ID, service.BudgetInput{
		Type:     model.BudgetType(*req.Type),
		Category: req.Category,
		Amount:   *req.Amount,
		Month:    *req.Month,
		Year:     *req.Year,
	})
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("budget_created",
		"budget_id", budget.ID,
		"user_id", user.ID,
		"type", string(budget.Type),
	)

	writeJSON(w, http.StatusCreated, budget)
}

// List handles GET /api/budgets.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	budgets, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	if budgets == nil {
		budgets = []*model.Budget{}
	}

	writeJSON(w, http.StatusOK, budgets)
}

// writeError writes an error response.
func (h *BudgetHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
