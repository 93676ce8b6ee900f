package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/handler/dto"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/service"
)

// ExpenseHandler handles HTTP requests for expense records.
type ExpenseHandler struct {
	svc    *service.ExpenseService
	logger *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc *service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	expense, err := h.svc.Create(r.Context(), user.ID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("expense_created",
		"expense_id", expense.ID,
		"user_id", user.ID,
		"category", expense.Category,
	)

	writeJSON(w, http.StatusCreated, expense)
}

// List handles GET /api/expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	expenses, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*model.Expense{}
	}

	writeJSON(w, http.StatusOK, expenses)
}

// Get handles GET /api/expenses/{id}.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	expense, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// Update handles PUT /api/expenses/{id}.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	expense, err := h.svc.Update(r.Context(), user.ID, id, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("expense_updated",
		"expense_id", expense.ID,
		"user_id", user.ID,
	)

	writeJSON(w, http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/{id}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("expense_deleted",
		"expense_id", id,
		"user_id", user.ID,
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

// decodeInput decodes and validates the shared create/update body.
// Writes the error response itself and returns ok=false on failure.
func (h *ExpenseHandler) decodeInput(w http.ResponseWriter, r *http.Request) (service.ExpenseInput, bool) {
	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return service.ExpenseInput{}, false
	}

	if req.Amount == nil || req.Category == nil || req.Date == nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "amount, category, and date are required")
		return service.ExpenseInput{}, false
	}

	date, err := parseDate(*req.Date)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "date must be RFC 3339 or YYYY-MM-DD")
		return service.ExpenseInput{}, false
	}

	return service.ExpenseInput{
		Amount:   *req.Amount,
		Category: *req.Category,
		Date:     date,
		Notes:    req.Notes,
	}, true
}

// handleServiceError maps service errors to HTTP responses.
func (h *ExpenseHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		h.writeError(w, http.StatusNotFound, "EXPENSE_NOT_FOUND", "Expense not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *ExpenseHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
