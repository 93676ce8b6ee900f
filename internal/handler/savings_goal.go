package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/handler/dto"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/service"
)

// SavingsGoalHandler handles HTTP requests for savings goals.
type SavingsGoalHandler struct {
	svc    *service.SavingsGoalService
	logger *slog.Logger
}

// NewSavingsGoalHandler creates a new SavingsGoalHandler.
func NewSavingsGoalHandler(svc *service.SavingsGoalService, logger *slog.Logger) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/savings-goals.
func (h *SavingsGoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	var req dto.SavingsGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Title == nil || req.TargetAmount == nil || req.TargetDate == nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "title, target_amount, and target_date are required")
		return
	}

	targetDate, err := parseDate(*req.TargetDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "target_date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	goal, err := h.svc.Create(r.Context(), user.ID, service.SavingsGoalInput{
		Title:        *req.Title,
		TargetAmount: *req.TargetAmount,
		TargetDate:   targetDate,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("savings_goal_created",
		"goal_id", goal.ID,
		"user_id", user.ID,
	)

	writeJSON(w, http.StatusCreated, goal)
}

// List handles GET /api/savings-goals.
func (h *SavingsGoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	goals, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if goals == nil {
		goals = []*model.SavingsGoal{}
	}

	writeJSON(w, http.StatusOK, goals)
}

// AddAmount handles PUT /api/savings-goals/{id}/add-amount.
// The delta rides in the "amount" query parameter, not the body.
func (h *SavingsGoalHandler) AddAmount(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	raw := r.URL.Query().Get("amount")
	if raw == "" {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "amount query parameter is required")
		return
	}

	delta, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "amount must be a number")
		return
	}

	goal, err := h.svc.AddAmount(r.Context(), user.ID, id, delta)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("savings_goal_deposit",
		"goal_id", goal.ID,
		"user_id", user.ID,
		"amount", delta,
	)

	writeJSON(w, http.StatusOK, goal)
}

// handleServiceError maps service errors to HTTP responses.
func (h *SavingsGoalHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSavingsGoalNotFound):
		h.writeError(w, http.StatusNotFound, "GOAL_NOT_FOUND", "Savings goal not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *SavingsGoalHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
