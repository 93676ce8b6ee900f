package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spendwise/spendwise/internal/advisor"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/handler/dto"
)

// ChatHandler handles HTTP requests for the advisory chat.
type ChatHandler struct {
	svc    *advisor.Service
	logger *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *advisor.Service, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: logger,
	}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Message == "" {
		h.writeError(w, http.StatusBadRequest, "VALIDATION", "message is required")
		return
	}

	reply, err := h.svc.Converse(r.Context(), user, req.Message)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("advisor_reply", "user_id", user.ID)

	writeJSON(w, http.StatusOK, reply)
}

// handleServiceError maps advisor errors to HTTP responses.
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error) {
	var upstream *advisor.UpstreamError
	switch {
	case errors.Is(err, advisor.ErrUnconfigured):
		h.writeError(w, http.StatusInternalServerError, "ADVISOR_UNCONFIGURED", "Advisory service not configured")
	case errors.As(err, &upstream):
		h.logger.Error("advisor_upstream_error", "error", upstream.Message)
		h.writeError(w, http.StatusInternalServerError, "UPSTREAM_ERROR", "Error getting AI response: "+upstream.Message)
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *ChatHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
