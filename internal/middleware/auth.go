package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
)

// UserSource resolves a user ID to a persisted user record.
// *repository.Repository satisfies it.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Tokens *auth.TokenManager
	Users  UserSource
}

// Auth returns a middleware that resolves the bearer token on each
// request to a persisted user. It extracts the token from the
// Authorization header, verifies the signature and expiry, looks the
// encoded user ID up in storage, and injects the full user record into
// the request context. Any failure short-circuits with 401 before the
// route's own logic runs.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractBearerToken(r)
			if !ok {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_credentials"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "MISSING_CREDENTIALS", "Missing or malformed Authorization header")
				return
			}

			userID, err := cfg.Tokens.Verify(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "token_expired"),
						slog.String("endpoint", r.Method+" "+r.URL.Path),
						slog.String("request_id", GetRequestID(r.Context())),
					)
					writeAuthError(w, "TOKEN_EXPIRED", "Token expired")
					return
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "TOKEN_INVALID", "Invalid token")
				return
			}

			user, err := cfg.Users.GetUserByID(r.Context(), userID)
			if err != nil {
				// Tokens outlive their users; there is no revocation
				// list, so a deleted user only fails here.
				if errors.Is(err, repository.ErrUserNotFound) {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "user_not_found"),
						slog.String("user_id", userID),
						slog.String("request_id", GetRequestID(r.Context())),
					)
					writeAuthError(w, "USER_NOT_FOUND", "User not found")
					return
				}
				cfg.Logger.Error("storage error during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "An internal error occurred",
					"code":  "INTERNAL_ERROR",
				})
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken pulls the token from "Authorization: Bearer <token>".
// Returns false when the header is absent or not well-formed.
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}

// writeAuthError writes a 401 Unauthorized response.
func writeAuthError(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  code,
	})
}
