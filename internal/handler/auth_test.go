package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/internal/testutil"
)

func newAuthHandler() *AuthHandler {
	svc := service.NewAuthService(testutil.NewMemStore(), auth.NewTokenManager("test-secret"), metrics.NewNoop())
	return NewAuthHandler(svc, newTestLogger())
}

func registerBody(email string) string {
	return `{"email":"` + email + `","name":"Alex","password":"hunter2222"}`
}

func doRegister(h *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	return rec
}

func doLogin(h *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	rec := doRegister(h, registerBody("alex@example.com"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["email"] != "alex@example.com" {
		t.Errorf("unexpected email: %v", body["email"])
	}
	if body["id"] == "" || body["id"] == nil {
		t.Error("expected non-empty id")
	}
	if _, leaked := body["password_hash"]; leaked {
		t.Error("password hash must not be serialized")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	if rec := doRegister(h, registerBody("dup@example.com")); rec.Code != http.StatusCreated {
		t.Fatalf("first registration failed: %d", rec.Code)
	}

	rec := doRegister(h, registerBody("dup@example.com"))
	assertErrorCode(t, rec, http.StatusBadRequest, "EMAIL_TAKEN")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	rec := doRegister(h, `{"email":"a@example.com"}`)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION")
}

func TestRegister_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	rec := doRegister(h, `{not json`)
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_JSON")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	if rec := doRegister(h, registerBody("login@example.com")); rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", rec.Code)
	}

	rec := doLogin(h, `{"email":"login@example.com","password":"hunter2222"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)

	if body.AccessToken == "" {
		t.Error("expected non-empty access_token")
	}
	if body.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %s", body.TokenType)
	}
	if body.User.Email != "login@example.com" {
		t.Errorf("unexpected user email: %s", body.User.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	if rec := doRegister(h, registerBody("wrongpw@example.com")); rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", rec.Code)
	}

	rec := doLogin(h, `{"email":"wrongpw@example.com","password":"not-the-password"}`)
	assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	h := newAuthHandler()
	rec := doLogin(h, `{"email":"ghost@example.com","password":"whatever"}`)
	assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}
