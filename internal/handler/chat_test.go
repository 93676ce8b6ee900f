package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/spendwise/spendwise/internal/advisor"
	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/testutil"
)

func newChatRouter(client *advisor.Client, user *model.User) http.Handler {
	svc := advisor.NewService(client, testutil.NewMemStore(), metrics.NewNoop())
	h := NewChatHandler(svc, newTestLogger())

	r := chi.NewRouter()
	r.Use(injectUser(user))
	r.Post("/api/chat", h.Chat)
	return r
}

func TestChat(t *testing.T) {
	t.Parallel()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Track your spending weekly."}}]}`))
	}))
	defer provider.Close()

	client := advisor.NewClient(provider.URL, "test-key", "test-model")
	router := newChatRouter(client, testUser("user-1", "Alex"))

	rec := doRequest(router, http.MethodPost, "/api/chat", `{"message":"How do I budget?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var reply struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	decodeBody(t, rec, &reply)
	if reply.Response != "Track your spending weekly." {
		t.Errorf("unexpected response: %q", reply.Response)
	}
	if reply.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestChat_Unconfigured(t *testing.T) {
	t.Parallel()

	client := advisor.NewClient("https://api.example.com/v1", "", "test-model")
	router := newChatRouter(client, testUser("user-1", "Alex"))

	rec := doRequest(router, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	assertErrorCode(t, rec, http.StatusInternalServerError, "ADVISOR_UNCONFIGURED")
}

func TestChat_UpstreamError(t *testing.T) {
	t.Parallel()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer provider.Close()

	client := advisor.NewClient(provider.URL, "test-key", "test-model")
	router := newChatRouter(client, testUser("user-1", "Alex"))

	rec := doRequest(router, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	assertErrorCode(t, rec, http.StatusInternalServerError, "UPSTREAM_ERROR")
}

func TestChat_EmptyMessage(t *testing.T) {
	t.Parallel()

	client := advisor.NewClient("https://api.example.com/v1", "test-key", "test-model")
	router := newChatRouter(client, testUser("user-1", "Alex"))

	rec := doRequest(router, http.MethodPost, "/api/chat", `{}`)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION")
}
