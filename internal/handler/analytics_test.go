package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/internal/testutil"
)

func TestAnalyticsExpenseSummary(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	user := testUser("user-1", "Alex")

	seed := []struct {
		amount   float64
		category string
	}{
		{10, model.CategoryFood},
		{5, model.CategoryFood},
		{7, model.CategoryTravel},
	}
	for i, exp := range seed {
		err := store.CreateExpense(context.Background(), &model.Expense{
			ID:        "exp-" + string(rune('a'+i)),
			UserID:    user.ID,
			Amount:    exp.amount,
			Category:  exp.category,
			Date:      time.Now().UTC(),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	h := NewAnalyticsHandler(service.NewAnalyticsService(store), newTestLogger())
	r := chi.NewRouter()
	r.Use(injectUser(user))
	r.Get("/api/analytics/expense-summary", h.ExpenseSummary)

	rec := doRequest(r, http.MethodGet, "/api/analytics/expense-summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary struct {
		TotalExpenses     float64            `json:"total_expenses"`
		CategoryBreakdown map[string]float64 `json:"category_breakdown"`
		ExpenseCount      int                `json:"expense_count"`
	}
	decodeBody(t, rec, &summary)

	if summary.TotalExpenses != 22 {
		t.Errorf("expected total 22, got %v", summary.TotalExpenses)
	}
	if summary.ExpenseCount != 3 {
		t.Errorf("expected count 3, got %d", summary.ExpenseCount)
	}
	if summary.CategoryBreakdown[model.CategoryFood] != 15 {
		t.Errorf("expected Food 15, got %v", summary.CategoryBreakdown[model.CategoryFood])
	}
	if summary.CategoryBreakdown[model.CategoryTravel] != 7 {
		t.Errorf("expected Travel 7, got %v", summary.CategoryBreakdown[model.CategoryTravel])
	}
}

func TestAnalyticsExpenseSummary_Empty(t *testing.T) {
	t.Parallel()

	h := NewAnalyticsHandler(service.NewAnalyticsService(testutil.NewMemStore()), newTestLogger())
	r := chi.NewRouter()
	r.Use(injectUser(testUser("user-1", "Alex")))
	r.Get("/api/analytics/expense-summary", h.ExpenseSummary)

	rec := doRequest(r, http.MethodGet, "/api/analytics/expense-summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary struct {
		TotalExpenses float64 `json:"total_expenses"`
		ExpenseCount  int     `json:"expense_count"`
	}
	decodeBody(t, rec, &summary)
	if summary.TotalExpenses != 0 || summary.ExpenseCount != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
