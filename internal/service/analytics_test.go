package service

import (
	"context"
	"testing"

	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/testutil"
)

func TestAnalyticsService_Summarize(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	expenses := NewExpenseService(store, metrics.NewNoop())
	analytics := NewAnalyticsService(store)
	ctx := context.Background()

	seed := []ExpenseInput{
		{Amount: 10, Category: "Food", Date: date("2025-03-01T00:00:00Z")},
		{Amount: 5, Category: "Food", Date: date("2025-03-02T00:00:00Z")},
		{Amount: 7, Category: "Travel", Date: date("2025-03-03T00:00:00Z")},
	}
	for _, input := range seed {
		if _, err := expenses.Create(ctx, "user-a", input); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	summary, err := analytics.Summarize(ctx, "user-a")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TotalExpenses != 22 {
		t.Errorf("expected total 22, got %v", summary.TotalExpenses)
	}
	if summary.ExpenseCount != 3 {
		t.Errorf("expected count 3, got %d", summary.ExpenseCount)
	}
	if summary.CategoryBreakdown["Food"] != 15 {
		t.Errorf("expected Food total 15, got %v", summary.CategoryBreakdown["Food"])
	}
	if summary.CategoryBreakdown["Travel"] != 7 {
		t.Errorf("expected Travel total 7, got %v", summary.CategoryBreakdown["Travel"])
	}
}

func TestAnalyticsService_Summarize_EmptyCategoryBucket(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	expenses := NewExpenseService(store, metrics.NewNoop())
	analytics := NewAnalyticsService(store)
	ctx := context.Background()

	if _, err := expenses.Create(ctx, "user-a", ExpenseInput{Amount: 3, Category: "", Date: date("2025-03-01T00:00:00Z")}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	summary, err := analytics.Summarize(ctx, "user-a")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.CategoryBreakdown[""] != 3 {
		t.Errorf("empty category should form its own bucket, got %v", summary.CategoryBreakdown)
	}
}

func TestAnalyticsService_Summarize_NoExpenses(t *testing.T) {
	t.Parallel()

	analytics := NewAnalyticsService(testutil.NewMemStore())

	summary, err := analytics.Summarize(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TotalExpenses != 0 || summary.ExpenseCount != 0 || len(summary.CategoryBreakdown) != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestAnalyticsService_Summarize_PerUser(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	expenses := NewExpenseService(store, metrics.NewNoop())
	analytics := NewAnalyticsService(store)
	ctx := context.Background()

	if _, err := expenses.Create(ctx, "user-a", ExpenseInput{Amount: 10, Category: "Food", Date: date("2025-03-01T00:00:00Z")}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := expenses.Create(ctx, "user-b", ExpenseInput{Amount: 99, Category: "Food", Date: date("2025-03-01T00:00:00Z")}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	summary, err := analytics.Summarize(ctx, "user-a")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TotalExpenses != 10 {
		t.Errorf("summary must only cover the requesting user, got total %v", summary.TotalExpenses)
	}
}
