package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/testutil"
)

func TestSavingsGoalService_Create(t *testing.T) {
	t.Parallel()

	svc := NewSavingsGoalService(testutil.NewMemStore(), metrics.NewNoop())

	goal, err := svc.Create(context.Background(), "user-a", SavingsGoalInput{
		Title:        "New laptop",
		TargetAmount: 1200,
		TargetDate:   date("2025-12-01T00:00:00Z"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if goal.CurrentAmount != 0 {
		t.Errorf("new goal should start at 0, got %v", goal.CurrentAmount)
	}
	if goal.UserID != "user-a" {
		t.Errorf("expected owner user-a, got %s", goal.UserID)
	}
}

func TestSavingsGoalService_AddAmount(t *testing.T) {
	t.Parallel()

	svc := NewSavingsGoalService(testutil.NewMemStore(), metrics.NewNoop())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "user-a", SavingsGoalInput{
		Title:        "Spring trip",
		TargetAmount: 500,
		TargetDate:   date("2025-06-01T00:00:00Z"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.AddAmount(ctx, "user-a", goal.ID, 50); err != nil {
		t.Fatalf("AddAmount failed: %v", err)
	}

	// Negative deltas are allowed; there is no floor
	updated, err := svc.AddAmount(ctx, "user-a", goal.ID, -20)
	if err != nil {
		t.Fatalf("AddAmount failed: %v", err)
	}

	if updated.CurrentAmount != 30 {
		t.Errorf("expected current amount 30, got %v", updated.CurrentAmount)
	}
}

func TestSavingsGoalService_AddAmount_NotOwned(t *testing.T) {
	t.Parallel()

	svc := NewSavingsGoalService(testutil.NewMemStore(), metrics.NewNoop())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "user-a", SavingsGoalInput{
		Title:        "Spring trip",
		TargetAmount: 500,
		TargetDate:   date("2025-06-01T00:00:00Z"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.AddAmount(ctx, "user-b", goal.ID, 50)
	if !errors.Is(err, ErrSavingsGoalNotFound) {
		t.Errorf("expected ErrSavingsGoalNotFound, got %v", err)
	}

	_, err = svc.AddAmount(ctx, "user-a", "missing-goal", 50)
	if !errors.Is(err, ErrSavingsGoalNotFound) {
		t.Errorf("expected ErrSavingsGoalNotFound, got %v", err)
	}
}

func TestSavingsGoalService_List(t *testing.T) {
	t.Parallel()

	svc := NewSavingsGoalService(testutil.NewMemStore(), metrics.NewNoop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-a", SavingsGoalInput{Title: "A", TargetAmount: 100, TargetDate: date("2025-06-01T00:00:00Z")}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "user-b", SavingsGoalInput{Title: "B", TargetAmount: 100, TargetDate: date("2025-06-01T00:00:00Z")}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	goals, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "A" {
		t.Errorf("expected only user-a's goal, got %+v", goals)
	}
}
