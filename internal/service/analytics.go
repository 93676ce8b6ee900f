package service

import (
	"context"
	"fmt"
)

// ExpenseSummary aggregates a user's expenses. Field names match the
// wire format of the analytics endpoint.
type ExpenseSummary struct {
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	ExpenseCount      int                `json:"expense_count"`
}

// AnalyticsService aggregates expense data. Pure computation over the
// expense store; nothing is persisted.
type AnalyticsService struct {
	store ExpenseStore
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store ExpenseStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Summarize totals the user's expenses (up to the list cap) and groups
// them by category string. Empty or unrecognized categories form their
// own buckets.
func (s *AnalyticsService) Summarize(ctx context.Context, userID string) (*ExpenseSummary, error) {
	expenses, err := s.store.ListExpenses(ctx, userID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	summary := &ExpenseSummary{
		CategoryBreakdown: make(map[string]float64),
		ExpenseCount:      len(expenses),
	}

	for _, expense := range expenses {
		summary.TotalExpenses += expense.Amount
		summary.CategoryBreakdown[expense.Category] += expense.Amount
	}

	return summary, nil
}
