package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/model"
)

// BudgetStore defines the storage operations the budget service needs.
// *repository.Repository satisfies it.
type BudgetStore interface {
	CreateBudget(ctx context.Context, budget *model.Budget) error
	ListBudgets(ctx context.Context, userID string) ([]*model.Budget, error)
}

// BudgetService handles budget record logic. Budgets are append-only
// in this contract: create and list, no update or delete.
type BudgetService struct {
	store   BudgetStore
	metrics metrics.Recorder
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store BudgetStore, recorder metrics.Recorder) *BudgetService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BudgetService{
		store:   store,
		metrics: recorder,
	}
}

// BudgetInput defines input for creating a budget. Month range and the
// category-requires-type pairing are intentionally not validated.
type BudgetInput struct {
	Type     model.BudgetType
	Category string
	Amount   float64
	Month    int
	Year     int
}

// Create persists a new budget owned by userID and returns the full
// stored record.
func (s *BudgetService) Create(ctx context.Context, userID string, input BudgetInput) (*model.Budget, error) {
	budget := &model.Budget{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Type:      input.Type,
		Category:  input.Category,
		Amount:    input.Amount,
		Month:     input.Month,
		Year:      input.Year,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.metrics.IncBudgetCreated()

	return budget, nil
}

// List returns the user's budgets in storage order.
func (s *BudgetService) List(ctx context.Context, userID string) ([]*model.Budget, error) {
	budgets, err := s.store.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}
