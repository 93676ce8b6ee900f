package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
)

// ErrExpenseNotFound indicates the expense is absent or owned by
// someone else.
var ErrExpenseNotFound = errors.New("expense not found")

// maxListResults caps list operations; results beyond it are silently
// truncated.
const maxListResults = 1000

// ExpenseStore defines the storage operations the expense service
// needs. *repository.Repository satisfies it.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, userID, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, userID string, limit int) ([]*model.Expense, error)
	UpdateExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, userID, id string) error
}

// ExpenseService handles expense record logic.
type ExpenseService struct {
	store   ExpenseStore
	metrics metrics.Recorder
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store ExpenseStore, recorder metrics.Recorder) *ExpenseService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ExpenseService{
		store:   store,
		metrics: recorder,
	}
}

// ExpenseInput defines the mutable fields of an expense. It is used
// for both create and full-replacement update.
type ExpenseInput struct {
	Amount   float64
	Category string
	Date     time.Time
	Notes    string
}

// Create persists a new expense owned by userID and returns the full
// stored record.
func (s *ExpenseService) Create(ctx context.Context, userID string, input ExpenseInput) (*model.Expense, error) {
	expense := &model.Expense{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Amount:    input.Amount,
		Category:  input.Category,
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.IncExpenseCreated()

	return expense, nil
}

// List returns the user's expenses ordered by date descending, capped
// at maxListResults. A user with no expenses gets an empty slice.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]*model.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, userID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Get fetches one expense by ID, scoped to its owner.
func (s *ExpenseService) Get(ctx context.Context, userID, id string) (*model.Expense, error) {
	expense, err := s.store.GetExpense(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// Update fully replaces an expense's mutable fields and returns the
// updated record.
func (s *ExpenseService) Update(ctx context.Context, userID, id string, input ExpenseInput) (*model.Expense, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.Amount = input.Amount
	existing.Category = input.Category
	existing.Date = input.Date
	existing.Notes = input.Notes

	if err := s.store.UpdateExpense(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.metrics.IncExpenseUpdated()

	return existing, nil
}

// Delete removes an expense, scoped to its owner.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteExpense(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.metrics.IncExpenseDeleted()

	return nil
}
