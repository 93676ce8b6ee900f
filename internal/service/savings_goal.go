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

// ErrSavingsGoalNotFound indicates the goal is absent or owned by
// someone else.
var ErrSavingsGoalNotFound = errors.New("savings goal not found")

// SavingsGoalStore defines the storage operations the savings goal
// service needs. *repository.Repository satisfies it.
type SavingsGoalStore interface {
	CreateSavingsGoal(ctx context.Context, goal *model.SavingsGoal) error
	ListSavingsGoals(ctx context.Context, userID string) ([]*model.SavingsGoal, error)
	AddToSavingsGoal(ctx context.Context, userID, id string, delta float64) (*model.SavingsGoal, error)
}

// SavingsGoalService handles savings goal logic.
type SavingsGoalService struct {
	store   SavingsGoalStore
	metrics metrics.Recorder
}

// NewSavingsGoalService creates a new SavingsGoalService.
func NewSavingsGoalService(store SavingsGoalStore, recorder metrics.Recorder) *SavingsGoalService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &SavingsGoalService{
		store:   store,
		metrics: recorder,
	}
}

// SavingsGoalInput defines input for creating a savings goal.
type SavingsGoalInput struct {
	Title        string
	TargetAmount float64
	TargetDate   time.Time
}

// Create persists a new savings goal owned by userID with a current
// amount of zero.
func (s *SavingsGoalService) Create(ctx context.Context, userID string, input SavingsGoalInput) (*model.SavingsGoal, error) {
	goal := &model.SavingsGoal{
		ID:            ulid.Make().String(),
		UserID:        userID,
		Title:         input.Title,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: 0,
		TargetDate:    input.TargetDate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateSavingsGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	s.metrics.IncGoalCreated()

	return goal, nil
}

// List returns the user's savings goals in storage order.
func (s *SavingsGoalService) List(ctx context.Context, userID string) ([]*model.SavingsGoal, error) {
	goals, err := s.store.ListSavingsGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	return goals, nil
}

// AddAmount adds delta to a goal's current amount and returns the
// updated record. Delta may be negative; no floor is applied. The
// store performs the increment atomically.
func (s *SavingsGoalService) AddAmount(ctx context.Context, userID, id string, delta float64) (*model.SavingsGoal, error) {
	goal, err := s.store.AddToSavingsGoal(ctx, userID, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrSavingsGoalNotFound) {
			return nil, ErrSavingsGoalNotFound
		}
		return nil, fmt.Errorf("failed to add to savings goal: %w", err)
	}

	s.metrics.IncGoalDeposit()

	return goal, nil
}
