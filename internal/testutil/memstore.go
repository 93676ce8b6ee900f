package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
)

// MemStore is an in-memory implementation of the service store
// interfaces, mirroring the repository's ownership scoping and error
// values. It lets service and handler tests run without Postgres.
type MemStore struct {
	mu       sync.Mutex
	users    map[string]*model.User
	expenses map[string]*model.Expense
	budgets  map[string]*model.Budget
	goals    map[string]*model.SavingsGoal
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[string]*model.User),
		expenses: make(map[string]*model.Expense),
		budgets:  make(map[string]*model.Budget),
		goals:    make(map[string]*model.SavingsGoal),
	}
}

// CreateUser stores a user, enforcing email uniqueness.
func (m *MemStore) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrEmailExists
		}
	}

	clone := *user
	m.users[user.ID] = &clone
	return nil
}

// GetUserByID returns a user by ID.
func (m *MemStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetUserByEmail returns a user by email.
func (m *MemStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// CreateExpense stores an expense.
func (m *MemStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *expense
	m.expenses[expense.ID] = &clone
	return nil
}

// GetExpense returns an expense by ID, scoped to its owner.
func (m *MemStore) GetExpense(ctx context.Context, userID, id string) (*model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expense, ok := m.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, repository.ErrExpenseNotFound
	}
	clone := *expense
	return &clone, nil
}

// ListExpenses returns a user's expenses ordered by date descending.
func (m *MemStore) ListExpenses(ctx context.Context, userID string, limit int) ([]*model.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expenses []*model.Expense
	for _, expense := range m.expenses {
		if expense.UserID == userID {
			clone := *expense
			expenses = append(expenses, &clone)
		}
	}

	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})

	if limit > 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}

	return expenses, nil
}

// UpdateExpense replaces an expense's mutable fields, scoped to its owner.
func (m *MemStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return repository.ErrExpenseNotFound
	}

	clone := *expense
	m.expenses[expense.ID] = &clone
	return nil
}

// DeleteExpense removes an expense, scoped to its owner.
func (m *MemStore) DeleteExpense(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expense, ok := m.expenses[id]
	if !ok || expense.UserID != userID {
		return repository.ErrExpenseNotFound
	}

	delete(m.expenses, id)
	return nil
}

// CreateBudget stores a budget.
func (m *MemStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *budget
	m.budgets[budget.ID] = &clone
	return nil
}

// ListBudgets returns a user's budgets.
func (m *MemStore) ListBudgets(ctx context.Context, userID string) ([]*model.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var budgets []*model.Budget
	for _, budget := range m.budgets {
		if budget.UserID == userID {
			clone := *budget
			budgets = append(budgets, &clone)
		}
	}

	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.Before(budgets[j].CreatedAt)
	})

	return budgets, nil
}

// CreateSavingsGoal stores a savings goal.
func (m *MemStore) CreateSavingsGoal(ctx context.Context, goal *model.SavingsGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *goal
	m.goals[goal.ID] = &clone
	return nil
}

// ListSavingsGoals returns a user's savings goals.
func (m *MemStore) ListSavingsGoals(ctx context.Context, userID string) ([]*model.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var goals []*model.SavingsGoal
	for _, goal := range m.goals {
		if goal.UserID == userID {
			clone := *goal
			goals = append(goals, &clone)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})

	return goals, nil
}

// AddToSavingsGoal adds delta to a goal's current amount under the
// store lock, mirroring the repository's atomic increment.
func (m *MemStore) AddToSavingsGoal(ctx context.Context, userID, id string, delta float64) (*model.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	goal, ok := m.goals[id]
	if !ok || goal.UserID != userID {
		return nil, repository.ErrSavingsGoalNotFound
	}

	goal.CurrentAmount += delta
	clone := *goal
	return &clone, nil
}
