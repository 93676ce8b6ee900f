package repository

import (
	"context"
	"fmt"

	"github.com/spendwise/spendwise/internal/model"
)

// CreateBudget inserts a new budget into the database.
func (r *Repository) CreateBudget(ctx context.Context, budget *model.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, type, category, amount, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		budget.ID,
		budget.UserID,
		budget.Type,
		budget.Category,
		budget.Amount,
		budget.Month,
		budget.Year,
		budget.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// ListBudgets retrieves a user's budgets in storage order.
func (r *Repository) ListBudgets(ctx context.Context, userID string) ([]*model.Budget, error) {
	query := `
		SELECT id, user_id, type, category, amount, month, year, created_at
		FROM budgets
		WHERE user_id = $1
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*model.Budget
	for rows.Next() {
		var budget model.Budget
		err := rows.Scan(
			&budget.ID,
			&budget.UserID,
			&budget.Type,
			&budget.Category,
			&budget.Amount,
			&budget.Month,
			&budget.Year,
			&budget.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, &budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}
