package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spendwise/spendwise/internal/model"
)

// ErrExpenseNotFound indicates the expense does not exist or is not
// owned by the requesting user. Ownership is part of every filter, so
// the two cases are indistinguishable on purpose.
var ErrExpenseNotFound = errors.New("expense not found")

// CreateExpense inserts a new expense into the database.
func (r *Repository) CreateExpense(ctx context.Context, expense *model.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, amount, category, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Date,
		expense.Notes,
		expense.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, scoped to its owner.
func (r *Repository) GetExpense(ctx context.Context, userID, id string) (*model.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, notes, created_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`

	expense, err := scanExpense(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses retrieves a user's expenses ordered by date descending.
// limit values outside (0, maxListResults] are clamped to the cap.
func (r *Repository) ListExpenses(ctx context.Context, userID string, limit int) ([]*model.Expense, error) {
	if limit <= 0 || limit > maxListResults {
		limit = maxListResults
	}

	query := `
		SELECT id, user_id, amount, category, date, notes, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense replaces an expense's mutable fields, scoped to its owner.
func (r *Repository) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $3, category = $4, date = $5, notes = $6
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Date,
		expense.Notes,
	)

	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// DeleteExpense removes an expense, scoped to its owner.
func (r *Repository) DeleteExpense(ctx context.Context, userID, id string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// scanExpense scans a single row into an Expense model.
func scanExpense(row pgx.Row) (*model.Expense, error) {
	var expense model.Expense
	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Amount,
		&expense.Category,
		&expense.Date,
		&expense.Notes,
		&expense.CreatedAt,
	)
	return &expense, err
}
