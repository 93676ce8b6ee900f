package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spendwise/spendwise/internal/model"
)

// ErrSavingsGoalNotFound indicates the goal does not exist or is not
// owned by the requesting user.
var ErrSavingsGoalNotFound = errors.New("savings goal not found")

// CreateSavingsGoal inserts a new savings goal into the database.
func (r *Repository) CreateSavingsGoal(ctx context.Context, goal *model.SavingsGoal) error {
	query := `
		INSERT INTO savings_goals (id, user_id, title, target_amount, current_amount, target_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}

	return nil
}

// ListSavingsGoals retrieves a user's savings goals in storage order.
func (r *Repository) ListSavingsGoals(ctx context.Context, userID string) ([]*model.SavingsGoal, error) {
	query := `
		SELECT id, user_id, title, target_amount, current_amount, target_date, created_at
		FROM savings_goals
		WHERE user_id = $1
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []*model.SavingsGoal
	for rows.Next() {
		goal, err := scanSavingsGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings goals: %w", err)
	}

	return goals, nil
}

// AddToSavingsGoal atomically adds delta to a goal's current amount and
// returns the updated record. The increment happens in a single UPDATE,
// so concurrent additions to the same goal cannot lose an update. The
// delta may be negative; no floor is applied.
func (r *Repository) AddToSavingsGoal(ctx context.Context, userID, id string, delta float64) (*model.SavingsGoal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = current_amount + $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, target_amount, current_amount, target_date, created_at
	`

	goal, err := scanSavingsGoal(r.pool.QueryRow(ctx, query, id, userID, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSavingsGoalNotFound
		}
		return nil, fmt.Errorf("failed to add to savings goal: %w", err)
	}

	return goal, nil
}

// scanSavingsGoal scans a single row into a SavingsGoal model.
func scanSavingsGoal(row pgx.Row) (*model.SavingsGoal, error) {
	var goal model.SavingsGoal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.CreatedAt,
	)
	return &goal, err
}
