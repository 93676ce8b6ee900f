package model

import "time"

// SavingsGoal represents a savings target. CurrentAmount only moves
// through the add-amount operation; there is no withdraw operation.
type SavingsGoal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	TargetDate    time.Time `json:"target_date"`
	CreatedAt     time.Time `json:"created_at"`
}
