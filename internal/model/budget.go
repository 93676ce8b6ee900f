package model

import "time"

// BudgetType distinguishes an overall monthly budget from a
// per-category one.
type BudgetType string

const (
	BudgetMonthly  BudgetType = "monthly"
	BudgetCategory BudgetType = "category"
)

// Budget represents a spending limit for a given month and year.
// Category is only meaningful when Type is BudgetCategory.
type Budget struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Type      BudgetType `json:"type"`
	Category  string     `json:"category,omitempty"`
	Amount    float64    `json:"amount"`
	Month     int        `json:"month"`
	Year      int        `json:"year"`
	CreatedAt time.Time  `json:"created_at"`
}
