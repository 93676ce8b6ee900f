package model

import "time"

// Suggested expense categories. The category field is free-form;
// anything outside this list is still accepted and grouped as-is.
const (
	CategoryFood          = "Food"
	CategoryTravel        = "Travel"
	CategoryStudyMaterial = "Study Material"
	CategoryPersonal      = "Personal"
	CategoryOther         = "Other"
)

// Expense represents a single spending record owned by one user.
type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
