// Package dto defines request and response shapes for the HTTP API.
package dto

import (
	"github.com/spendwise/spendwise/internal/model"
)

// ErrorResponse is the uniform error body: a human-readable message and
// a stable machine code.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

// ExpenseRequest is the body of expense create and update calls.
// Amount, Category, and Date are pointers so absence is detectable.
type ExpenseRequest struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Notes    string   `json:"notes"`
}

// BudgetRequest is the body of POST /api/budgets.
type BudgetRequest struct {
	Type     *string  `json:"type"`
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    *int     `json:"month"`
	Year     *int     `json:"year"`
}

// SavingsGoalRequest is the body of POST /api/savings-goals.
type SavingsGoalRequest struct {
	Title        *string  `json:"title"`
	TargetAmount *float64 `json:"target_amount"`
	TargetDate   *string  `json:"target_date"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// MessageResponse carries a single confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
