// SpendWise Quickstart Client
//
// This is a minimal example of driving the SpendWise API end to end:
// register an account, log in, record an expense, and fetch the
// expense summary.
//
// Usage:
//   export SPENDWISE_BASE_URL="http://localhost:8080"
//   go run main.go

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("SPENDWISE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	email := fmt.Sprintf("quickstart-%d@example.com", time.Now().UnixNano())
	password := "quickstart-password"

	// 1. Register
	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	mustPost(baseURL+"/api/auth/register", "", map[string]any{
		"email":    email,
		"name":     "Quickstart",
		"password": password,
	}, &user)
	log.Printf("✓ Registered user %s (%s)", user.ID, user.Email)

	// 2. Log in
	var login struct {
		AccessToken string `json:"access_token"`
	}
	mustPost(baseURL+"/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, &login)
	log.Println("✓ Logged in")

	// 3. Record an expense
	var expense struct {
		ID       string  `json:"id"`
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
	}
	mustPost(baseURL+"/api/expenses", login.AccessToken, map[string]any{
		"amount":   4.5,
		"category": "Food",
		"date":     time.Now().UTC().Format("2006-01-02"),
		"notes":    "coffee",
	}, &expense)
	log.Printf("✓ Recorded expense %s: %.2f (%s)", expense.ID, expense.Amount, expense.Category)

	// 4. Fetch the summary
	var summary struct {
		TotalExpenses     float64            `json:"total_expenses"`
		CategoryBreakdown map[string]float64 `json:"category_breakdown"`
		ExpenseCount      int                `json:"expense_count"`
	}
	mustGet(baseURL+"/api/analytics/expense-summary", login.AccessToken, &summary)
	log.Printf("✓ Summary: %d expenses totalling %.2f", summary.ExpenseCount, summary.TotalExpenses)
	for category, total := range summary.CategoryBreakdown {
		log.Printf("    %-15s %.2f", category, total)
	}
}

func mustPost(url, token string, payload any, out any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	do(req, out)
}

func mustGet(url, token string, out any) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	do(req, out)
}

func do(req *http.Request, out any) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		log.Fatalf("%s %s: status %d: %s", req.Method, req.URL, resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			log.Fatalf("decode response: %v", err)
		}
	}
}
