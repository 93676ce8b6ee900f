package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/model"
)

// ErrUnconfigured indicates no provider API key is present in the
// process configuration.
var ErrUnconfigured = errors.New("advisory service not configured")

// UpstreamError carries a provider-side failure message. Failures are
// surfaced immediately; nothing is retried or swallowed.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return "advisor upstream error: " + e.Message
}

// recentExpenseCount is how many of the user's most recent expenses
// feed the context string.
const recentExpenseCount = 10

// ExpenseLister provides the recent expenses used to build context.
// *repository.Repository satisfies it.
type ExpenseLister interface {
	ListExpenses(ctx context.Context, userID string, limit int) ([]*model.Expense, error)
}

// Reply is the advisory chat result.
type Reply struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Service forwards user messages to the language-model provider with
// injected financial context. No conversation history is stored
// locally; the provider keys its memory on the per-user session key.
type Service struct {
	client   *Client
	expenses ExpenseLister
	metrics  metrics.Recorder
}

// NewService creates a new advisory chat Service.
func NewService(client *Client, expenses ExpenseLister, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Service{
		client:   client,
		expenses: expenses,
		metrics:  recorder,
	}
}

// Converse forwards one message to the provider on behalf of the user
// and returns the reply text tagged with the current time. Any failure
// past the configuration check is reported as an UpstreamError.
func (s *Service) Converse(ctx context.Context, user *model.User, message string) (*Reply, error) {
	if !s.client.Configured() {
		s.metrics.IncAdvisorRequest("unconfigured")
		return nil, ErrUnconfigured
	}

	recent, err := s.expenses.ListExpenses(ctx, user.ID, recentExpenseCount)
	if err != nil {
		s.metrics.IncAdvisorRequest("upstream_error")
		return nil, &UpstreamError{Message: err.Error()}
	}

	systemPrompt := buildContext(user.Name, len(recent))
	sessionKey := "user_" + user.ID

	start := time.Now()
	response, err := s.client.Complete(ctx, sessionKey, systemPrompt, message)
	s.metrics.ObserveAdvisorDuration(time.Since(start))

	if err != nil {
		s.metrics.IncAdvisorRequest("upstream_error")
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return nil, upstream
		}
		return nil, &UpstreamError{Message: err.Error()}
	}

	s.metrics.IncAdvisorRequest("success")

	return &Reply{
		Response:  response,
		Timestamp: time.Now().UTC(),
	}, nil
}

// buildContext produces the system-level instruction. It names the
// user and the count of recent transactions; individual expense
// contents are not injected.
func buildContext(name string, recentCount int) string {
	return fmt.Sprintf(
		"You are a financial advisor AI for a student expense management app. "+
			"The user %s has recent expenses: %d transactions. "+
			"Provide helpful, concise financial advice and answer questions about "+
			"budgeting, saving, and expense management. "+
			"Keep responses friendly and educational for students.",
		name, recentCount,
	)
}
