package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncUserLoggedIn is a no-op.
func (n *NoopRecorder) IncUserLoggedIn() {}

// IncExpenseCreated is a no-op.
func (n *NoopRecorder) IncExpenseCreated() {}

// IncExpenseUpdated is a no-op.
func (n *NoopRecorder) IncExpenseUpdated() {}

// IncExpenseDeleted is a no-op.
func (n *NoopRecorder) IncExpenseDeleted() {}

// IncBudgetCreated is a no-op.
func (n *NoopRecorder) IncBudgetCreated() {}

// IncGoalCreated is a no-op.
func (n *NoopRecorder) IncGoalCreated() {}

// IncGoalDeposit is a no-op.
func (n *NoopRecorder) IncGoalDeposit() {}

// IncAdvisorRequest is a no-op.
func (n *NoopRecorder) IncAdvisorRequest(status string) {}

// ObserveAdvisorDuration is a no-op.
func (n *NoopRecorder) ObserveAdvisorDuration(duration time.Duration) {}
