// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncUserLoggedIn()

	// Record management metrics
	IncExpenseCreated()
	IncExpenseUpdated()
	IncExpenseDeleted()
	IncBudgetCreated()
	IncGoalCreated()
	IncGoalDeposit()

	// Advisory chat metrics
	IncAdvisorRequest(status string) // status: "success", "unconfigured", "upstream_error"
	ObserveAdvisorDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
