package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered        uint64
	UserLogins             uint64
	ExpensesCreated        uint64
	ExpensesUpdated        uint64
	ExpensesDeleted        uint64
	BudgetsCreated         uint64
	GoalsCreated           uint64
	GoalDeposits           uint64
	AdvisorRequests        map[string]uint64
	AdvisorDurationCount   uint64
	AdvisorDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered        uint64
	userLogins             uint64
	expensesCreated        uint64
	expensesUpdated        uint64
	expensesDeleted        uint64
	budgetsCreated         uint64
	goalsCreated           uint64
	goalDeposits           uint64
	advisorDurationCount   uint64
	advisorDurationTotalNs int64

	mu              sync.Mutex
	advisorRequests map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		advisorRequests: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	requests := make(map[string]uint64, len(m.advisorRequests))
	for status, count := range m.advisorRequests {
		requests[status] = count
	}
	m.mu.Unlock()

	return Snapshot{
		UsersRegistered:        atomic.LoadUint64(&m.usersRegistered),
		UserLogins:             atomic.LoadUint64(&m.userLogins),
		ExpensesCreated:        atomic.LoadUint64(&m.expensesCreated),
		ExpensesUpdated:        atomic.LoadUint64(&m.expensesUpdated),
		ExpensesDeleted:        atomic.LoadUint64(&m.expensesDeleted),
		BudgetsCreated:         atomic.LoadUint64(&m.budgetsCreated),
		GoalsCreated:           atomic.LoadUint64(&m.goalsCreated),
		GoalDeposits:           atomic.LoadUint64(&m.goalDeposits),
		AdvisorRequests:        requests,
		AdvisorDurationCount:   atomic.LoadUint64(&m.advisorDurationCount),
		AdvisorDurationTotalNs: atomic.LoadInt64(&m.advisorDurationTotalNs),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncUserLoggedIn increments the login counter.
func (m *InMemoryRecorder) IncUserLoggedIn() {
	atomic.AddUint64(&m.userLogins, 1)
}

// IncExpenseCreated increments the expense creation counter.
func (m *InMemoryRecorder) IncExpenseCreated() {
	atomic.AddUint64(&m.expensesCreated, 1)
}

// IncExpenseUpdated increments the expense update counter.
func (m *InMemoryRecorder) IncExpenseUpdated() {
	atomic.AddUint64(&m.expensesUpdated, 1)
}

// IncExpenseDeleted increments the expense deletion counter.
func (m *InMemoryRecorder) IncExpenseDeleted() {
	atomic.AddUint64(&m.expensesDeleted, 1)
}

// IncBudgetCreated increments the budget creation counter.
func (m *InMemoryRecorder) IncBudgetCreated() {
	atomic.AddUint64(&m.budgetsCreated, 1)
}

// IncGoalCreated increments the savings goal creation counter.
func (m *InMemoryRecorder) IncGoalCreated() {
	atomic.AddUint64(&m.goalsCreated, 1)
}

// IncGoalDeposit increments the savings goal deposit counter.
func (m *InMemoryRecorder) IncGoalDeposit() {
	atomic.AddUint64(&m.goalDeposits, 1)
}

// IncAdvisorRequest increments the advisor request counter per status.
func (m *InMemoryRecorder) IncAdvisorRequest(status string) {
	m.mu.Lock()
	m.advisorRequests[status]++
	m.mu.Unlock()
}

// ObserveAdvisorDuration records an advisor round-trip duration.
func (m *InMemoryRecorder) ObserveAdvisorDuration(duration time.Duration) {
	atomic.AddUint64(&m.advisorDurationCount, 1)
	atomic.AddInt64(&m.advisorDurationTotalNs, duration.Nanoseconds())
}
