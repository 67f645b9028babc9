package model

import "time"

// State is the complete serializable state of the tracker: the five
// top-level collections that persist across runs.
type State struct {
	MonthlyBudget   float64
	ProjectDuration int
	Expenses        []ExpenseRecord
	ExpenseBlocks   []ExpenseBlock
	ReportHistory   []ReportSnapshot
}

// DefaultState returns the first-run state: empty collections except for
// the seeded expense blocks, duration of one month.
func DefaultState(now time.Time) State {
	return State{
		ProjectDuration: 1,
		ExpenseBlocks:   DefaultBlocks(now),
	}
}
