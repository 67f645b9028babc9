package model

import "time"

// ReportSnapshot is an immutable capture of the budget state at save time.
// Snapshots are append/delete only; the expense list is a deep copy that
// later edits to the live collection cannot reach.
type ReportSnapshot struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Date            time.Time       `json:"date"`
	MonthlyBudget   float64         `json:"monthlyBudget"`
	ProjectDuration int             `json:"projectDuration"`
	Expenses        []ExpenseRecord `json:"expenses"`

	TotalMonthlyExpenses float64 `json:"totalMonthlyExpenses"`
	MonthlyProfit        float64 `json:"monthlyProfit"`
	TotalProjectProfit   float64 `json:"totalProjectProfit"`
}
