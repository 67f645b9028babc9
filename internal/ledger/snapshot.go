package ledger

import (
	"time"

	"budgie/internal/model"
)

// CaptureReport freezes the current budget state into a snapshot. The
// expense list is deep-copied so the snapshot stays stable when the live
// collection is edited afterwards.
func CaptureReport(id int64, now time.Time, monthlyBudget float64, projectDuration int, expenses []model.ExpenseRecord) model.ReportSnapshot {
	summary := Summarize(monthlyBudget, projectDuration, expenses)

	return model.ReportSnapshot{
		ID:              id,
		Name:            "Project Report - " + now.Format("2006-01-02"),
		Date:            now,
		MonthlyBudget:   monthlyBudget,
		ProjectDuration: projectDuration,
		Expenses:        model.CloneExpenses(expenses),

		TotalMonthlyExpenses: summary.TotalMonthlyExpenses,
		MonthlyProfit:        summary.MonthlyProfit,
		TotalProjectProfit:   summary.TotalProjectProfit,
	}
}
