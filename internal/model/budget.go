package model

// BudgetSummary holds the derived financial totals for the current state.
// Every field is a pure function of (monthly budget, duration, expenses).
type BudgetSummary struct {
	TotalMonthlyExpenses float64
	MonthlyProfit        float64
	TotalProjectBudget   float64
	TotalProjectExpenses float64
	TotalProjectProfit   float64
	BudgetUsagePercent   float64
}
