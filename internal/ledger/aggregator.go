// Package ledger holds the pure budget computations: aggregation,
// expense derivation, and report capture. Nothing here touches storage.
package ledger

import "budgie/internal/model"

// Summarize computes the financial totals for the given budget, duration,
// and expense collection. It is recomputed on every read; collections are
// small and the arithmetic is a handful of reductions.
//
// "Monthly" is a label, not a temporal partition: every recorded expense
// counts toward the monthly total regardless of its date.
func Summarize(monthlyBudget float64, projectDuration int, expenses []model.ExpenseRecord) model.BudgetSummary {
	var s model.BudgetSummary

	for _, e := range expenses {
		s.TotalMonthlyExpenses += e.Amount
	}

	s.MonthlyProfit = monthlyBudget - s.TotalMonthlyExpenses
	s.TotalProjectBudget = monthlyBudget * float64(projectDuration)
	s.TotalProjectExpenses = s.TotalMonthlyExpenses * float64(projectDuration)
	s.TotalProjectProfit = s.TotalProjectBudget - s.TotalProjectExpenses

	if monthlyBudget > 0 {
		s.BudgetUsagePercent = s.TotalMonthlyExpenses / monthlyBudget * 100
	}

	return s
}

// CountCategories returns the number of distinct categories across blocks.
func CountCategories(blocks []model.ExpenseBlock) int {
	seen := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		seen[b.Category] = struct{}{}
	}
	return len(seen)
}

// CountActive returns the number of active blocks.
func CountActive(blocks []model.ExpenseBlock) int {
	n := 0
	for _, b := range blocks {
		if b.IsActive {
			n++
		}
	}
	return n
}
