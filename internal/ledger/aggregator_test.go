package ledger

import (
	"math"
	"testing"

	"budgie/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeEmptyExpenses(t *testing.T) {
	s := Summarize(5000, 3, nil)

	if !almostEqual(s.TotalMonthlyExpenses, 0) {
		t.Fatalf("TotalMonthlyExpenses = %.2f, want 0", s.TotalMonthlyExpenses)
	}
	if !almostEqual(s.MonthlyProfit, 5000) {
		t.Fatalf("MonthlyProfit = %.2f, want 5000", s.MonthlyProfit)
	}
	if !almostEqual(s.TotalProjectBudget, 15000) {
		t.Fatalf("TotalProjectBudget = %.2f, want 15000", s.TotalProjectBudget)
	}
	if !almostEqual(s.TotalProjectProfit, 15000) {
		t.Fatalf("TotalProjectProfit = %.2f, want 15000", s.TotalProjectProfit)
	}
	if !almostEqual(s.BudgetUsagePercent, 0) {
		t.Fatalf("BudgetUsagePercent = %.2f, want 0", s.BudgetUsagePercent)
	}
}

func TestSummarizeOverBudget(t *testing.T) {
	expenses := []model.ExpenseRecord{
		{ID: 1, Name: "Studio", Amount: 700},
		{ID: 2, Name: "Crew", Amount: 500},
	}

	s := Summarize(1000, 2, expenses)

	if !almostEqual(s.TotalMonthlyExpenses, 1200) {
		t.Fatalf("TotalMonthlyExpenses = %.2f, want 1200", s.TotalMonthlyExpenses)
	}
	if !almostEqual(s.MonthlyProfit, -200) {
		t.Fatalf("MonthlyProfit = %.2f, want -200", s.MonthlyProfit)
	}
	if !almostEqual(s.BudgetUsagePercent, 120) {
		t.Fatalf("BudgetUsagePercent = %.2f, want 120", s.BudgetUsagePercent)
	}
	if !almostEqual(s.TotalProjectExpenses, 2400) {
		t.Fatalf("TotalProjectExpenses = %.2f, want 2400", s.TotalProjectExpenses)
	}
	if !almostEqual(s.TotalProjectProfit, -400) {
		t.Fatalf("TotalProjectProfit = %.2f, want -400", s.TotalProjectProfit)
	}
}

func TestSummarizeZeroBudgetGuard(t *testing.T) {
	expenses := []model.ExpenseRecord{{ID: 1, Name: "Anything", Amount: 999}}

	s := Summarize(0, 1, expenses)

	if !almostEqual(s.BudgetUsagePercent, 0) {
		t.Fatalf("BudgetUsagePercent = %.2f, want 0 when budget is 0", s.BudgetUsagePercent)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	expenses := []model.ExpenseRecord{
		{ID: 1, Amount: 150.5},
		{ID: 2, Amount: 42},
	}

	first := Summarize(3000, 6, expenses)
	second := Summarize(3000, 6, expenses)

	if first != second {
		t.Fatalf("repeated Summarize differs: %+v vs %+v", first, second)
	}
}

func TestCountCategories(t *testing.T) {
	blocks := []model.ExpenseBlock{
		{Category: "Video Production"},
		{Category: "Video Production"},
		{Category: "Creative Services"},
	}

	if got := CountCategories(blocks); got != 2 {
		t.Fatalf("CountCategories = %d, want 2", got)
	}
}

func TestCountActive(t *testing.T) {
	blocks := []model.ExpenseBlock{
		{IsActive: true},
		{IsActive: false},
		{IsActive: true},
	}

	if got := CountActive(blocks); got != 2 {
		t.Fatalf("CountActive = %d, want 2", got)
	}
}
