package store

import (
	"path/filepath"
	"testing"
	"time"

	"budgie/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "budgie.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadFirstRunDefaults(t *testing.T) {
	s := openTestStore(t)

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if state.MonthlyBudget != 0 {
		t.Fatalf("MonthlyBudget = %.2f, want 0", state.MonthlyBudget)
	}
	if state.ProjectDuration != 1 {
		t.Fatalf("ProjectDuration = %d, want 1", state.ProjectDuration)
	}
	if len(state.Expenses) != 0 {
		t.Fatalf("Expenses len = %d, want 0", len(state.Expenses))
	}
	if len(state.ExpenseBlocks) != 4 {
		t.Fatalf("ExpenseBlocks len = %d, want 4 seeded defaults", len(state.ExpenseBlocks))
	}
	if state.ExpenseBlocks[0].Name != "Video Shooting" {
		t.Fatalf("first default block = %q, want Video Shooting", state.ExpenseBlocks[0].Name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	tier := model.PricingTier{Range: "1-3 videos", Price: 400, Type: model.TierFixed}
	in := model.State{
		MonthlyBudget:   5000,
		ProjectDuration: 3,
		Expenses: []model.ExpenseRecord{
			{ID: 10, Name: "Video Shooting - 1-3 videos (x2)", Amount: 800,
				Category: "Video Production", Date: "2024-03-15",
				BlockID: 1, Tier: &tier, Quantity: 2},
			{ID: 11, Name: "Drone rental", Amount: 150.5, Category: "Equipment Rental", Date: "2024-03-01"},
		},
		ExpenseBlocks: model.DefaultBlocks(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		ReportHistory: []model.ReportSnapshot{
			{ID: 20, Name: "Project Report - 2024-03-20", MonthlyBudget: 5000, ProjectDuration: 3},
		},
	}

	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if out.MonthlyBudget != 5000 || out.ProjectDuration != 3 {
		t.Fatalf("budget/duration = %.0f/%d, want 5000/3", out.MonthlyBudget, out.ProjectDuration)
	}
	if len(out.Expenses) != 2 {
		t.Fatalf("Expenses len = %d, want 2", len(out.Expenses))
	}
	if out.Expenses[0].Tier == nil || out.Expenses[0].Tier.Price != 400 {
		t.Fatalf("derived expense lost its tier snapshot: %+v", out.Expenses[0])
	}
	if out.Expenses[1].Tier != nil {
		t.Fatalf("custom expense gained a tier: %+v", out.Expenses[1])
	}
	if len(out.ExpenseBlocks) != 4 {
		t.Fatalf("ExpenseBlocks len = %d, want 4", len(out.ExpenseBlocks))
	}
	if len(out.ReportHistory) != 1 || out.ReportHistory[0].Name != "Project Report - 2024-03-20" {
		t.Fatalf("ReportHistory = %+v", out.ReportHistory)
	}
}

func TestSaveEmptyCollectionsOverwriteDefaults(t *testing.T) {
	s := openTestStore(t)

	// Persisting an empty block list must round-trip as empty, not fall
	// back to the seeded defaults.
	if err := s.Save(model.State{ProjectDuration: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.ExpenseBlocks) != 0 {
		t.Fatalf("ExpenseBlocks len = %d, want 0 after explicit empty save", len(out.ExpenseBlocks))
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(model.State{MonthlyBudget: 9999, ProjectDuration: 12}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.MonthlyBudget != 0 || out.ProjectDuration != 1 {
		t.Fatalf("state after reset = %.0f/%d, want defaults 0/1", out.MonthlyBudget, out.ProjectDuration)
	}
	if len(out.ExpenseBlocks) != 4 {
		t.Fatalf("ExpenseBlocks len = %d, want 4 defaults after reset", len(out.ExpenseBlocks))
	}
}
