package app

import (
	"testing"
	"time"

	"budgie/internal/model"
)

func newTestTracker() *Tracker {
	t := New(model.DefaultState(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), nil)
	t.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return t
}

func TestCreateBlockAssignsFreshID(t *testing.T) {
	tr := newTestTracker()

	draft := NewBlockDraft("Creative Services")
	draft.Name = "Voiceover"
	draft.PricingTiers[0] = model.PricingTier{Range: "per session", Price: 250, Type: model.TierFixed}

	block := tr.CreateBlock(draft)

	if block.ID != 5 {
		t.Fatalf("new block ID = %d, want 5 (after 4 seeded blocks)", block.ID)
	}
	if block.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}
	if len(tr.Blocks()) != 5 {
		t.Fatalf("block count = %d, want 5", len(tr.Blocks()))
	}
}

func TestUpdateBlockPreservesIDAndTimestamp(t *testing.T) {
	tr := newTestTracker()
	orig, _ := tr.FindBlock(2)

	draft := DraftFromBlock(orig)
	draft.Name = "Video Editing Pro"
	draft.PricingTiers[0].Price = 450

	tr.UpdateBlock(2, draft)

	updated, ok := tr.FindBlock(2)
	if !ok {
		t.Fatal("block 2 missing after update")
	}
	if updated.Name != "Video Editing Pro" {
		t.Fatalf("Name = %q, want Video Editing Pro", updated.Name)
	}
	if updated.PricingTiers[0].Price != 450 {
		t.Fatalf("tier price = %.0f, want 450", updated.PricingTiers[0].Price)
	}
	if !updated.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatal("CreatedAt changed on update")
	}
}

func TestUpdateBlockUnknownIDIsNoop(t *testing.T) {
	tr := newTestTracker()
	before := len(tr.Blocks())

	tr.UpdateBlock(999, NewBlockDraft("Creative Services"))

	if len(tr.Blocks()) != before {
		t.Fatalf("block count changed on unknown-id update")
	}
}

func TestDeleteBlockKeepsDerivedRecords(t *testing.T) {
	tr := newTestTracker()

	rec, ok := tr.AddFromBlock(1, 0, 2)
	if !ok {
		t.Fatal("AddFromBlock failed")
	}

	tr.DeleteBlock(1)

	if _, found := tr.FindBlock(1); found {
		t.Fatal("block 1 still present after delete")
	}
	if len(tr.Expenses()) != 1 {
		t.Fatalf("expense count = %d, want 1 after block delete", len(tr.Expenses()))
	}
	if tr.Expenses()[0].Amount != rec.Amount {
		t.Fatal("derived record changed by block delete")
	}
}

func TestToggleBlock(t *testing.T) {
	tr := newTestTracker()

	tr.ToggleBlock(3)
	b, _ := tr.FindBlock(3)
	if b.IsActive {
		t.Fatal("block 3 still active after toggle")
	}
	if len(tr.ActiveBlocks()) != 3 {
		t.Fatalf("active blocks = %d, want 3", len(tr.ActiveBlocks()))
	}

	tr.ToggleBlock(3)
	b, _ = tr.FindBlock(3)
	if !b.IsActive {
		t.Fatal("block 3 inactive after second toggle")
	}
}

func TestQuickEditPrice(t *testing.T) {
	tr := newTestTracker()

	if !tr.QuickEditPrice(1, 0, "350") {
		t.Fatal("valid quick edit rejected")
	}
	b, _ := tr.FindBlock(1)
	if b.PricingTiers[0].Price != 350 {
		t.Fatalf("tier price = %.0f, want 350", b.PricingTiers[0].Price)
	}
}

func TestQuickEditPriceInvalidDiscarded(t *testing.T) {
	tr := newTestTracker()

	for _, bad := range []string{"-5", "abc", ""} {
		if tr.QuickEditPrice(1, 0, bad) {
			t.Fatalf("quick edit accepted invalid price %q", bad)
		}
	}

	b, _ := tr.FindBlock(1)
	if b.PricingTiers[0].Price != 400 {
		t.Fatalf("tier price = %.0f, want unchanged 400", b.PricingTiers[0].Price)
	}
}

func TestAddFromBlock(t *testing.T) {
	tr := newTestTracker()

	rec, ok := tr.AddFromBlock(1, 0, 2)
	if !ok {
		t.Fatal("AddFromBlock failed")
	}
	if rec.Name != "Video Shooting - 1-3 videos (x2)" {
		t.Fatalf("Name = %q", rec.Name)
	}
	if rec.Amount != 800 {
		t.Fatalf("Amount = %.0f, want 800", rec.Amount)
	}
	if rec.Date != "2024-03-15" {
		t.Fatalf("Date = %q, want 2024-03-15", rec.Date)
	}
}

func TestAddFromBlockRejectsBadInput(t *testing.T) {
	tr := newTestTracker()

	if _, ok := tr.AddFromBlock(1, 0, 0); ok {
		t.Fatal("quantity 0 accepted")
	}
	if _, ok := tr.AddFromBlock(1, 0, -3); ok {
		t.Fatal("negative quantity accepted")
	}
	if _, ok := tr.AddFromBlock(999, 0, 1); ok {
		t.Fatal("unknown block accepted")
	}
	if _, ok := tr.AddFromBlock(1, 99, 1); ok {
		t.Fatal("out-of-range tier accepted")
	}
	if len(tr.Expenses()) != 0 {
		t.Fatalf("expense count = %d, want 0", len(tr.Expenses()))
	}
}

func TestProvenanceIsolation(t *testing.T) {
	tr := newTestTracker()

	rec, _ := tr.AddFromBlock(1, 0, 1)
	if rec.Amount != 400 {
		t.Fatalf("Amount = %.0f, want 400", rec.Amount)
	}

	// Edit the source tier after derivation.
	tr.QuickEditPrice(1, 0, "999")

	got := tr.Expenses()[0]
	if got.Amount != 400 {
		t.Fatalf("record amount = %.0f, want 400 after source edit", got.Amount)
	}
	if got.Tier.Price != 400 {
		t.Fatalf("record tier price = %.0f, want 400 after source edit", got.Tier.Price)
	}
}

func TestAddCustomExpense(t *testing.T) {
	tr := newTestTracker()

	rec, ok := tr.AddCustomExpense("Drone rental", "150.5", "Equipment Rental", "2024-03-01")
	if !ok {
		t.Fatal("valid custom expense rejected")
	}
	if rec.Amount != 150.5 {
		t.Fatalf("Amount = %.2f, want 150.5", rec.Amount)
	}
	if rec.Tier != nil {
		t.Fatal("custom expense carries a tier")
	}
}

func TestAddCustomExpenseDefaultsDate(t *testing.T) {
	tr := newTestTracker()

	rec, ok := tr.AddCustomExpense("Lunch", "40", "Client Entertainment", "")
	if !ok {
		t.Fatal("custom expense rejected")
	}
	if rec.Date != "2024-03-15" {
		t.Fatalf("Date = %q, want current date 2024-03-15", rec.Date)
	}
}

func TestAddCustomExpenseInvalidIsNoop(t *testing.T) {
	tr := newTestTracker()

	if _, ok := tr.AddCustomExpense("", "100", "Creative Services", ""); ok {
		t.Fatal("empty name accepted")
	}
	if _, ok := tr.AddCustomExpense("Lunch", "soup", "Creative Services", ""); ok {
		t.Fatal("unparseable amount accepted")
	}
	if len(tr.Expenses()) != 0 {
		t.Fatalf("expense count = %d, want 0", len(tr.Expenses()))
	}
}

func TestDeleteExpense(t *testing.T) {
	tr := newTestTracker()

	a, _ := tr.AddCustomExpense("One", "10", "Creative Services", "")
	b, _ := tr.AddCustomExpense("Two", "20", "Creative Services", "")
	if a.ID == b.ID {
		t.Fatalf("expense ids collide: %d", a.ID)
	}

	tr.DeleteExpense(a.ID)

	if len(tr.Expenses()) != 1 || tr.Expenses()[0].ID != b.ID {
		t.Fatalf("expenses after delete = %+v", tr.Expenses())
	}

	tr.DeleteExpense(999) // unknown id is a no-op
	if len(tr.Expenses()) != 1 {
		t.Fatalf("expense count = %d, want 1", len(tr.Expenses()))
	}
}

func TestSaveReportSnapshotIsolation(t *testing.T) {
	tr := newTestTracker()
	tr.SetMonthlyBudget(5000)
	tr.SetProjectDuration(3)
	rec, _ := tr.AddFromBlock(1, 0, 2)

	report := tr.SaveReport()

	if report.MonthlyBudget != 5000 || report.ProjectDuration != 3 {
		t.Fatalf("report captured %.0f/%d, want 5000/3", report.MonthlyBudget, report.ProjectDuration)
	}
	if report.TotalMonthlyExpenses != 800 || report.MonthlyProfit != 4200 {
		t.Fatalf("report totals = %.0f/%.0f", report.TotalMonthlyExpenses, report.MonthlyProfit)
	}

	// Deleting the live expense must not touch the snapshot.
	tr.DeleteExpense(rec.ID)

	saved := tr.Reports()[0]
	if len(saved.Expenses) != 1 {
		t.Fatalf("snapshot expenses = %d, want 1 after live delete", len(saved.Expenses))
	}
	if saved.Expenses[0].ID != rec.ID {
		t.Fatal("snapshot lost the deleted record")
	}
}

func TestDeleteReport(t *testing.T) {
	tr := newTestTracker()

	first := tr.SaveReport()
	second := tr.SaveReport()
	if first.ID == second.ID {
		t.Fatalf("report ids collide: %d", first.ID)
	}

	tr.DeleteReport(first.ID)
	if len(tr.Reports()) != 1 || tr.Reports()[0].ID != second.ID {
		t.Fatalf("reports after delete = %+v", tr.Reports())
	}
}

func TestSetProjectDurationFloor(t *testing.T) {
	tr := newTestTracker()

	tr.SetProjectDuration(0)
	if tr.ProjectDuration() != 1 {
		t.Fatalf("duration = %d, want floor of 1", tr.ProjectDuration())
	}
	tr.SetProjectDuration(-4)
	if tr.ProjectDuration() != 1 {
		t.Fatalf("duration = %d, want floor of 1", tr.ProjectDuration())
	}
	tr.SetProjectDuration(6)
	if tr.ProjectDuration() != 6 {
		t.Fatalf("duration = %d, want 6", tr.ProjectDuration())
	}
}
