package app

import (
	"testing"

	"budgie/internal/model"
)

func TestNewBlockDraftStartsWithOneFixedTier(t *testing.T) {
	d := NewBlockDraft("Creative Services")

	if len(d.PricingTiers) != 1 {
		t.Fatalf("tier count = %d, want 1", len(d.PricingTiers))
	}
	if d.PricingTiers[0].Type != model.TierFixed {
		t.Fatalf("tier type = %q, want fixed", d.PricingTiers[0].Type)
	}
	if !d.IsActive {
		t.Fatal("new draft not active")
	}
}

func TestRemoveTierFloor(t *testing.T) {
	d := NewBlockDraft("Creative Services")

	if d.RemoveTier(0) {
		t.Fatal("removed the last remaining tier")
	}

	d.AddTier()
	d.AddTier()
	if len(d.PricingTiers) != 3 {
		t.Fatalf("tier count = %d, want 3", len(d.PricingTiers))
	}

	if !d.RemoveTier(1) {
		t.Fatal("mid-tier removal refused")
	}
	if !d.RemoveTier(1) {
		t.Fatal("second removal refused")
	}
	if d.RemoveTier(0) {
		t.Fatal("floor of one tier not enforced")
	}
	if len(d.PricingTiers) != 1 {
		t.Fatalf("tier count = %d, want 1", len(d.PricingTiers))
	}
}

func TestRemoveTierOutOfRange(t *testing.T) {
	d := NewBlockDraft("Creative Services")
	d.AddTier()

	if d.RemoveTier(-1) || d.RemoveTier(5) {
		t.Fatal("out-of-range removal accepted")
	}
	if len(d.PricingTiers) != 2 {
		t.Fatalf("tier count = %d, want 2", len(d.PricingTiers))
	}
}

func TestDraftFromBlockCopiesTiers(t *testing.T) {
	block := model.ExpenseBlock{
		ID:   1,
		Name: "Video Shooting",
		PricingTiers: []model.PricingTier{
			{Range: "1-3 videos", Price: 400, Type: model.TierFixed},
		},
	}

	d := DraftFromBlock(block)
	d.PricingTiers[0].Price = 999

	if block.PricingTiers[0].Price != 400 {
		t.Fatalf("draft edit leaked into block: %.0f", block.PricingTiers[0].Price)
	}
}
