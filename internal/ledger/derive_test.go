package ledger

import (
	"testing"
	"time"

	"budgie/internal/model"
)

func TestDeriveAmountAndName(t *testing.T) {
	block := model.ExpenseBlock{
		ID:       1,
		Name:     "Video Shooting",
		Category: "Video Production",
	}
	tier := model.PricingTier{Range: "1-3 videos", Price: 400, Type: model.TierFixed}
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	rec := Derive(42, block, tier, 2, now)

	if rec.Name != "Video Shooting - 1-3 videos (x2)" {
		t.Fatalf("Name = %q, want %q", rec.Name, "Video Shooting - 1-3 videos (x2)")
	}
	if rec.Amount != 800 {
		t.Fatalf("Amount = %.2f, want 800", rec.Amount)
	}
	if rec.Category != "Video Production" {
		t.Fatalf("Category = %q, want Video Production", rec.Category)
	}
	if rec.Date != "2024-03-15" {
		t.Fatalf("Date = %q, want 2024-03-15", rec.Date)
	}
	if rec.BlockID != 1 || rec.Quantity != 2 {
		t.Fatalf("provenance = (block %d, qty %d), want (1, 2)", rec.BlockID, rec.Quantity)
	}
}

func TestDeriveTierIsSnapshot(t *testing.T) {
	block := model.ExpenseBlock{ID: 3, Name: "Social Media Post"}
	tier := model.PricingTier{Range: "1-3 posts", Price: 70, Type: model.TierFixed}

	rec := Derive(1, block, tier, 1, time.Now())

	// Mutating the source tier afterwards must not reach the record.
	tier.Price = 9999
	if rec.Tier.Price != 70 {
		t.Fatalf("record tier price = %.2f, want 70 after source edit", rec.Tier.Price)
	}
	if rec.Amount != 70 {
		t.Fatalf("record amount = %.2f, want 70 after source edit", rec.Amount)
	}
}

func TestParseCustom(t *testing.T) {
	tests := []struct {
		name     string
		expName  string
		amount   string
		wantOK   bool
		wantAmt  float64
	}{
		{"valid", "Drone rental", "150.5", true, 150.5},
		{"zero amount", "Freebie", "0", true, 0},
		{"empty name", "", "100", false, 0},
		{"blank name", "   ", "100", false, 0},
		{"bad amount", "Lunch", "abc", false, 0},
		{"empty amount", "Lunch", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ParseCustom(7, tt.expName, tt.amount, "Equipment Rental", "2024-03-01")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if rec.Amount != tt.wantAmt {
				t.Fatalf("Amount = %.2f, want %.2f", rec.Amount, tt.wantAmt)
			}
			if rec.Tier != nil || rec.BlockID != 0 || rec.Quantity != 0 {
				t.Fatalf("custom record carries provenance: %+v", rec)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"350", 350, true},
		{"0", 0, true},
		{"12.75", 12.75, true},
		{" 80 ", 80, true},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ParsePrice(%q) = (%.2f, %v), want (%.2f, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
