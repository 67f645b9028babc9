package tui

import (
	"testing"

	"budgie/internal/model"
)

func TestDecodeTiers(t *testing.T) {
	tiers, err := decodeTiers("1-3 videos: 400\n4-10 videos: 300: per_item\n\n")
	if err != nil {
		t.Fatalf("decodeTiers: %v", err)
	}
	if len(tiers) != 2 {
		t.Fatalf("len(tiers) = %d, want 2", len(tiers))
	}
	if tiers[0].Range != "1-3 videos" || tiers[0].Price != 400 || tiers[0].Type != model.TierFixed {
		t.Fatalf("tiers[0] = %+v", tiers[0])
	}
	if tiers[1].Price != 300 || tiers[1].Type != model.TierPerItem {
		t.Fatalf("tiers[1] = %+v", tiers[1])
	}
}

func TestDecodeTiersRejectsBadPrice(t *testing.T) {
	if _, err := decodeTiers("basic: free"); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
	if _, err := decodeTiers("basic: -50"); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestEncodeTiersRoundTrip(t *testing.T) {
	in := []model.PricingTier{
		{Range: "Basic", Price: 2500, Type: model.TierPackage},
		{Range: "Standard", Price: 3500.5, Type: model.TierFixed},
	}

	out, err := decodeTiers(encodeTiers(in))
	if err != nil {
		t.Fatalf("decodeTiers: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0] != in[0] {
		t.Fatalf("out[0] = %+v, want %+v", out[0], in[0])
	}
	if out[1].Price != 3500.5 {
		t.Fatalf("out[1].Price = %v, want 3500.5", out[1].Price)
	}
}
