package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₪0.00"},
		{400, "₪400.00"},
		{150.5, "₪150.50"},
		{2500, "₪2,500.00"},
		{1234567.891, "₪1,234,567.89"},
		{-200, "-₪200.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney("₪", tt.amount); got != tt.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("₪", 4200); got != "+₪4,200.00" {
		t.Fatalf("positive = %q", got)
	}
	if got := FormatSignedMoney("₪", -200); got != "-₪200.00" {
		t.Fatalf("negative = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(120); got != "120.0%" {
		t.Fatalf("FormatPercent(120) = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Fatalf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(3); got != "3 months" {
		t.Fatalf("FormatMonths(3) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-03-15" {
		t.Fatalf("FormatDate = %q", got)
	}
}
