// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats an amount with the configured currency symbol and
// two decimals. Storage keeps full float precision; formatting is display
// only.
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + symbol + formatGrouped(-amount)
	}
	return symbol + formatGrouped(amount)
}

// FormatSignedMoney renders a profit/loss value with an explicit sign.
func FormatSignedMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + symbol + formatGrouped(-amount)
	}
	return "+" + symbol + formatGrouped(amount)
}

func formatGrouped(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return groupThousands(s[:dot]) + s[dot:]
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a timestamp as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonths renders a duration in months.
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
