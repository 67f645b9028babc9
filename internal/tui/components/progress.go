package components

import (
	"fmt"

	"budgie/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUsage maps a budget usage percentage (0-100+) to a bar color.
// Under half the budget is healthy, past the budget is trouble.
func ColorForUsage(pct float64) string {
	t := theme.Active
	switch {
	case pct > 100:
		return string(t.Red)
	case pct >= 50:
		return string(t.Orange)
	default:
		return string(t.Green)
	}
}

// UsageBar renders a labeled budget usage bar with percentage.
// pct is 0-100, values past 100 render a full red bar.
func UsageBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	fill := pct / 100
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForUsage(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForUsage(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(fill) + " " +
		pctStyle.Render(fmt.Sprintf("%.1f%%", pct))
}
