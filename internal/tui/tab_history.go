package tui

import (
	"fmt"
	"strings"

	"budgie/internal/cli"
	"budgie/internal/model"
	"budgie/internal/tui/components"
	"budgie/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyState tracks the report history tab state.
type historyState struct {
	cursor int
}

func (a App) selectedReport() (model.ReportSnapshot, bool) {
	reports := a.tracker.Reports()
	if a.history.cursor < 0 || a.history.cursor >= len(reports) {
		return model.ReportSnapshot{}, false
	}
	return reports[a.history.cursor], true
}

func (a App) handleHistoryKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "d":
		if r, ok := a.selectedReport(); ok {
			a.tracker.DeleteReport(r.ID)
			a.statusMsg = "Deleted " + r.Name
			a.setCursor(a.history.cursor)
		}
		return a, nil, true
	case "s":
		r := a.tracker.SaveReport()
		a.statusMsg = fmt.Sprintf("Saved %s (%d expenses)", r.Name, len(r.Expenses))
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol
	reports := a.tracker.Reports()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder

	halves := components.LayoutRow(cw, 2)
	listInnerW := components.CardInnerWidth(halves[0])

	var list strings.Builder
	if len(reports) == 0 {
		list.WriteString(labelStyle.Render("No saved reports. Press [s] to snapshot the current state."))
	} else {
		nameW := listInnerW - 14
		if nameW < 10 {
			nameW = 10
		}
		for i, r := range reports {
			line := fmt.Sprintf("%-*s %s", nameW, truncStr(r.Name, nameW), cli.FormatDate(r.Date))
			if i == a.history.cursor {
				list.WriteString(markerStyle.Render("▸ "))
				list.WriteString(selStyle.Render(line))
			} else {
				list.WriteString("  ")
				list.WriteString(rowStyle.Render(line))
			}
			list.WriteString("\n")
		}
	}

	var detail strings.Builder
	var detailTitle string
	if r, ok := a.selectedReport(); ok {
		detailTitle = r.Name
		detail.WriteString(labelStyle.Render("Saved:            ") + rowStyle.Render(cli.FormatDate(r.Date)) + "\n")
		detail.WriteString(labelStyle.Render("Monthly payment:  ") + rowStyle.Render(cli.FormatMoney(sym, r.MonthlyBudget)) + "\n")
		detail.WriteString(labelStyle.Render("Duration:         ") + rowStyle.Render(cli.FormatMonths(r.ProjectDuration)) + "\n")
		detail.WriteString(labelStyle.Render("Monthly expenses: ") + rowStyle.Render(cli.FormatMoney(sym, r.TotalMonthlyExpenses)) + "\n")

		profitStyle := lipgloss.NewStyle().Foreground(t.Green)
		if r.MonthlyProfit < 0 {
			profitStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		detail.WriteString(labelStyle.Render("Monthly profit:   ") + profitStyle.Render(cli.FormatMoney(sym, r.MonthlyProfit)) + "\n")

		projStyle := lipgloss.NewStyle().Foreground(t.Green)
		if r.TotalProjectProfit < 0 {
			projStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		detail.WriteString(labelStyle.Render("Project profit:   ") + projStyle.Render(cli.FormatMoney(sym, r.TotalProjectProfit)) + "\n\n")

		detail.WriteString(labelStyle.Render(fmt.Sprintf("Expenses (%d)", len(r.Expenses))) + "\n")
		shown := len(r.Expenses)
		limit := contentH - 14
		if limit < 3 {
			limit = 3
		}
		if shown > limit {
			shown = limit
		}
		for _, e := range r.Expenses[:shown] {
			detail.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", e.Date, truncStr(e.Name, 30))) + "\n")
		}
		if shown < len(r.Expenses) {
			detail.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(r.Expenses)-shown)) + "\n")
		}
	} else {
		detail.WriteString(labelStyle.Render("Nothing selected."))
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard(fmt.Sprintf("Report History (%d)", len(reports)), list.String(), halves[0]),
		components.ContentCard(detailTitle, detail.String(), halves[1]),
	}))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(" [s]ave snapshot [d]elete"))

	return b.String()
}
