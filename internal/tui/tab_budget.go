package tui

import (
	"fmt"
	"strings"

	"budgie/internal/cli"
	"budgie/internal/tui/components"
	"budgie/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetState tracks the budget tab state.
type budgetState struct {
	cursor int // selected row in the expense list
}

func (a App) handleBudgetKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "m":
		a.openForm(formBudget, a.newBudgetForm())
		return a, a.form.Init(), true
	case "u":
		a.openForm(formDuration, a.newDurationForm())
		return a, a.form.Init(), true
	case "c":
		a.openForm(formCustom, a.newCustomExpenseForm())
		return a, a.form.Init(), true
	case "d":
		expenses := a.tracker.Expenses()
		if a.budget.cursor < len(expenses) {
			deleted := expenses[a.budget.cursor]
			a.tracker.DeleteExpense(deleted.ID)
			a.statusMsg = "Deleted " + deleted.Name
			a.setCursor(a.budget.cursor)
		}
		return a, nil, true
	case "s":
		r := a.tracker.SaveReport()
		a.statusMsg = fmt.Sprintf("Saved %s (%d expenses)", r.Name, len(r.Expenses))
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderBudgetTab(cw, contentH int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol
	s := a.tracker.Summary()

	var b strings.Builder

	profitNote := "profit"
	if s.MonthlyProfit < 0 {
		profitNote = "loss"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Monthly Payment", cli.FormatMoney(sym, a.tracker.MonthlyBudget()),
			cli.FormatMonths(a.tracker.ProjectDuration())},
		{"Monthly Expenses", cli.FormatMoney(sym, s.TotalMonthlyExpenses),
			fmt.Sprintf("%d recorded", len(a.tracker.Expenses()))},
		{"Monthly Profit", cli.FormatMoney(sym, s.MonthlyProfit), profitNote},
		{"Project Profit", cli.FormatMoney(sym, s.TotalProjectProfit),
			"of " + cli.FormatMoney(sym, s.TotalProjectBudget)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Budget usage bar
	barW := components.CardInnerWidth(cw) - 22
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Budget Usage",
		components.UsageBar("This month", s.BudgetUsagePercent, 12, barW), cw))
	b.WriteString("\n")

	// Expense list
	expenses := a.tracker.Expenses()
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var list strings.Builder
	if len(expenses) == 0 {
		list.WriteString(labelStyle.Render("No expenses yet. Press [c] for a custom expense or add from a block."))
	} else {
		nameW := innerW - 36
		if nameW < 12 {
			nameW = 12
		}

		// Keep the selected row visible in the remaining card space
		visible := contentH - 12
		if visible < 3 {
			visible = 3
		}
		start := 0
		if a.budget.cursor >= visible {
			start = a.budget.cursor - visible + 1
		}
		end := start + visible
		if end > len(expenses) {
			end = len(expenses)
		}

		for i := start; i < end; i++ {
			e := expenses[i]
			line := fmt.Sprintf("%-10s %-*s %-18s %10s",
				e.Date, nameW, truncStr(e.Name, nameW), truncStr(e.Category, 18),
				cli.FormatMoney(sym, e.Amount))
			if i == a.budget.cursor {
				list.WriteString(markerStyle.Render("▸ "))
				list.WriteString(selStyle.Render(line))
			} else {
				list.WriteString("  ")
				list.WriteString(rowStyle.Render(line))
			}
			list.WriteString("\n")
		}
		list.WriteString(labelStyle.Render(fmt.Sprintf("%d expenses, %s total",
			len(expenses), cli.FormatMoney(sym, s.TotalMonthlyExpenses))))
	}

	b.WriteString(components.ContentCard("Expenses", list.String(), cw))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render(" [m]payment [u]duration [c]ustom [d]elete [s]ave report"))

	return b.String()
}
