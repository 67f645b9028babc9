package cmd

import (
	"fmt"

	"budgie/internal/cli"
	"budgie/internal/config"
	"budgie/internal/ledger"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Financial summary for the current project",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	sym := cfg.General.CurrencySymbol
	s := tr.Summary()

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECT BUDGET"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Financial Summary",
		Headers: []string{"", "Monthly", "Project"},
		Rows: [][]string{
			{"Client Payment", cli.FormatMoney(sym, tr.MonthlyBudget()), cli.FormatMoney(sym, s.TotalProjectBudget)},
			{"Expenses", cli.FormatMoney(sym, s.TotalMonthlyExpenses), cli.FormatMoney(sym, s.TotalProjectExpenses)},
			{"---"},
			{"Profit", cli.RenderProfit(cli.FormatSignedMoney(sym, s.MonthlyProfit), s.MonthlyProfit >= 0),
				cli.RenderProfit(cli.FormatSignedMoney(sym, s.TotalProjectProfit), s.TotalProjectProfit >= 0)},
		},
	}))

	fmt.Printf("  Duration: %s\n", cli.FormatMonths(tr.ProjectDuration()))
	fmt.Printf("  Budget Usage: %s\n\n", cli.RenderUsageBar(s.BudgetUsagePercent, 30))

	blocks := tr.Blocks()
	fmt.Printf("  Blocks: %d total, %d active  •  Expenses: %d  •  Categories: %d\n\n",
		len(blocks), ledger.CountActive(blocks), len(tr.Expenses()), ledger.CountCategories(blocks))

	if !config.Exists() {
		fmt.Println(cli.RenderMuted("  Run `budgie setup` to configure currency and theme."))
		fmt.Println()
	}

	return nil
}
