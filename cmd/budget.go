package cmd

import (
	"fmt"
	"strconv"

	"budgie/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or change project settings",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly client payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetDurationCmd = &cobra.Command{
	Use:   "duration <months>",
	Short: "Set the project duration in months",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetDuration,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetDurationCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	sym := cfg.General.CurrencySymbol
	fmt.Printf("\n  Monthly Client Payment: %s\n", cli.FormatMoney(sym, tr.MonthlyBudget()))
	fmt.Printf("  Project Duration: %s\n\n", cli.FormatMonths(tr.ProjectDuration()))
	return nil
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	tr.SetMonthlyBudget(amount)
	if !flagQuiet {
		fmt.Printf("  Monthly client payment set to %s\n", cli.FormatMoney(cfg.General.CurrencySymbol, amount))
	}
	return nil
}

func runBudgetDuration(_ *cobra.Command, args []string) error {
	months, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q", args[0])
	}

	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	tr.SetProjectDuration(months)
	if !flagQuiet {
		fmt.Printf("  Project duration set to %s\n", cli.FormatMonths(tr.ProjectDuration()))
	}
	return nil
}
