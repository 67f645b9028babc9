package cmd

import (
	"fmt"
	"strconv"

	"budgie/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagExpenseCategory string
	flagExpenseDate     string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage recorded expenses",
	RunE:  runExpenseList,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Record a custom one-off expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseAdd,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "Expense category")
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date (YYYY-MM-DD, default today)")

	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	expenses := tr.Expenses()
	if len(expenses) == 0 {
		fmt.Println("\n" + cli.RenderMuted("  No expenses recorded."))
		return nil
	}

	sym := cfg.General.CurrencySymbol
	var total float64
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		source := "custom"
		if e.BlockID != 0 {
			source = fmt.Sprintf("block %d", e.BlockID)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10), e.Date, e.Name, e.Category, source,
			cli.FormatMoney(sym, e.Amount),
		})
		total += e.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "Total", cli.FormatMoney(sym, total)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recorded Expenses",
		Headers: []string{"ID", "Date", "Name", "Category", "Source", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	category := flagExpenseCategory
	if category == "" {
		category = cfg.General.DefaultCategory
	}

	rec, ok := tr.AddCustomExpense(args[0], args[1], category, flagExpenseDate)
	if !ok {
		return fmt.Errorf("expense needs a non-empty name and a numeric amount")
	}
	if !flagQuiet {
		fmt.Printf("  Recorded: %s  %s  (%s)\n", rec.Name,
			cli.FormatMoney(cfg.General.CurrencySymbol, rec.Amount), rec.Date)
	}
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	tr.DeleteExpense(id)
	if !flagQuiet {
		fmt.Printf("  Deleted expense %d\n", id)
	}
	return nil
}
