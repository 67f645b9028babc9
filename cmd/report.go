package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"budgie/internal/cli"
	"budgie/internal/report"

	"github.com/spf13/cobra"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Save, list, and export budget reports",
	RunE:  runReportList,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved report snapshots",
	RunE:  runReportList,
}

var reportSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Freeze the current budget state into the report history",
	RunE:  runReportSave,
}

var reportRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved report snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportRm,
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a printable HTML report of the current state",
	RunE:  runReportExport,
}

func init() {
	reportExportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "", "Output path (default stdout)")

	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportSaveCmd)
	reportCmd.AddCommand(reportRmCmd)
	reportCmd.AddCommand(reportExportCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	reports := tr.Reports()
	if len(reports) == 0 {
		fmt.Println("\n" + cli.RenderMuted("  No saved reports."))
		return nil
	}

	sym := cfg.General.CurrencySymbol
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10), r.Name, cli.FormatDate(r.Date),
			cli.FormatMoney(sym, r.TotalMonthlyExpenses),
			cli.FormatMoney(sym, r.MonthlyProfit),
			cli.FormatMoney(sym, r.TotalProjectProfit),
			strconv.Itoa(len(r.Expenses)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Report History",
		Headers: []string{"ID", "Name", "Saved", "Mo. Expenses", "Mo. Profit", "Proj. Profit", "Items"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runReportSave(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	r := tr.SaveReport()
	if !flagQuiet {
		fmt.Printf("  Saved report %d: %s (%d expenses)\n", r.ID, r.Name, len(r.Expenses))
	}
	return nil
}

func runReportRm(_ *cobra.Command, args []string) error {
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

	tr.DeleteReport(id)
	if !flagQuiet {
		fmt.Printf("  Deleted report %d\n", id)
	}
	return nil
}

func runReportExport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	sym := cfg.General.CurrencySymbol
	now := time.Now()

	if flagReportOut == "" {
		return report.Write(os.Stdout, sym, tr.MonthlyBudget(), tr.ProjectDuration(), tr.Expenses(), now)
	}
	if err := report.WriteFile(flagReportOut, sym, tr.MonthlyBudget(), tr.ProjectDuration(), tr.Expenses(), now); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Report written to %s\n", flagReportOut)
	}
	return nil
}
