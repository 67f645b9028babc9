package cmd

import (
	"fmt"
	"strconv"

	"budgie/internal/cli"

	"github.com/spf13/cobra"
)

var flagAddQuantity int

var addCmd = &cobra.Command{
	Use:   "add <block-id> <tier-index>",
	Short: "Record an expense derived from a block tier",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntVarP(&flagAddQuantity, "quantity", "n", 1, "Quantity multiplier")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	tierIndex, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid tier index %q", args[1])
	}

	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	rec, ok := tr.AddFromBlock(id, tierIndex, flagAddQuantity)
	if !ok {
		return fmt.Errorf("no tier %d on block %d (or quantity below 1)", tierIndex, id)
	}
	if !flagQuiet {
		fmt.Printf("  Recorded: %s  %s\n", rec.Name, cli.FormatMoney(cfg.General.CurrencySymbol, rec.Amount))
	}
	return nil
}
