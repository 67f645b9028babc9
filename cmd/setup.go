package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"budgie/internal/config"
	"budgie/internal/model"

	"github.com/spf13/cobra"
)

var flagSetupReset bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&flagSetupReset, "reset", false, "Also wipe tracked data back to the starter blocks")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to budgie!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.CurrencySymbol)
	fmt.Print("     > ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol != "" {
		cfg.General.CurrencySymbol = symbol
	}
	fmt.Println()

	// 2. Default category
	fmt.Println("  2. Default expense category")
	for i, c := range model.Categories {
		marker := " "
		if c == cfg.General.DefaultCategory {
			marker = "*"
		}
		fmt.Printf("     (%d) %s %s\n", i+1, marker, c)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	for i, c := range model.Categories {
		if choice == fmt.Sprintf("%d", i+1) {
			cfg.General.DefaultCategory = c
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())

	if flagSetupReset {
		if flagDataDir != "" {
			cfg.General.DataDir = flagDataDir
		}
		tr, err := openTracker(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = tr.Close() }()
		if err := tr.Reset(); err != nil {
			return fmt.Errorf("resetting data: %w", err)
		}
		fmt.Println("  Tracked data reset to the starter blocks.")
	}

	fmt.Println("  Run `budgie setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
