// Package cmd implements the budgie command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"budgie/internal/app"
	"budgie/internal/cli"
	"budgie/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "budgie",
	Short: "Creative project budget tracker",
	Long: "Track budgets for marketing campaigns, video productions, and creative\n" +
		"projects: expense block templates, derived and custom expenses, and\n" +
		"monthly/project profit.",
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override state directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// loadConfig returns the user config, applying the --data-dir override.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintln(os.Stderr, cli.RenderWarn(fmt.Sprintf("  Config unreadable, using defaults: %v", err)))
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openTracker opens the state database and loads the tracker. The caller
// must Close it.
func openTracker(cfg config.Config) (*app.Tracker, error) {
	tr, err := app.Open(config.StatePath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening state: %w", err)
	}
	return tr, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
