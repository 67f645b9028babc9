package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"budgie/internal/app"
	"budgie/internal/cli"
	"budgie/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBlockSearch   string
	flagBlockCategory string
	flagBlockAll      bool

	flagBlockName     string
	flagBlockDesc     string
	flagBlockCat      string
	flagBlockTiers    []string
	flagBlockInactive bool
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Manage expense block templates",
	RunE:  runBlocksList,
}

var blocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expense blocks",
	RunE:  runBlocksList,
}

var blocksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new expense block",
	RunE:  runBlocksCreate,
}

var blocksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense block",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocksEdit,
}

var blocksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense block (recorded expenses are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocksRm,
}

var blocksToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a block between active and inactive",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocksToggle,
}

var blocksPriceCmd = &cobra.Command{
	Use:   "price <block-id> <tier-index> <price>",
	Short: "Quick-edit one tier's price",
	Args:  cobra.ExactArgs(3),
	RunE:  runBlocksPrice,
}

func init() {
	for _, c := range []*cobra.Command{blocksCmd, blocksListCmd} {
		c.Flags().StringVar(&flagBlockSearch, "search", "", "Filter by name/description substring")
		c.Flags().StringVar(&flagBlockCategory, "category", "", "Filter by exact category")
		c.Flags().BoolVar(&flagBlockAll, "all", false, "Include inactive blocks")
	}

	for _, c := range []*cobra.Command{blocksCreateCmd, blocksEditCmd} {
		c.Flags().StringVar(&flagBlockName, "name", "", "Block name")
		c.Flags().StringVar(&flagBlockDesc, "desc", "", "Block description")
		c.Flags().StringVar(&flagBlockCat, "category", "", "Block category")
		c.Flags().StringArrayVar(&flagBlockTiers, "tier", nil,
			`Pricing tier as "range:price[:type]", repeatable`)
		c.Flags().BoolVar(&flagBlockInactive, "inactive", false, "Create/leave the block inactive")
	}

	blocksCmd.AddCommand(blocksListCmd)
	blocksCmd.AddCommand(blocksCreateCmd)
	blocksCmd.AddCommand(blocksEditCmd)
	blocksCmd.AddCommand(blocksRmCmd)
	blocksCmd.AddCommand(blocksToggleCmd)
	blocksCmd.AddCommand(blocksPriceCmd)
	rootCmd.AddCommand(blocksCmd)
}

// parseTierFlag parses "range:price[:type]" into a tier. The range label
// may not contain a colon; prices use plain decimal notation.
func parseTierFlag(s string) (model.PricingTier, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return model.PricingTier{}, fmt.Errorf("tier %q: want \"range:price[:type]\"", s)
	}
	price, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.PricingTier{}, fmt.Errorf("tier %q: bad price %q", s, parts[1])
	}
	tier := model.PricingTier{Range: parts[0], Price: price, Type: model.TierFixed}
	if len(parts) == 3 {
		tier.Type = parts[2]
	}
	return tier, nil
}

func matchBlock(b model.ExpenseBlock, search, category string) bool {
	if search != "" {
		q := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Description), q) {
			return false
		}
	}
	if category != "" && b.Category != category {
		return false
	}
	return true
}

func runBlocksList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	sym := cfg.General.CurrencySymbol

	blocks := tr.ActiveBlocks()
	if flagBlockAll {
		blocks = tr.Blocks()
	}

	var rows [][]string
	for _, b := range blocks {
		if !matchBlock(b, flagBlockSearch, flagBlockCategory) {
			continue
		}

		status := "active"
		if !b.IsActive {
			status = "inactive"
		}
		for i, t := range b.PricingTiers {
			if i == 0 {
				rows = append(rows, []string{
					strconv.FormatInt(b.ID, 10), b.Name, b.Category, status,
					t.Range, cli.FormatMoney(sym, t.Price),
				})
			} else {
				rows = append(rows, []string{"", "", "", "", t.Range, cli.FormatMoney(sym, t.Price)})
			}
		}
	}

	if len(rows) == 0 {
		fmt.Println("\n" + cli.RenderMuted("  No blocks match."))
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expense Blocks",
		Headers: []string{"ID", "Name", "Category", "Status", "Tier", "Price"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runBlocksCreate(_ *cobra.Command, _ []string) error {
	if flagBlockName == "" {
		return fmt.Errorf("--name is required")
	}
	if len(flagBlockTiers) == 0 {
		return fmt.Errorf("at least one --tier is required")
	}

	cfg := loadConfig()

	draft := app.NewBlockDraft(cfg.General.DefaultCategory)
	draft.Name = flagBlockName
	draft.Description = flagBlockDesc
	if flagBlockCat != "" {
		draft.Category = flagBlockCat
	}
	draft.IsActive = !flagBlockInactive
	draft.PricingTiers = nil
	for _, s := range flagBlockTiers {
		tier, err := parseTierFlag(s)
		if err != nil {
			return err
		}
		draft.PricingTiers = append(draft.PricingTiers, tier)
	}

	tr, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	block := tr.CreateBlock(draft)
	if !flagQuiet {
		fmt.Printf("  Created block %d: %s (%d tiers)\n", block.ID, block.Name, len(block.PricingTiers))
	}
	return nil
}

func runBlocksEdit(cmd *cobra.Command, args []string) error {
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

	block, ok := tr.FindBlock(id)
	if !ok {
		return fmt.Errorf("no block with id %d", id)
	}

	draft := app.DraftFromBlock(block)
	if cmd.Flags().Changed("name") {
		draft.Name = flagBlockName
	}
	if cmd.Flags().Changed("desc") {
		draft.Description = flagBlockDesc
	}
	if cmd.Flags().Changed("category") {
		draft.Category = flagBlockCat
	}
	if cmd.Flags().Changed("inactive") {
		draft.IsActive = !flagBlockInactive
	}
	if cmd.Flags().Changed("tier") {
		draft.PricingTiers = nil
		for _, s := range flagBlockTiers {
			tier, err := parseTierFlag(s)
			if err != nil {
				return err
			}
			draft.PricingTiers = append(draft.PricingTiers, tier)
		}
		if len(draft.PricingTiers) == 0 {
			return fmt.Errorf("a block needs at least one tier")
		}
	}

	tr.UpdateBlock(id, draft)
	if !flagQuiet {
		fmt.Printf("  Updated block %d: %s\n", id, draft.Name)
	}
	return nil
}

func runBlocksRm(_ *cobra.Command, args []string) error {
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

	tr.DeleteBlock(id)
	if !flagQuiet {
		fmt.Printf("  Deleted block %d\n", id)
	}
	return nil
}

func runBlocksToggle(_ *cobra.Command, args []string) error {
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

	tr.ToggleBlock(id)
	if block, ok := tr.FindBlock(id); ok && !flagQuiet {
		status := "inactive"
		if block.IsActive {
			status = "active"
		}
		fmt.Printf("  Block %d (%s) is now %s\n", id, block.Name, status)
	}
	return nil
}

func runBlocksPrice(_ *cobra.Command, args []string) error {
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

	// Invalid prices are discarded without touching the block, matching
	// the inline quick-edit behavior.
	if tr.QuickEditPrice(id, tierIndex, args[2]) {
		if !flagQuiet {
			block, _ := tr.FindBlock(id)
			fmt.Printf("  %s tier %d price set to %s\n", block.Name, tierIndex,
				cli.FormatMoney(cfg.General.CurrencySymbol, block.PricingTiers[tierIndex].Price))
		}
	} else if !flagQuiet {
		fmt.Println("  Edit discarded.")
	}
	return nil
}
