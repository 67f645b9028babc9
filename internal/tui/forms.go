package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"budgie/internal/app"
	"budgie/internal/cli"
	"budgie/internal/ledger"
	"budgie/internal/model"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formBudget
	formDuration
	formCustom
	formBlockNew
	formBlockEdit
	formDerive
)

// formValues holds the string bindings huh inputs write into. Parsing and
// validation happen when the form completes.
type formValues struct {
	amount string
	months string

	custName     string
	custAmount   string
	custCategory string
	custDate     string

	blockID       int64
	blockName     string
	blockDesc     string
	blockCategory string
	blockTiers    string
	blockActive   bool

	deriveBlockID int64
	deriveTier    int
	deriveQty     string
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func (a *App) openForm(kind formKind, form *huh.Form) {
	a.formKind = kind
	a.form = form
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
}

func (a *App) newBudgetForm() *huh.Form {
	a.formVals = &formValues{amount: strconv.FormatFloat(a.tracker.MonthlyBudget(), 'f', -1, 64)}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Monthly client payment").
			Value(&a.formVals.amount).
			Validate(validateNumber),
	))
}

func (a *App) newDurationForm() *huh.Form {
	a.formVals = &formValues{months: strconv.Itoa(a.tracker.ProjectDuration())}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project duration (months)").
			Value(&a.formVals.months).
			Validate(validatePositiveInt),
	))
}

func (a *App) newCustomExpenseForm() *huh.Form {
	a.formVals = &formValues{custCategory: a.cfg.General.DefaultCategory}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Expense name").
			Value(&a.formVals.custName),
		huh.NewInput().
			Title("Amount").
			Value(&a.formVals.custAmount).
			Validate(validateNumber),
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(model.Categories...)...).
			Value(&a.formVals.custCategory),
		huh.NewInput().
			Title("Date (YYYY-MM-DD, blank for today)").
			Value(&a.formVals.custDate),
	))
}

// newBlockForm builds the create/edit form. Tiers are entered one per line
// as "range: price" with an optional ": type" suffix.
func (a *App) newBlockForm(existing *model.ExpenseBlock) *huh.Form {
	if existing != nil {
		a.formVals = &formValues{
			blockID:       existing.ID,
			blockName:     existing.Name,
			blockDesc:     existing.Description,
			blockCategory: existing.Category,
			blockTiers:    encodeTiers(existing.PricingTiers),
			blockActive:   existing.IsActive,
		}
	} else {
		a.formVals = &formValues{
			blockCategory: a.cfg.General.DefaultCategory,
			blockActive:   true,
		}
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&a.formVals.blockName).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Description").
			Value(&a.formVals.blockDesc),
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(model.Categories...)...).
			Value(&a.formVals.blockCategory),
		huh.NewText().
			Title("Pricing tiers (one per line: range: price[: type])").
			Value(&a.formVals.blockTiers).
			Validate(func(s string) error {
				tiers, err := decodeTiers(s)
				if err != nil {
					return err
				}
				if len(tiers) == 0 {
					return errors.New("at least one tier is required")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Active?").
			Value(&a.formVals.blockActive),
	))
}

func (a *App) newDeriveForm(block model.ExpenseBlock) *huh.Form {
	a.formVals = &formValues{deriveBlockID: block.ID, deriveQty: "1"}
	vals := a.formVals
	sym := a.cfg.General.CurrencySymbol

	opts := make([]huh.Option[int], 0, len(block.PricingTiers))
	for i, t := range block.PricingTiers {
		label := fmt.Sprintf("%s  %s", t.Range, cli.FormatMoney(sym, t.Price))
		opts = append(opts, huh.NewOption(label, i))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("Tier for %q", block.Name)).
			Options(opts...).
			Value(&vals.deriveTier),
		huh.NewInput().
			Title("Quantity").
			Value(&vals.deriveQty).
			Validate(validatePositiveInt),
		huh.NewNote().
			DescriptionFunc(func() string {
				qty, err := strconv.Atoi(strings.TrimSpace(vals.deriveQty))
				if err != nil || qty < 1 || vals.deriveTier >= len(block.PricingTiers) {
					return ""
				}
				tier := block.PricingTiers[vals.deriveTier]
				return fmt.Sprintf("Total: %s", cli.FormatMoney(sym, tier.Price*float64(qty)))
			}, vals),
	))
}

// applyForm commits the completed form to the tracker.
func (a *App) applyForm() {
	switch a.formKind {
	case formBudget:
		amount, err := strconv.ParseFloat(strings.TrimSpace(a.formVals.amount), 64)
		if err == nil {
			a.tracker.SetMonthlyBudget(amount)
			a.statusMsg = "Monthly payment updated"
		}

	case formDuration:
		months, err := strconv.Atoi(strings.TrimSpace(a.formVals.months))
		if err == nil {
			a.tracker.SetProjectDuration(months)
			a.statusMsg = "Duration updated"
		}

	case formCustom:
		rec, ok := a.tracker.AddCustomExpense(
			a.formVals.custName, a.formVals.custAmount,
			a.formVals.custCategory, strings.TrimSpace(a.formVals.custDate))
		if ok {
			a.statusMsg = "Recorded " + rec.Name
		} else {
			a.statusMsg = "Expense discarded"
		}

	case formBlockNew, formBlockEdit:
		tiers, err := decodeTiers(a.formVals.blockTiers)
		if err != nil || len(tiers) == 0 {
			a.statusMsg = "Block discarded"
			return
		}
		draft := app.BlockDraft{
			Name:         strings.TrimSpace(a.formVals.blockName),
			Description:  strings.TrimSpace(a.formVals.blockDesc),
			Category:     a.formVals.blockCategory,
			PricingTiers: tiers,
			IsActive:     a.formVals.blockActive,
		}
		if a.formKind == formBlockEdit {
			a.tracker.UpdateBlock(a.formVals.blockID, draft)
			a.statusMsg = "Block updated"
		} else {
			block := a.tracker.CreateBlock(draft)
			a.statusMsg = "Created " + block.Name
		}

	case formDerive:
		qty, err := strconv.Atoi(strings.TrimSpace(a.formVals.deriveQty))
		if err != nil {
			return
		}
		rec, ok := a.tracker.AddFromBlock(a.formVals.deriveBlockID, a.formVals.deriveTier, qty)
		if ok {
			a.statusMsg = "Recorded " + rec.Name
		}
	}
}

// encodeTiers renders tiers one per line for the block form.
func encodeTiers(tiers []model.PricingTier) string {
	var b strings.Builder
	for _, t := range tiers {
		fmt.Fprintf(&b, "%s: %s", t.Range, strconv.FormatFloat(t.Price, 'f', -1, 64))
		if t.Type != "" && t.Type != model.TierFixed {
			b.WriteString(": " + t.Type)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// decodeTiers parses the tier lines back. Blank lines are skipped.
func decodeTiers(s string) ([]model.PricingTier, error) {
	var tiers []model.PricingTier
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("tier %q: want \"range: price\"", line)
		}
		price, ok := ledger.ParsePrice(strings.TrimSpace(parts[1]))
		if !ok {
			return nil, fmt.Errorf("tier %q: bad price", line)
		}
		tier := model.PricingTier{
			Range: strings.TrimSpace(parts[0]),
			Price: price,
			Type:  model.TierFixed,
		}
		if len(parts) == 3 {
			tier.Type = strings.TrimSpace(parts[2])
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}
