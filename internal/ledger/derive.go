package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"budgie/internal/model"
)

// Derive produces one expense record from a block+tier+quantity selection.
// The caller is responsible for rejecting quantity < 1; Derive assumes a
// valid quantity and performs no clamping. The record embeds a copy of the
// tier so later block edits never change it.
func Derive(id int64, block model.ExpenseBlock, tier model.PricingTier, quantity int, now time.Time) model.ExpenseRecord {
	tierCopy := tier
	return model.ExpenseRecord{
		ID:       id,
		Name:     fmt.Sprintf("%s - %s (x%d)", block.Name, tier.Range, quantity),
		Amount:   tier.Price * float64(quantity),
		Category: block.Category,
		Date:     now.Format("2006-01-02"),
		BlockID:  block.ID,
		Tier:     &tierCopy,
		Quantity: quantity,
	}
}

// ParseCustom builds a custom expense record from raw form values. An empty
// name or an amount that does not parse as a number makes the entry a no-op
// and ok is false. No provenance fields are attached.
func ParseCustom(id int64, name, amount, category, date string) (model.ExpenseRecord, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ExpenseRecord{}, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return model.ExpenseRecord{}, false
	}
	return model.ExpenseRecord{
		ID:       id,
		Name:     name,
		Amount:   value,
		Category: category,
		Date:     date,
	}, true
}

// ParsePrice validates a quick-edit price string: it must parse as a
// non-negative number. Invalid input is discarded by the caller.
func ParsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}
