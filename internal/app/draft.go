package app

import "budgie/internal/model"

// BlockDraft is the in-progress form state for creating or editing a
// block. Drafts are not validated beyond the tier floor; categories are
// open strings and prices are accepted as entered.
type BlockDraft struct {
	Name         string
	Description  string
	Category     string
	PricingTiers []model.PricingTier
	IsActive     bool
}

// NewBlockDraft returns a fresh draft with a single empty fixed tier.
func NewBlockDraft(defaultCategory string) BlockDraft {
	return BlockDraft{
		Category:     defaultCategory,
		PricingTiers: []model.PricingTier{{Type: model.TierFixed}},
		IsActive:     true,
	}
}

// DraftFromBlock preloads a draft with an existing block's contents for
// editing. Tiers are copied so edits don't leak into the live block until
// UpdateBlock commits them.
func DraftFromBlock(b model.ExpenseBlock) BlockDraft {
	return BlockDraft{
		Name:         b.Name,
		Description:  b.Description,
		Category:     b.Category,
		PricingTiers: append([]model.PricingTier(nil), b.PricingTiers...),
		IsActive:     b.IsActive,
	}
}

// AddTier appends an empty fixed tier to the draft.
func (d *BlockDraft) AddTier() {
	d.PricingTiers = append(d.PricingTiers, model.PricingTier{Type: model.TierFixed})
}

// RemoveTier deletes the tier at index. The last remaining tier cannot be
// removed; reports whether a tier was removed.
func (d *BlockDraft) RemoveTier(index int) bool {
	if len(d.PricingTiers) <= 1 || index < 0 || index >= len(d.PricingTiers) {
		return false
	}
	d.PricingTiers = append(d.PricingTiers[:index], d.PricingTiers[index+1:]...)
	return true
}
