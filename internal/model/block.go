// Package model defines domain types for budgie blocks, expenses, and reports.
package model

import "time"

// Tier pricing types. Advisory labels only; every tier is billed as
// price × quantity regardless of type.
const (
	TierFixed   = "fixed"
	TierPerItem = "per_item"
	TierPackage = "package"
)

// PricingTier is one price point within an expense block.
type PricingTier struct {
	Range string  `json:"range"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

// ExpenseBlock is a reusable service template with tiered pricing.
type ExpenseBlock struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	PricingTiers []PricingTier `json:"pricingTiers"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Categories is the suggestion list offered in forms. Category fields are
// open strings; any value is accepted and persisted.
var Categories = []string{
	"Video Production",
	"Post-Production",
	"Creative Services",
	"Marketing & Advertising",
	"Equipment Rental",
	"Software & Licenses",
	"Talent & Crew",
	"Location & Studio",
	"Travel & Transportation",
	"Client Entertainment",
}

// DefaultCategory is used to prefill drafts and custom expense forms.
const DefaultCategory = "Creative Services"

// DefaultBlocks returns the four seeded blocks used when no block collection
// has been persisted yet.
func DefaultBlocks(now time.Time) []ExpenseBlock {
	return []ExpenseBlock{
		{
			ID:          1,
			Name:        "Video Shooting",
			Description: "Professional video shooting service",
			Category:    "Video Production",
			PricingTiers: []PricingTier{
				{Range: "1-3 videos", Price: 400, Type: TierFixed},
				{Range: "4+ videos each", Price: 300, Type: TierPerItem},
			},
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:          2,
			Name:        "Video Editing",
			Description: "Professional video editing and post-production",
			Category:    "Post-Production",
			PricingTiers: []PricingTier{
				{Range: "1-3 videos", Price: 400, Type: TierFixed},
				{Range: "4+ videos each", Price: 300, Type: TierPerItem},
			},
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:          3,
			Name:        "Social Media Post",
			Description: "Social media content creation",
			Category:    "Marketing & Advertising",
			PricingTiers: []PricingTier{
				{Range: "1-3 posts", Price: 70, Type: TierFixed},
				{Range: "4+ posts each", Price: 50, Type: TierPerItem},
			},
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:          4,
			Name:        "Branding Package",
			Description: "Complete branding solution",
			Category:    "Creative Services",
			PricingTiers: []PricingTier{
				{Range: "Basic Package", Price: 2500, Type: TierPackage},
				{Range: "Standard Package", Price: 3500, Type: TierPackage},
				{Range: "Premium Package", Price: 7500, Type: TierPackage},
			},
			IsActive:  true,
			CreatedAt: now,
		},
	}
}
