// Package content holds the static landing page copy: ordered sections,
// their body lines, and the per-section identity colors the gradient
// engine interpolates between. Everything here is read-only after start.
package content

import "github.com/WillieTheWhale/blockd-landing/core"

// SectionSpec couples one landing section's copy with its identity color
type SectionSpec struct {
	ID    string
	Title string
	Body  []string
	Color core.RGB
}

// Section identity colors, deep-to-bright across the page
var (
	colorHero     = core.MustParseHex("#1A56DB") // Blockd blue
	colorFeatures = core.MustParseHex("#7C3AED") // violet
	colorStats    = core.MustParseHex("#DB2777") // magenta
	colorWorkflow = core.MustParseHex("#EA580C") // ember
	colorPricing  = core.MustParseHex("#0D9488") // teal
	colorContact  = core.MustParseHex("#16A34A") // green
)

// Sections returns the landing page in display order
func Sections() []SectionSpec {
	return []SectionSpec{
		{
			ID:    "hero",
			Title: "BLOCKD",
			Body: []string{
				"Ship focus. Block the noise.",
				"",
				"Blockd turns your busiest hours into protected time.",
				"One rule set, every device, zero willpower required.",
				"",
				"Scroll to see how it works.",
			},
			Color: colorHero,
		},
		{
			ID:    "features",
			Title: "FEATURES",
			Body: []string{
				"Smart schedules   Rules that follow your calendar,",
				"                  not the other way around.",
				"",
				"Deep work mode    One keystroke seals off every",
				"                  feed, ping, and inbox.",
				"",
				"Team sync         Shared focus windows for the",
				"                  whole team, no meeting required.",
			},
			Color: colorFeatures,
		},
		{
			ID:    "stats",
			Title: "BY THE NUMBERS",
			Body: []string{
				"12,400+   teams running weekly focus windows",
				"   3.2h   average deep work reclaimed per day",
				"    94%   report fewer context switches",
				"     41   countries, one quiet workday",
			},
			Color: colorStats,
		},
		{
			ID:    "workflow",
			Title: "HOW IT WORKS",
			Body: []string{
				"1. Pick the hours that matter.",
				"2. Choose what gets through: people, not platforms.",
				"3. Blockd fences everything else out.",
				"4. Review your week, tighten the rules, repeat.",
			},
			Color: colorWorkflow,
		},
		{
			ID:    "pricing",
			Title: "PRICING",
			Body: []string{
				"Solo      Free       One device, three rules",
				"Pro       $6/mo      Unlimited rules, calendar sync",
				"Team      $9/seat    Shared windows, admin console",
				"",
				"Every paid plan starts with a 30-day trial.",
			},
			Color: colorPricing,
		},
		{
			ID:    "contact",
			Title: "GET BLOCKD",
			Body: []string{
				"hello@blockd.app",
				"",
				"Press q to leave the page.",
			},
			Color: colorContact,
		},
	}
}

// OrderedIDs returns the section ids in display order
func OrderedIDs(specs []SectionSpec) []string {
	ids := make([]string, len(specs))
	for i, s := range specs {
		ids[i] = s.ID
	}
	return ids
}

// Palette returns the id-to-color lookup for the gradient generator
func Palette(specs []SectionSpec) map[string]core.RGB {
	palette := make(map[string]core.RGB, len(specs))
	for _, s := range specs {
		palette[s.ID] = s.Color
	}
	return palette
}
