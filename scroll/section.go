// Package scroll derives the active page section and overall scroll
// progress from a scroll offset over a stack of fixed-height sections.
//
// The Tracker owns its state exclusively and is driven from the frame
// loop; it publishes immutable State snapshots to subscribers and only
// notifies on qualifying changes.
package scroll

import "github.com/WillieTheWhale/blockd-landing/core"

// Section is one logical region of the page with an identity color
type Section struct {
	ID         string
	OrderIndex int
	Color      core.RGB
}

// State is the published scroll snapshot. Values, never pointers, so a
// delivered snapshot cannot be mutated under a consumer.
type State struct {
	ActiveSectionID string
	OverallProgress float64
}

// Bounds is one section's row extent within the page content
type Bounds struct {
	Top    int
	Height int
}
