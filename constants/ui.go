package constants

import "time"

// Frame scheduling
const (
	// DefaultTickInterval paces state updates and repaints (~30 fps).
	// Raw input events are coalesced into at most one update per tick.
	DefaultTickInterval = 33 * time.Millisecond

	// MaxFPS bounds the configurable frame rate
	MaxFPS = 120
)

// Input event queue sizing (power of two for mask indexing)
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Scroll tracking
const (
	// HysteresisRows is the guard margin in rows the reference line must
	// travel past a section boundary before the active section switches
	HysteresisRows = 2

	// MinProgressDelta suppresses notifications for sub-threshold progress
	// changes (float noise from single-row scrolls on tall pages)
	MinProgressDelta = 0.002

	// ReferenceLine places the section probe at this fraction of the
	// viewport height (0 = top edge, 1 = bottom edge)
	ReferenceLine = 0.5
)
