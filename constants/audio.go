package constants

import "time"

// Audio cue tuning
const (
	AudioSampleRate = 44100

	// CueToneHz is the sine frequency of the section-change cue
	CueToneHz = 660

	// CueDuration keeps the cue short enough to not overlap fast scrolling
	CueDuration = 60 * time.Millisecond

	// MinCueGap debounces cues while the user flings through sections
	MinCueGap = 150 * time.Millisecond

	// CueVolume is the gain applied to the raw sine (negative = quieter)
	CueVolume = -2.0
)
