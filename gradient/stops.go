// Package gradient maps page progress onto a smoothly interpolated color.
//
// A gradient is an ordered list of stops anchored along the [0,1] progress
// axis, one per page section. Interpolate locates the pair of stops
// bracketing the current progress and mixes their colors.
package gradient

import (
	"fmt"

	"github.com/WillieTheWhale/blockd-landing/core"
)

// Stop anchors a color at a position along the progress axis
type Stop struct {
	ID     string
	Offset float64
	Color  core.RGB
}

// FallbackColor substitutes for section ids missing from the palette.
// Neutral gray keeps an incomplete palette rendering instead of failing.
var FallbackColor = core.RGB{R: 128, G: 128, B: 128}

// GenerateStops spaces one stop per section id evenly across [0,1], in the
// given order. Stop i of n sits at offset i/(n-1); a single id sits at 0.
// Ids without a palette entry get FallbackColor.
func GenerateStops(ids []string, palette map[string]core.RGB) []Stop {
	if len(ids) == 0 {
		return nil
	}

	stops := make([]Stop, len(ids))
	span := float64(len(ids) - 1)
	for i, id := range ids {
		offset := 0.0
		if span > 0 {
			offset = float64(i) / span
		}
		color, ok := palette[id]
		if !ok {
			color = FallbackColor
		}
		stops[i] = Stop{ID: id, Offset: offset, Color: color}
	}
	return stops
}

// CustomStops validates an explicit stop list for callers that want
// non-uniform spacing. Malformed lists are a configuration error and are
// rejected eagerly rather than tolerated at render time.
func CustomStops(stops []Stop) ([]Stop, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("custom stop list is empty")
	}
	for i, s := range stops {
		if s.Offset < 0 || s.Offset > 1 {
			return nil, fmt.Errorf("stop %d (%q): offset %g outside [0,1]", i, s.ID, s.Offset)
		}
		if i > 0 && s.Offset < stops[i-1].Offset {
			return nil, fmt.Errorf("stop %d (%q): offset %g decreases after %g",
				i, s.ID, s.Offset, stops[i-1].Offset)
		}
	}

	out := make([]Stop, len(stops))
	copy(out, stops)
	return out, nil
}
