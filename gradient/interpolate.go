package gradient

import "github.com/WillieTheWhale/blockd-landing/core"

// Space selects the color space colors are mixed in
type Space int

const (
	// SpaceRGB mixes channels independently. Boundary and midpoint exact.
	SpaceRGB Space = iota
	// SpaceHCL mixes perceptually via HCL. Endpoints remain exact.
	SpaceHCL
)

// Result describes one interpolation: the blended color, the bracketing
// stop pair, and the post-easing blend factor between them
type Result struct {
	Color core.RGB
	From  Stop
	To    Stop
	Blend float64
}

// Interpolate returns the color at progress along the stop list, mixing
// channel-wise in RGB. Stops must be sorted ascending by offset (as
// produced by GenerateStops or validated by CustomStops). Progress is
// clamped to [0,1]. Runs every frame; allocates nothing.
func Interpolate(progress float64, stops []Stop, easing Ease) Result {
	return interpolate(progress, stops, easing, SpaceRGB)
}

// InterpolateIn is Interpolate with an explicit mixing space
func InterpolateIn(space Space, progress float64, stops []Stop, easing Ease) Result {
	return interpolate(progress, stops, easing, space)
}

func interpolate(progress float64, stops []Stop, easing Ease, space Space) Result {
	if len(stops) == 0 {
		return Result{}
	}

	p := clamp01(progress)
	first := stops[0]
	last := stops[len(stops)-1]

	if p <= first.Offset {
		return Result{Color: first.Color, From: first, To: first, Blend: 0}
	}
	if p >= last.Offset {
		return Result{Color: last.Color, From: last, To: last, Blend: 1}
	}

	for i := 0; i < len(stops)-1; i++ {
		from, to := stops[i], stops[i+1]
		if p < from.Offset || p > to.Offset {
			continue
		}

		span := to.Offset - from.Offset
		blend := 0.0
		if span > 0 {
			blend = (p - from.Offset) / span
		}
		if easing != nil {
			blend = clamp01(easing(blend))
		}

		var mixed core.RGB
		switch space {
		case SpaceHCL:
			mixed = from.Color.BlendHcl(to.Color, blend)
		default:
			mixed = from.Color.Lerp(to.Color, blend)
		}
		return Result{Color: mixed, From: from, To: to, Blend: blend}
	}

	// Unreachable for sorted stops; terminal anchor for safety
	return Result{Color: last.Color, From: last, To: last, Blend: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
