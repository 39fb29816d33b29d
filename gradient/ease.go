package gradient

// Ease remaps a blend factor on [0,1] to [0,1]. A nil Ease means linear.
type Ease func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero velocity
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to zero velocity
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOutCubic accelerates through the first half, decelerates through
// the second
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// ByName resolves a configured easing name, defaulting to linear for
// unknown names
func ByName(name string) Ease {
	switch name {
	case "quad-in":
		return EaseInQuad
	case "quad-out":
		return EaseOutQuad
	case "cubic":
		return EaseInOutCubic
	default:
		return Linear
	}
}
