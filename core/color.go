package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Lerp interpolates each channel linearly toward dst by t in [0,1].
// Channels are rounded, so the midpoint of black and white is exactly 128.
func (c RGB) Lerp(dst RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	return RGB{
		R: lerpChannel(c.R, dst.R, t),
		G: lerpChannel(c.G, dst.G, t),
		B: lerpChannel(c.B, dst.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex renders the color as "#RRGGBB"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "#RRGGBB" (and "#RGB") into an RGB
func ParseHex(s string) (RGB, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("failed to parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex parses a hex color literal, panicking on malformed input.
// Only for package-level palette literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// BlendHcl interpolates toward dst by t in HCL space, clamped back to
// displayable RGB. Perceptually smoother than channel-wise Lerp; endpoints
// are exact because t<=0 and t>=1 short-circuit.
func (c RGB) BlendHcl(dst RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	a := colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
	b := colorful.Color{R: float64(dst.R) / 255.0, G: float64(dst.G) / 255.0, B: float64(dst.B) / 255.0}
	mixed := a.BlendHcl(b, t).Clamped()
	r, g, bb := mixed.RGB255()
	return RGB{R: r, G: g, B: bb}
}
