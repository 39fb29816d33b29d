// Package render holds the presentation layer: independent tcell
// renderers that each project one visual effect from the published frame
// snapshot. Renderers read the frame and the screen; they never talk to
// the engine or to each other.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/engine"
)

// Renderer draws one independent visual effect for a frame
type Renderer interface {
	Render(s tcell.Screen, f engine.Frame)
}

// Page background (Tokyo Night)
var RgbBackground = core.RGB{R: 26, G: 27, B: 38}

// Body text
var RgbText = core.RGB{R: 200, G: 200, B: 200}

// Dim hint text
var RgbDim = core.RGB{R: 100, G: 100, B: 100}

// ToTcell converts an RGB to a tcell color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts a tcell color back to an RGB. Non-RGB colors
// (unset cells) map to the page background.
func FromTcell(c tcell.Color) core.RGB {
	if !c.Valid() {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// DrawText writes a string at (x, y), clipped to the screen width
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= w {
			continue
		}
		s.SetContent(cx, y, r, nil, style)
	}
}
