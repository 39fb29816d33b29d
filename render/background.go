package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/engine"
)

// Background retints the page background toward the interpolated section
// color, strongest at the top of the viewport and fading downward, the
// terminal stand-in for the page's hero gradient.
type Background struct {
	Base     core.RGB
	TopAlpha float64
	LowAlpha float64
}

// NewBackground uses the default page background and tint strengths
func NewBackground() *Background {
	return &Background{Base: RgbBackground, TopAlpha: 0.35, LowAlpha: 0.06}
}

func (b *Background) Render(s tcell.Screen, f engine.Frame) {
	w, h := f.Width, f.Height
	rows := f.Viewport
	if rows <= 0 || w <= 0 {
		return
	}

	tint := f.Color.Color
	for y := 0; y < rows && y < h; y++ {
		frac := 0.0
		if rows > 1 {
			frac = float64(y) / float64(rows-1)
		}
		alpha := b.TopAlpha + (b.LowAlpha-b.TopAlpha)*frac
		bg := b.Base.Blend(tint, alpha)
		style := tcell.StyleDefault.Background(ToTcell(bg)).Foreground(ToTcell(RgbText))
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
