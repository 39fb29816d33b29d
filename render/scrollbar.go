package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/engine"
)

// Scrollbar draws a vertical track with a proportional thumb in the last
// column, tinted with the interpolated section color
type Scrollbar struct{}

func NewScrollbar() *Scrollbar {
	return &Scrollbar{}
}

func (r *Scrollbar) Render(s tcell.Screen, f engine.Frame) {
	trackH := f.Viewport
	if trackH < 1 || f.Width < 2 {
		return
	}
	x := f.Width - 1
	fg := ToTcell(f.Color.Color)

	if f.ContentHeight <= f.Viewport || trackH < 3 {
		// No scrolling needed or track too small
		for y := 0; y < trackH; y++ {
			s.SetContent(x, y, '│', nil, styleOver(s, x, y).Foreground(fg).Dim(true))
		}
		return
	}

	thumbH := (f.Viewport * trackH) / f.ContentHeight
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := f.ContentHeight - f.Viewport
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (f.Offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		s.SetContent(x, y, ch, nil, styleOver(s, x, y).Foreground(fg))
	}
}
