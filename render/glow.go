package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/engine"
)

// Glow paints a radial halo in the interpolated section color around the
// pointer cell, pulsing slowly on the frame clock. It reads back what is
// already on screen and brightens it additively, so it composes with
// whatever was painted underneath.
type Glow struct {
	Radius    int
	Intensity float64
	Period    time.Duration
}

// NewGlow uses the default halo size and pulse
func NewGlow() *Glow {
	return &Glow{Radius: 7, Intensity: 0.55, Period: 2 * time.Second}
}

func (g *Glow) Render(s tcell.Screen, f engine.Frame) {
	if g.Radius <= 0 || f.Width <= 0 || f.Viewport <= 0 {
		return
	}

	pulse := 1.0
	if g.Period > 0 {
		phase := float64(f.At.UnixMilli()%g.Period.Milliseconds()) / float64(g.Period.Milliseconds())
		pulse = 0.8 + 0.2*math.Sin(2*math.Pi*phase)
	}

	cx, cy := f.Pointer.X, f.Pointer.Y
	tint := f.Color.Color
	for dy := -g.Radius; dy <= g.Radius; dy++ {
		y := cy + dy
		if y < 0 || y >= f.Viewport {
			continue
		}
		for dx := -2 * g.Radius; dx <= 2*g.Radius; dx++ {
			x := cx + dx
			if x < 0 || x >= f.Width {
				continue
			}
			// Terminal cells are ~2x taller than wide
			dist := math.Sqrt(float64(dx*dx)/4 + float64(dy*dy))
			if dist > float64(g.Radius) {
				continue
			}
			falloff := 1 - dist/float64(g.Radius)
			alpha := g.Intensity * falloff * falloff * pulse

			mainc, combc, style, _ := s.GetContent(x, y)
			fg, bg, attrs := style.Decompose()
			lit := FromTcell(bg).Add(tint.Scale(alpha))
			newStyle := tcell.StyleDefault.
				Foreground(ToTcell(FromTcell(fg).Add(tint.Scale(alpha * 0.4)))).
				Background(ToTcell(lit)).
				Attributes(attrs)
			s.SetContent(x, y, mainc, combc, newStyle)
		}
	}
}
