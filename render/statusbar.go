package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/content"
	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/engine"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

// StatusBar fills the bottom row: brand, active section, scroll position.
// Its background is the interpolated color darkened, so even the chrome
// follows the page gradient.
type StatusBar struct {
	titles map[string]string
}

func NewStatusBar(specs []content.SectionSpec) *StatusBar {
	titles := make(map[string]string, len(specs))
	for _, s := range specs {
		titles[s.ID] = s.Title
	}
	return &StatusBar{titles: titles}
}

func (r *StatusBar) Render(s tcell.Screen, f engine.Frame) {
	y := f.Height - 1
	if y < 0 || f.Width <= 0 {
		return
	}

	bg := ToTcell(f.Color.Color.Scale(0.35))
	style := tcell.StyleDefault.Background(bg).Foreground(ToTcell(core.RGBWhite))
	for x := 0; x < f.Width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}

	left := fmt.Sprintf(" BLOCKD │ %s", r.titles[f.Scroll.ActiveSectionID])
	DrawText(s, 0, y, left, style.Bold(true))

	right := StatusLabel(f)
	DrawText(s, f.Width-len(right)-1, y, right, style)
}

// StatusLabel formats the scroll position for the status bar
func StatusLabel(f engine.Frame) string {
	return fmt.Sprintf("%s · %3.0f%%",
		scroll.ProgressLabel(f.Offset, f.Viewport, f.ContentHeight),
		f.Scroll.OverallProgress*100)
}
