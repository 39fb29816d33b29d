package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/content"
	"github.com/WillieTheWhale/blockd-landing/engine"
)

// Sections draws the visible slice of the landing copy. Titles carry
// their section's identity color; the active section's title is bold.
type Sections struct {
	specs []content.SectionSpec
}

func NewSections(specs []content.SectionSpec) *Sections {
	return &Sections{specs: specs}
}

func (r *Sections) Render(s tcell.Screen, f engine.Frame) {
	if f.Viewport <= 0 || f.Width <= 0 {
		return
	}

	heights := content.Layout(r.specs, f.Viewport)
	top := 0
	for i, spec := range r.specs {
		r.renderSection(s, f, spec, top)
		top += heights[i]
	}
}

// renderSection draws one section's rows that intersect the viewport.
// Within a section: two margin rows, the title, a blank row, the body.
func (r *Sections) renderSection(s tcell.Screen, f engine.Frame, spec content.SectionSpec, top int) {
	titleRow := top + 2
	bodyTop := top + 4

	width := 0
	for _, line := range spec.Body {
		if len(line) > width {
			width = len(line)
		}
	}
	bodyX := (f.Width - width) / 2
	if bodyX < 1 {
		bodyX = 1
	}

	if y := titleRow - f.Offset; y >= 0 && y < f.Viewport {
		titleX := (f.Width - len(spec.Title)) / 2
		if titleX < 1 {
			titleX = 1
		}
		style := styleOver(s, titleX, y).
			Foreground(ToTcell(spec.Color)).
			Bold(spec.ID == f.Scroll.ActiveSectionID)
		DrawText(s, titleX, y, spec.Title, style)
	}

	for li, line := range spec.Body {
		y := bodyTop + li - f.Offset
		if y < 0 || y >= f.Viewport {
			continue
		}
		DrawText(s, bodyX, y, line, styleOver(s, bodyX, y).Foreground(ToTcell(RgbText)))
	}
}

// styleOver keeps the background the previous renderer painted at (x, y)
func styleOver(s tcell.Screen, x, y int) tcell.Style {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return tcell.StyleDefault.Background(bg)
}
