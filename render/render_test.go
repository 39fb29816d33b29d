package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/content"
	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/engine"
	"github.com/WillieTheWhale/blockd-landing/gradient"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

func simScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func testFrame(w, h int) engine.Frame {
	return engine.Frame{
		Scroll:        scroll.State{ActiveSectionID: "hero", OverallProgress: 0},
		Color:         gradient.Result{Color: core.RGB{R: 200, G: 40, B: 40}},
		Width:         w,
		Height:        h,
		Viewport:      h - 1,
		ContentHeight: (h - 1) * 3,
		At:            time.Unix(50, 0),
	}
}

func bgAt(t *testing.T, s tcell.Screen, x, y int) core.RGB {
	t.Helper()
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return FromTcell(bg)
}

func TestBackgroundTintFadesDownward(t *testing.T) {
	s := simScreen(t, 20, 11)
	f := testFrame(20, 11)

	NewBackground().Render(s, f)

	top := bgAt(t, s, 5, 0)
	bottom := bgAt(t, s, 5, f.Viewport-1)
	if top == bottom {
		t.Error("Expected tint gradient between top and bottom rows")
	}
	// Red tint over the dark base: more red at the top
	if top.R <= bottom.R {
		t.Errorf("Expected stronger tint at the top, got R %d <= %d", top.R, bottom.R)
	}
	if base := RgbBackground; bottom.R < base.R {
		t.Errorf("Expected bottom row to stay above the base red %d, got %d", base.R, bottom.R)
	}
}

func TestGlowBrightensAroundPointer(t *testing.T) {
	s := simScreen(t, 40, 21)
	f := testFrame(40, 21)
	f.Pointer = engine.Point{X: 20, Y: 10}

	NewBackground().Render(s, f)
	before := bgAt(t, s, 20, 10)
	NewGlow().Render(s, f)
	center := bgAt(t, s, 20, 10)
	far := bgAt(t, s, 1, 1)

	if center == before {
		t.Error("Expected glow to change the pointer cell")
	}
	if center.R <= far.R {
		t.Errorf("Expected pointer cell brighter than distant cell, got R %d <= %d", center.R, far.R)
	}
}

func TestSectionsRendersVisibleTitle(t *testing.T) {
	specs := content.Sections()
	h := 21
	s := simScreen(t, 60, h)
	f := testFrame(60, h)

	NewBackground().Render(s, f)
	NewSections(specs).Render(s, f)

	// Title sits two rows below the section top; first section top is 0
	row := screenRow(s, 60, 2)
	if !strings.Contains(row, specs[0].Title) {
		t.Errorf("Expected first section title on row 2, got %q", row)
	}
}

func TestSectionsScrolledOffViewport(t *testing.T) {
	specs := content.Sections()
	h := 21
	s := simScreen(t, 60, h)
	f := testFrame(60, h)
	f.Offset = 5 // first title row (2) is above the viewport now

	NewBackground().Render(s, f)
	NewSections(specs).Render(s, f)

	for y := 0; y < f.Viewport; y++ {
		if strings.Contains(screenRow(s, 60, y), specs[0].Title) {
			// Title may not reappear once scrolled past
			t.Errorf("Expected first title scrolled off, found it on row %d", y)
		}
	}
}

func TestStatusBarShowsActiveSectionAndProgress(t *testing.T) {
	specs := content.Sections()
	h := 11
	s := simScreen(t, 60, h)
	f := testFrame(60, h)
	f.Scroll.OverallProgress = 0.5
	f.Offset = f.ContentHeight/2 - f.Viewport/2

	NewStatusBar(specs).Render(s, f)

	row := screenRow(s, 60, h-1)
	if !strings.Contains(row, "BLOCKD") {
		t.Errorf("Expected brand on status row, got %q", row)
	}
	if !strings.Contains(row, specs[0].Title) {
		t.Errorf("Expected active section title on status row, got %q", row)
	}
	if !strings.Contains(row, "50%") {
		t.Errorf("Expected progress percent on status row, got %q", row)
	}
}

func TestScrollbarThumbMoves(t *testing.T) {
	h := 13
	s := simScreen(t, 30, h)
	f := testFrame(30, h)

	sb := NewScrollbar()
	sb.Render(s, f)
	topThumb := thumbRows(s, 30, f.Viewport)

	f.Offset = f.ContentHeight - f.Viewport // bottom
	sb.Render(s, f)
	bottomThumb := thumbRows(s, 30, f.Viewport)

	if len(topThumb) == 0 || len(bottomThumb) == 0 {
		t.Fatal("Expected a visible thumb at both positions")
	}
	if topThumb[0] >= bottomThumb[0] {
		t.Errorf("Expected thumb to move down with scroll, got %v then %v", topThumb, bottomThumb)
	}
}

func screenRow(s tcell.Screen, w, y int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func thumbRows(s tcell.Screen, w, viewport int) []int {
	var rows []int
	for y := 0; y < viewport; y++ {
		mainc, _, _, _ := s.GetContent(w-1, y)
		if mainc == '█' {
			rows = append(rows, y)
		}
	}
	return rows
}
