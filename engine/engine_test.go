package engine

import (
	"testing"
	"time"

	"github.com/WillieTheWhale/blockd-landing/core"
	"github.com/WillieTheWhale/blockd-landing/events"
	"github.com/WillieTheWhale/blockd-landing/gradient"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

func testEngine(t *testing.T) (*Engine, *events.Queue, *MockTimeSource) {
	t.Helper()

	sections := []scroll.Section{
		{ID: "hero", OrderIndex: 0, Color: core.RGBBlack},
		{ID: "contact", OrderIndex: 1, Color: core.RGBWhite},
	}
	tracker, err := scroll.NewTracker(scroll.Config{
		Sections: sections,
		Heights:  []int{40, 40},
	})
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	tracker.SetViewport(20)

	stops := gradient.GenerateStops(
		[]string{"hero", "contact"},
		map[string]core.RGB{"hero": core.RGBBlack, "contact": core.RGBWhite},
	)

	clock := NewMockTimeSource(time.Unix(1000, 0))
	queue := events.NewQueue()
	e := New(Config{
		Tracker: tracker,
		Stops:   stops,
		Queue:   queue,
		Clock:   clock,
	})
	return e, queue, clock
}

func TestStepCoalescesRapidScrolling(t *testing.T) {
	e, queue, _ := testEngine(t)

	var frames int
	cancel := e.Subscribe(func(Frame) { frames++ })
	defer cancel()

	for i := 0; i < 100; i++ {
		queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 1})
	}
	e.Step()

	if frames != 1 {
		t.Errorf("Expected 100 raw events to coalesce into 1 frame, got %d", frames)
	}
	if got := e.Frame().Offset; got != 60 {
		t.Errorf("Expected accumulated offset 60 (clamped), got %d", got)
	}
	if got := e.Frame().Scroll.OverallProgress; got != 1 {
		t.Errorf("Expected progress 1 at bottom, got %g", got)
	}
}

func TestStepNoChangeNoPublish(t *testing.T) {
	e, queue, _ := testEngine(t)
	e.Prime()

	var frames int
	cancel := e.Subscribe(func(Frame) { frames++ })
	defer cancel()

	e.Step() // empty queue
	queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 0})
	e.Step()

	if frames != 0 {
		t.Errorf("Expected no frames without a state change, got %d", frames)
	}
}

func TestFrameColorTracksProgress(t *testing.T) {
	e, queue, _ := testEngine(t)

	// Offset 30 of 60 scrollable rows = progress 0.5 = midpoint gray
	queue.Push(events.InputEvent{Type: events.EventScrollTo, Offset: 30})
	e.Step()

	want := core.RGB{R: 128, G: 128, B: 128}
	if got := e.Frame().Color.Color; got != want {
		t.Errorf("Expected midpoint color %s, got %s", want.Hex(), got.Hex())
	}
}

func TestFrameTimestampFromClock(t *testing.T) {
	e, queue, clock := testEngine(t)

	clock.Advance(5 * time.Second)
	queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 10})
	e.Step()

	if got := e.Frame().At; !got.Equal(time.Unix(1005, 0)) {
		t.Errorf("Expected frame timestamp from injected clock, got %v", got)
	}
}

func TestResizeRelayout(t *testing.T) {
	sections := []scroll.Section{{ID: "a"}, {ID: "b"}}
	tracker, err := scroll.NewTracker(scroll.Config{
		Sections: sections,
		Heights:  []int{40, 40},
	})
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	tracker.SetViewport(20)

	queue := events.NewQueue()
	e := New(Config{
		Tracker:      tracker,
		Stops:        gradient.GenerateStops([]string{"a", "b"}, nil),
		Queue:        queue,
		Clock:        NewMockTimeSource(time.Unix(0, 0)),
		ReservedRows: 1,
		Layout: func(viewport int) []int {
			return []int{viewport, viewport}
		},
	})

	var frames int
	cancel := e.Subscribe(func(Frame) { frames++ })
	defer cancel()

	queue.Push(events.InputEvent{Type: events.EventResize, Width: 80, Height: 31})
	e.Step()

	if frames != 1 {
		t.Fatalf("Expected a frame after resize, got %d", frames)
	}
	f := e.Frame()
	if f.Width != 80 || f.Height != 31 {
		t.Errorf("Expected frame size 80x31, got %dx%d", f.Width, f.Height)
	}
	if got := tracker.ViewportHeight(); got != 30 {
		t.Errorf("Expected viewport 30 after reserving the status row, got %d", got)
	}
	if got := tracker.ContentHeight(); got != 60 {
		t.Errorf("Expected relayout to 60 content rows, got %d", got)
	}
}

func TestPointerMovePublishesWithoutScrollChange(t *testing.T) {
	e, queue, _ := testEngine(t)
	e.Prime()

	var last Frame
	var frames int
	cancel := e.Subscribe(func(f Frame) { frames++; last = f })
	defer cancel()

	queue.Push(events.InputEvent{Type: events.EventPointerMove, X: 12, Y: 7})
	e.Step()

	if frames != 1 {
		t.Fatalf("Expected pointer move to publish a frame, got %d", frames)
	}
	if last.Pointer != (Point{X: 12, Y: 7}) {
		t.Errorf("Expected pointer (12,7), got %+v", last.Pointer)
	}

	// Same position again is not a change
	queue.Push(events.InputEvent{Type: events.EventPointerMove, X: 12, Y: 7})
	e.Step()
	if frames != 1 {
		t.Errorf("Expected no frame for unchanged pointer, got %d", frames)
	}
}

func TestQuitIntent(t *testing.T) {
	e, queue, _ := testEngine(t)
	queue.Push(events.InputEvent{Type: events.EventQuit})
	e.Step()
	if !e.Quitting() {
		t.Error("Expected quit intent to mark the engine quitting")
	}
}

func TestSubscribeCancel(t *testing.T) {
	e, queue, _ := testEngine(t)

	var calls int
	cancel := e.Subscribe(func(Frame) { calls++ })

	queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 5})
	e.Step()
	cancel()
	queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 5})
	e.Step()

	if calls != 1 {
		t.Errorf("Expected 1 call before cancel, got %d", calls)
	}
}

func TestStartStopDeterministic(t *testing.T) {
	e, _, _ := testEngine(t)
	e.Start()
	e.Stop()
	e.Stop() // idempotent

	var calls int
	e.Subscribe(func(Frame) { calls++ })
	time.Sleep(50 * time.Millisecond)
	if calls != 0 {
		t.Errorf("Expected no callbacks after Stop, got %d", calls)
	}
}

func TestPrimePublishesInitialFrame(t *testing.T) {
	e, _, _ := testEngine(t)

	var frames int
	cancel := e.Subscribe(func(Frame) { frames++ })
	defer cancel()

	e.Prime()
	if frames != 1 {
		t.Errorf("Expected Prime to publish the initial frame, got %d", frames)
	}
	if got := e.Frame().Scroll.ActiveSectionID; got != "hero" {
		t.Errorf("Expected initial active section hero, got %q", got)
	}
}
