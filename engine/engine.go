// Package engine drives the scroll/color pipeline on a fixed frame tick.
//
// Raw input events arrive asynchronously on the event queue; the engine
// drains them once per tick, applies the coalesced intents to the section
// tracker at most once per frame, recomputes the interpolated color when
// the scroll state changed, and publishes an immutable Frame snapshot to
// its subscribers. All dispatch is single-threaded.
package engine

import (
	"sync"
	"time"

	"github.com/WillieTheWhale/blockd-landing/constants"
	"github.com/WillieTheWhale/blockd-landing/events"
	"github.com/WillieTheWhale/blockd-landing/gradient"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

// Point is a terminal cell position
type Point struct {
	X, Y int
}

// Frame is the immutable per-frame snapshot published to consumers.
// Renderers read it independently; none of them talk to each other.
type Frame struct {
	Scroll        scroll.State
	Color         gradient.Result
	Offset        int
	Width         int
	Height        int
	Viewport      int // scrollable rows (Height minus reserved rows)
	ContentHeight int // total page rows
	Pointer       Point
	At            time.Time
}

// Config wires a frame loop together. Tracker, Stops and Queue are
// required; the rest defaults.
type Config struct {
	Tracker *scroll.Tracker
	Stops   []gradient.Stop
	Easing  gradient.Ease
	Space   gradient.Space
	Queue   *events.Queue

	// Layout recomputes section heights for a new viewport height.
	// Optional; without it sections keep their construction heights.
	Layout func(viewportRows int) []int

	// ReservedRows are terminal rows excluded from the scroll viewport
	// (status bar)
	ReservedRows int

	Clock        TimeSource    // nil = system time
	TickInterval time.Duration // 0 = constants.DefaultTickInterval
}

// Engine owns the frame loop state. Step and the subscriber callbacks run
// on a single goroutine; only the event queue is crossed by producers.
type Engine struct {
	tracker *scroll.Tracker
	stops   []gradient.Stop
	easing  gradient.Ease
	space   gradient.Space
	queue   *events.Queue
	router  *events.Router[*Engine]
	layout  func(int) []int
	reserve int

	clock        TimeSource
	tickInterval time.Duration

	// Pending intents, filled by handlers during dispatch and applied
	// once per Step
	pendingDelta  int
	pendingAbs    *int
	pendingResize *Point
	pointerMoved  bool

	width, height int
	pointer       Point
	scrollState   scroll.State
	stateDirty    bool
	repaint       bool
	quit          bool

	frame  Frame
	subs   []frameSub
	nextID int

	unsubTracker func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type frameSub struct {
	id int
	fn func(Frame)
}

// New builds an engine and registers its input handlers
func New(cfg Config) *Engine {
	e := &Engine{
		tracker:      cfg.Tracker,
		stops:        cfg.Stops,
		easing:       cfg.Easing,
		space:        cfg.Space,
		queue:        cfg.Queue,
		layout:       cfg.Layout,
		reserve:      cfg.ReservedRows,
		clock:        cfg.Clock,
		tickInterval: cfg.TickInterval,
		stopChan:     make(chan struct{}),
	}
	if e.clock == nil {
		e.clock = NewSystemTime()
	}
	if e.tickInterval <= 0 {
		e.tickInterval = constants.DefaultTickInterval
	}

	e.scrollState = e.tracker.State()
	e.unsubTracker = e.tracker.Subscribe(func(s scroll.State) {
		e.scrollState = s
		e.stateDirty = true
	})

	e.router = events.NewRouter[*Engine](e.queue)
	e.router.Register(&scrollIntents{})
	e.router.Register(&layoutIntents{})
	e.router.Register(&pointerIntents{})
	e.router.Register(&lifecycleIntents{})
	return e
}

// Subscribe registers a frame listener and returns its cancel function.
// Listeners run synchronously on the frame goroutine in registration
// order; no ordering is guaranteed between independent consumers.
func (e *Engine) Subscribe(fn func(Frame)) (cancel func()) {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, frameSub{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Frame returns the last published snapshot
func (e *Engine) Frame() Frame { return e.frame }

// Quitting reports whether a quit intent has been processed
func (e *Engine) Quitting() bool { return e.quit }

// Step runs one frame: drain the queue, apply coalesced intents to the
// tracker at most once, recompute the color on state change, publish
func (e *Engine) Step() {
	e.router.DispatchAll(e)
	e.applyPending()

	if e.stateDirty {
		e.frame.Color = gradient.InterpolateIn(e.space, e.scrollState.OverallProgress, e.stops, e.easing)
		e.repaint = true
	}
	if !e.repaint {
		return
	}

	e.frame.Scroll = e.scrollState
	e.frame.Offset = e.tracker.Offset()
	e.frame.Width = e.width
	e.frame.Height = e.height
	e.frame.Viewport = e.tracker.ViewportHeight()
	e.frame.ContentHeight = e.tracker.ContentHeight()
	e.frame.Pointer = e.pointer
	e.frame.At = e.clock.Now()
	e.stateDirty = false
	e.repaint = false

	snapshot := e.frame
	for _, s := range e.subs {
		s.fn(snapshot)
	}
}

// applyPending turns the coalesced intents into at most one resize and
// one scroll update on the tracker
func (e *Engine) applyPending() {
	if r := e.pendingResize; r != nil {
		e.width, e.height = r.X, r.Y
		viewport := e.height - e.reserve
		if e.layout != nil && viewport > 0 {
			// Layout funcs are total over positive viewports, and the
			// section count is fixed, so this cannot fail here
			_ = e.tracker.SetHeights(e.layout(viewport))
		}
		e.tracker.SetViewport(viewport)
		e.pendingResize = nil
		e.repaint = true
	}
	if a := e.pendingAbs; a != nil {
		e.tracker.ScrollTo(*a)
		e.pendingAbs = nil
	}
	if e.pendingDelta != 0 {
		e.tracker.ScrollBy(e.pendingDelta)
		e.pendingDelta = 0
	}
	if e.pointerMoved {
		e.pointerMoved = false
		e.repaint = true
	}
}

// Prime publishes the current state unconditionally (first paint)
func (e *Engine) Prime() {
	e.repaint = true
	e.stateDirty = true
	e.Step()
}

// Run drives Step on the tick interval until a quit intent or Stop.
// Blocks the calling goroutine.
func (e *Engine) Run() {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	e.Prime()
	for {
		select {
		case <-e.stopChan:
			return
		case <-ticker.C:
			e.Step()
			if e.quit {
				return
			}
		}
	}
}

// Start runs the loop on its own goroutine
func (e *Engine) Start() {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.Run()
	}()
}

// Stop ends the loop deterministically: after Stop returns no subscriber
// callback will run again. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopChan)
	})
	e.wg.Wait()
	e.unsubTracker()
}

// --- Input intent handlers ---

type scrollIntents struct{}

func (scrollIntents) EventTypes() []events.EventType {
	return []events.EventType{events.EventScrollBy, events.EventScrollTo}
}

func (scrollIntents) HandleEvent(e *Engine, ev events.InputEvent) {
	switch ev.Type {
	case events.EventScrollBy:
		e.pendingDelta += ev.Delta
	case events.EventScrollTo:
		off := ev.Offset
		e.pendingAbs = &off
		e.pendingDelta = 0
	}
}

type layoutIntents struct{}

func (layoutIntents) EventTypes() []events.EventType {
	return []events.EventType{events.EventResize}
}

func (layoutIntents) HandleEvent(e *Engine, ev events.InputEvent) {
	e.pendingResize = &Point{X: ev.Width, Y: ev.Height}
}

type pointerIntents struct{}

func (pointerIntents) EventTypes() []events.EventType {
	return []events.EventType{events.EventPointerMove}
}

func (pointerIntents) HandleEvent(e *Engine, ev events.InputEvent) {
	if e.pointer.X != ev.X || e.pointer.Y != ev.Y {
		e.pointer = Point{X: ev.X, Y: ev.Y}
		e.pointerMoved = true
	}
}

type lifecycleIntents struct{}

func (lifecycleIntents) EventTypes() []events.EventType {
	return []events.EventType{events.EventQuit}
}

func (lifecycleIntents) HandleEvent(e *Engine, _ events.InputEvent) {
	e.quit = true
}
