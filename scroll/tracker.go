package scroll

import (
	"fmt"
	"math"

	"github.com/WillieTheWhale/blockd-landing/constants"
)

// Config supplies the static section layout and tuning knobs. Sections
// and their order are fixed for the tracker's lifetime; only heights and
// the viewport change (resize).
type Config struct {
	Sections []Section
	Heights  []int // rows per section, parallel to Sections

	// ReferenceLine is the probe position as a fraction of the viewport
	// height. Zero means the default (viewport center).
	ReferenceLine float64

	// GuardRows is the hysteresis margin. Zero means the default.
	GuardRows int

	// MinProgressDelta suppresses sub-threshold progress notifications.
	// Zero means the default.
	MinProgressDelta float64
}

// Tracker derives the active section and overall progress from the
// scroll offset. Not safe for concurrent use: it is owned by the frame
// loop, which is the only writer and the only dispatcher.
type Tracker struct {
	sections []Section
	heights  []int
	tops     []int
	total    int

	viewportH int
	offset    int

	refLine  float64
	guard    int
	minDelta float64

	state  State
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(State)
}

// NewTracker validates the configuration and returns a tracker reporting
// the first section at progress 0
func NewTracker(cfg Config) (*Tracker, error) {
	if len(cfg.Sections) == 0 {
		return nil, fmt.Errorf("tracker needs at least one section")
	}
	if len(cfg.Heights) != len(cfg.Sections) {
		return nil, fmt.Errorf("got %d heights for %d sections", len(cfg.Heights), len(cfg.Sections))
	}
	for i, h := range cfg.Heights {
		if h <= 0 {
			return nil, fmt.Errorf("section %q: height %d is not positive", cfg.Sections[i].ID, h)
		}
	}

	t := &Tracker{
		sections: append([]Section(nil), cfg.Sections...),
		refLine:  cfg.ReferenceLine,
		guard:    cfg.GuardRows,
		minDelta: cfg.MinProgressDelta,
	}
	if t.refLine <= 0 || t.refLine > 1 {
		t.refLine = constants.ReferenceLine
	}
	if t.guard <= 0 {
		t.guard = constants.HysteresisRows
	}
	if t.minDelta <= 0 {
		t.minDelta = constants.MinProgressDelta
	}
	t.layout(cfg.Heights)
	t.state = State{ActiveSectionID: t.sections[0].ID, OverallProgress: 0}
	return t, nil
}

func (t *Tracker) layout(heights []int) {
	t.heights = append(t.heights[:0], heights...)
	t.tops = append(t.tops[:0], make([]int, len(heights))...)
	top := 0
	for i, h := range heights {
		t.tops[i] = top
		top += h
	}
	t.total = top
}

// SetHeights replaces the section heights after a content re-layout.
// The offset is reclamped and the state recomputed.
func (t *Tracker) SetHeights(heights []int) error {
	if len(heights) != len(t.sections) {
		return fmt.Errorf("got %d heights for %d sections", len(heights), len(t.sections))
	}
	for i, h := range heights {
		if h <= 0 {
			return fmt.Errorf("section %q: height %d is not positive", t.sections[i].ID, h)
		}
	}
	t.layout(heights)
	t.offset = ClampScroll(t.offset, t.viewportH, t.total)
	t.recompute()
	return nil
}

// SetViewport updates the viewport height. A non-positive height means
// the layout cannot be measured (detached container); the last known
// state is retained until a measurable viewport arrives.
func (t *Tracker) SetViewport(rows int) {
	if rows <= 0 {
		t.viewportH = 0
		return
	}
	t.viewportH = rows
	t.offset = ClampScroll(t.offset, t.viewportH, t.total)
	t.recompute()
}

// ScrollTo moves to an absolute offset, clamped to the valid range
func (t *Tracker) ScrollTo(offset int) {
	t.offset = ClampScroll(offset, t.viewportH, t.total)
	t.recompute()
}

// ScrollBy moves by a row delta, clamped to the valid range
func (t *Tracker) ScrollBy(delta int) {
	t.ScrollTo(t.offset + delta)
}

// ScrollToSection jumps so the section's top sits at the viewport top
func (t *Tracker) ScrollToSection(id string) {
	for i, s := range t.sections {
		if s.ID == id {
			t.ScrollTo(t.tops[i])
			return
		}
	}
}

// State returns the last published snapshot
func (t *Tracker) State() State { return t.state }

// Offset returns the current scroll offset in rows
func (t *Tracker) Offset() int { return t.offset }

// ContentHeight returns the total page height in rows
func (t *Tracker) ContentHeight() int { return t.total }

// ViewportHeight returns the last measured viewport height
func (t *Tracker) ViewportHeight() int { return t.viewportH }

// Sections returns the configured sections in order
func (t *Tracker) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

// SectionBounds returns each section's row extent in order
func (t *Tracker) SectionBounds() []Bounds {
	out := make([]Bounds, len(t.sections))
	for i := range t.sections {
		out[i] = Bounds{Top: t.tops[i], Height: t.heights[i]}
	}
	return out
}

// Subscribe registers a state listener and returns its cancel function.
// Listeners run synchronously in registration order on each qualifying
// change; they must not block. Cancel is idempotent and takes effect
// before the next dispatch.
func (t *Tracker) Subscribe(fn func(State)) (cancel func()) {
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// recompute derives the next state from the current offset and layout,
// publishing only on a qualifying change
func (t *Tracker) recompute() {
	if t.viewportH <= 0 {
		return // layout unmeasured, retain last state
	}

	maxScroll := t.total - t.viewportH
	if maxScroll <= 0 {
		// Single-screen page: nothing to scroll through
		next := State{ActiveSectionID: t.sections[0].ID, OverallProgress: 0}
		if t.qualifies(next) {
			t.state = next
			for _, s := range t.subs {
				s.fn(next)
			}
		}
		return
	}

	progress := float64(t.offset) / float64(maxScroll)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	next := State{
		ActiveSectionID: t.nextActive(),
		OverallProgress: progress,
	}
	if !t.qualifies(next) {
		return
	}
	t.state = next
	for _, s := range t.subs {
		s.fn(next)
	}
}

// nextActive applies hysteresis: the candidate section under the
// reference line replaces the current one only once the line has
// penetrated the candidate by at least the guard margin
func (t *Tracker) nextActive() string {
	refRow := t.offset + int(t.refLine*float64(t.viewportH-1))

	curIdx := t.indexOf(t.state.ActiveSectionID)
	candIdx := t.sectionAt(refRow)
	if candIdx == curIdx || curIdx < 0 {
		return t.sections[candIdx].ID
	}

	if candIdx > curIdx {
		// Scrolling down: depth past the candidate's top boundary
		if refRow-t.tops[candIdx] < t.guard {
			return t.sections[curIdx].ID
		}
	} else {
		// Scrolling up: depth past the candidate's bottom boundary
		bottom := t.tops[candIdx] + t.heights[candIdx] - 1
		if bottom-refRow < t.guard {
			return t.sections[curIdx].ID
		}
	}
	return t.sections[candIdx].ID
}

func (t *Tracker) indexOf(id string) int {
	for i, s := range t.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) sectionAt(row int) int {
	for i := range t.sections {
		if row < t.tops[i]+t.heights[i] {
			return i
		}
	}
	return len(t.sections) - 1
}

// qualifies decides whether a derived state is a notifiable change:
// a different active section, a progress move past the minimum delta,
// or an exact arrival at either progress endpoint
func (t *Tracker) qualifies(next State) bool {
	if next.ActiveSectionID != t.state.ActiveSectionID {
		return true
	}
	if next.OverallProgress == t.state.OverallProgress {
		return false
	}
	if next.OverallProgress == 0 || next.OverallProgress == 1 {
		return true
	}
	return math.Abs(next.OverallProgress-t.state.OverallProgress) >= t.minDelta
}
