// Package events carries input intents from the terminal input goroutine
// to the frame loop. Producers push into a fixed-size ring buffer; the
// frame loop consumes once per tick and routes to registered handlers.
package events

// EventType identifies one kind of input intent
type EventType int

const (
	// EventScrollBy adjusts the scroll offset by Delta rows
	// Trigger: arrow keys, j/k, mouse wheel | Consumer: engine
	EventScrollBy EventType = iota

	// EventScrollTo jumps to an absolute scroll offset
	// Trigger: Home/End, g/G | Consumer: engine
	EventScrollTo

	// EventResize reports a new terminal size
	// Trigger: SIGWINCH via tcell | Consumer: engine
	EventResize

	// EventPointerMove reports the pointer cell position
	// Trigger: mouse motion | Consumer: engine (glow placement)
	EventPointerMove

	// EventQuit requests a clean shutdown
	// Trigger: q, Esc, Ctrl-C | Consumer: engine
	EventQuit
)

// InputEvent is one input intent with its parameters. Unused fields are
// zero for event types that do not carry them.
type InputEvent struct {
	Type   EventType
	Delta  int // EventScrollBy
	Offset int // EventScrollTo
	Width  int // EventResize
	Height int // EventResize
	X, Y   int // EventPointerMove
}
