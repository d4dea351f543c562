package touchui

import "image"

// EventKind tags a normalized device event.
type EventKind byte

const (
	EventQuit = EventKind(iota)
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventKeyDown
	EventKeyUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventMouseDown:
		return "mousedown"
	case EventMouseUp:
		return "mouseup"
	case EventMouseMove:
		return "mousemove"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	}
	return "unknown"
}

// Event is one normalized device event delivered by a backend. Which fields
// are meaningful depends on Kind: Button and Pos for mouse down/up, Pos and
// Rel for motion, Key and Rune for key down, Key for key up.
type Event struct {
	Kind   EventKind
	Button int
	Pos    image.Point
	Rel    image.Point
	Key    Key
	Rune   rune
}

// Backend abstracts the display and input device layer. Implementations must
// deliver events in order and make Poll non-blocking or bounded; the event
// loop calls it every tick.
type Backend interface {
	// Init creates the display with the given title and logical size.
	Init(title string, size image.Point) error

	// Poll returns the batch of events since the previous call, possibly
	// empty, in delivery order.
	Poll() []Event

	// MousePos returns the current pointer position in window coordinates.
	MousePos() image.Point

	// Present shows the composed frame.
	Present(frame *Surface) error

	// Close tears down the display. Safe to call more than once.
	Close() error
}
