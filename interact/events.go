package interact

// EventKind identifies the kind of an input Event
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	Digit
	Backspace
	Confirm
	Cancel
)

var eventKindMapping = map[EventKind]string{
	PointerDown: "PointerDown",
	PointerMove: "PointerMove",
	PointerUp:   "PointerUp",
	Digit:       "Digit",
	Backspace:   "Backspace",
	Confirm:     "Confirm",
	Cancel:      "Cancel",
}

func (k EventKind) String() string {
	return eventKindMapping[k]
}

// Button identifies the pointer button of a pointer event
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Event is one discrete input delivered to Controller.Handle. X and Y are only meaningful for
// pointer events, and Digit is only meaningful for Digit events.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button Button
	Digit  int
}

// Press returns a left-button PointerDown event at the provided position
func Press(x, y int) Event {
	return Event{Kind: PointerDown, X: x, Y: y, Button: ButtonLeft}
}

// Move returns a PointerMove event at the provided position
func Move(x, y int) Event {
	return Event{Kind: PointerMove, X: x, Y: y}
}

// Release returns a left-button PointerUp event at the provided position
func Release(x, y int) Event {
	return Event{Kind: PointerUp, X: x, Y: y, Button: ButtonLeft}
}

// Key returns a Digit event for the provided decimal digit
func Key(digit int) Event {
	return Event{Kind: Digit, Digit: digit}
}
