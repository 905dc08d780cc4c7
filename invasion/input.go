package invasion

// Key identifies the few keys the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// EventKind distinguishes key transitions from a window close.
type EventKind int

const (
	KeyDown EventKind = iota + 1
	KeyUp
	Quit
)

// Event is a discrete input event translated by a frontend.
type Event struct {
	Kind EventKind
	Key  Key
}

// EventSource yields the input events that arrived since the previous call.
type EventSource interface {
	Poll() []Event
}

// Down is shorthand for a key-down event.
func Down(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

// Up is shorthand for a key-up event.
func Up(k Key) Event {
	return Event{Kind: KeyUp, Key: k}
}
