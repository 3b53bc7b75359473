package tilepaste

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventKeyPress EventType = iota // a key went down this frame
	EventClose                     // the window was asked to close
)

// Key is a logical key the frame loop reacts to. Backends map their own
// key codes onto these; anything unmapped is never delivered.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyQuit:  "quit",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey returns the key with the given name, as written by Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyNone {
			return Key(k), true
		}
	}
	return KeyNone, false
}

// keyDeltas maps directional keys to a one-cell move.
var keyDeltas = [keyCount]Point{
	KeyUp:    {0, -1},
	KeyDown:  {0, 1},
	KeyLeft:  {-1, 0},
	KeyRight: {1, 0},
}

// Delta returns the one-cell move bound to k. ok is false for keys that do
// not move the player.
func (k Key) Delta() (dx, dy int, ok bool) {
	if k >= keyCount {
		return 0, 0, false
	}
	d := keyDeltas[k]
	return d.X, d.Y, d != (Point{})
}

// Event is one input event delivered to Game.Frame.
type Event struct {
	Type EventType
	Key  Key
}

// KeyPress returns a key-press event for k.
func KeyPress(k Key) Event {
	return Event{Type: EventKeyPress, Key: k}
}

// CloseEvent returns a window-close event.
func CloseEvent() Event {
	return Event{Type: EventClose}
}
