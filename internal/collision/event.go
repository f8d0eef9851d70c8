package collision

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Buttons is the set of held buttons in press order.
type Buttons []Button

// Has returns true if b is held.
func (bs Buttons) Has(b Button) bool {
	for _, held := range bs {
		if held == b {
			return true
		}
	}
	return false
}

// clone returns an independent copy handed to listeners.
func (bs Buttons) clone() Buttons {
	return append(Buttons{}, bs...)
}

// without returns the set with b removed.
func (bs Buttons) without(b Button) Buttons {
	out := bs[:0]
	for _, held := range bs {
		if held != b {
			out = append(out, held)
		}
	}
	return out
}

// Kind is the type of a pointer event.
type Kind uint8

const (
	// KindDown indicates a button press.
	KindDown Kind = iota
	// KindMove indicates pointer motion.
	KindMove
	// KindUp indicates a button release.
	KindUp
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindMove:
		return "move"
	case KindUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a raw pointer event in local coordinates.
type Event struct {
	Kind   Kind
	Button Button
	X      int
	Y      int
}

// Source produces pointer events.
type Source interface {
	// Subscribe registers fn to receive every subsequent event.
	Subscribe(fn func(Event))
}
