package terminal

import (
	"github.com/dshills/gridedit/internal/collision"
	"github.com/gdamore/tcell/v2"
)

// buttonMasks maps tcell buttons to pointer buttons in press order.
var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button collision.Button
}{
	{tcell.ButtonPrimary, collision.ButtonLeft},
	{tcell.ButtonMiddle, collision.ButtonMiddle},
	{tcell.ButtonSecondary, collision.ButtonRight},
}

// PointerTranslator converts tcell mouse events into pointer events.
// It implements collision.Source.
type PointerTranslator struct {
	subscribers []func(collision.Event)

	known   bool
	x, y    int
	pressed tcell.ButtonMask
}

// NewPointerTranslator creates a translator with no subscribers.
func NewPointerTranslator() *PointerTranslator {
	return &PointerTranslator{}
}

// Subscribe registers fn to receive every translated event.
func (p *PointerTranslator) Subscribe(fn func(collision.Event)) {
	p.subscribers = append(p.subscribers, fn)
}

// Translate emits the events implied by ev: a move when the position
// changed, then a down for every newly pressed button, then an up for every
// released button. Wheel events are ignored.
func (p *PointerTranslator) Translate(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mask := ev.Buttons()

	if !p.known || x != p.x || y != p.y {
		p.known = true
		p.x, p.y = x, y
		p.emit(collision.Event{Kind: collision.KindMove, X: x, Y: y})
	}

	for _, b := range buttonMasks {
		if mask&b.mask != 0 && p.pressed&b.mask == 0 {
			p.emit(collision.Event{Kind: collision.KindDown, Button: b.button, X: x, Y: y})
		}
	}
	for _, b := range buttonMasks {
		if mask&b.mask == 0 && p.pressed&b.mask != 0 {
			p.emit(collision.Event{Kind: collision.KindUp, Button: b.button, X: x, Y: y})
		}
	}

	var buttons tcell.ButtonMask
	for _, b := range buttonMasks {
		buttons |= mask & b.mask
	}
	p.pressed = buttons
}

func (p *PointerTranslator) emit(ev collision.Event) {
	for _, fn := range p.subscribers {
		fn(ev)
	}
}

var _ collision.Source = (*PointerTranslator)(nil)
