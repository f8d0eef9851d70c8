package collision

// HitListener receives a region and the held buttons.
type HitListener[R any] func(c Collision[R], buttons Buttons)

// DragListener receives a signed movement delta and the held buttons.
type DragListener func(dx, dy int, buttons Buttons)

// Dispatcher hit-tests pointer events against the current frame's regions.
type Dispatcher[R any] struct {
	regions []Collision[R]

	// Pointer tracking
	held   Buttons
	anchor Point
	latest Point

	// Listeners
	click   []HitListener[R]
	hover   []HitListener[R]
	drag    []DragListener
	dragEnd []DragListener
}

// NewDispatcher creates a dispatcher with no regions.
func NewDispatcher[R any]() *Dispatcher[R] {
	return &Dispatcher[R]{}
}

// RegisterCollisions replaces the previous frame's regions.
func (d *Dispatcher[R]) RegisterCollisions(regions []Collision[R]) {
	d.regions = append(d.regions[:0:0], regions...)
}

// Regions returns a copy of the current regions.
func (d *Dispatcher[R]) Regions() []Collision[R] {
	return append([]Collision[R](nil), d.regions...)
}

// OnClick registers a click listener.
func (d *Dispatcher[R]) OnClick(fn HitListener[R]) {
	d.click = append(d.click, fn)
}

// OnHover registers a hover listener.
func (d *Dispatcher[R]) OnHover(fn HitListener[R]) {
	d.hover = append(d.hover, fn)
}

// OnDrag registers a drag listener.
func (d *Dispatcher[R]) OnDrag(fn DragListener) {
	d.drag = append(d.drag, fn)
}

// OnDragEnd registers a drag-end listener.
func (d *Dispatcher[R]) OnDragEnd(fn DragListener) {
	d.dragEnd = append(d.dragEnd, fn)
}

// Attach feeds every event from src into the dispatcher.
func (d *Dispatcher[R]) Attach(src Source) {
	src.Subscribe(d.Handle)
}

// Held returns a copy of the held buttons.
func (d *Dispatcher[R]) Held() Buttons {
	return d.held.clone()
}

// Anchor returns the position of the last press.
func (d *Dispatcher[R]) Anchor() Point {
	return d.anchor
}

// Latest returns the last known pointer position.
func (d *Dispatcher[R]) Latest() Point {
	return d.latest
}

// HitTest returns every region containing (x, y) in registration order.
func (d *Dispatcher[R]) HitTest(x, y int) []Collision[R] {
	var hits []Collision[R]
	for _, c := range d.regions {
		if c.Contains(x, y) {
			hits = append(hits, c)
		}
	}
	return hits
}

// Handle processes one pointer event.
func (d *Dispatcher[R]) Handle(ev Event) {
	pos := Point{X: ev.X, Y: ev.Y}

	switch ev.Kind {
	case KindDown:
		d.handleDown(pos, ev.Button)
	case KindMove:
		d.handleMove(pos)
	case KindUp:
		d.handleUp(pos, ev.Button)
	}
}

func (d *Dispatcher[R]) handleDown(pos Point, button Button) {
	d.anchor = pos
	d.latest = pos
	if !d.held.Has(button) {
		d.held = append(d.held, button)
	}
}

// handleMove fires drag listeners before hover listeners.
func (d *Dispatcher[R]) handleMove(pos Point) {
	if !pos.Equal(d.latest) {
		dx, dy := pos.X-d.latest.X, pos.Y-d.latest.Y
		for _, fn := range d.drag {
			fn(dx, dy, d.held.clone())
		}
	}
	d.latest = pos

	hits := d.HitTest(pos.X, pos.Y)
	if len(hits) == 0 {
		none := None[R]()
		for _, fn := range d.hover {
			fn(none, d.held.clone())
		}
		return
	}
	for _, c := range hits {
		for _, fn := range d.hover {
			fn(c, d.held.clone())
		}
	}
}

// handleUp fires click listeners for a release at the press position and
// drag-end listeners otherwise. The released button is reported as held.
func (d *Dispatcher[R]) handleUp(pos Point, button Button) {
	if pos.Equal(d.anchor) {
		for _, c := range d.HitTest(pos.X, pos.Y) {
			for _, fn := range d.click {
				fn(c, d.held.clone())
			}
		}
	} else {
		dx, dy := pos.X-d.latest.X, pos.Y-d.latest.Y
		for _, fn := range d.dragEnd {
			fn(dx, dy, d.held.clone())
		}
	}

	d.held = d.held.without(button)
}

// LeftClick dispatches a click at (x, y) without pointer tracking,
// as if the left button were pressed and released there.
func (d *Dispatcher[R]) LeftClick(x, y int) {
	buttons := Buttons{ButtonLeft}
	for _, c := range d.HitTest(x, y) {
		for _, fn := range d.click {
			fn(c, buttons.clone())
		}
	}
}
