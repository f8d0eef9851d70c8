// Package collision provides per-frame hit regions and a pointer dispatcher.
//
// Each render pass registers the rectangles it drew, tagged with an opaque
// reference of type R (a cell index, a widget address, ...):
//
//	d := collision.NewDispatcher[string]()
//	d.RegisterCollisions([]collision.Collision[string]{
//	    {X: 0, Y: 0, Width: 10, Height: 1, Ref: "0"},
//	})
//
// Pointer events (down, move, up) are then turned into semantic
// notifications:
//
//   - Click: release at the exact press position, once per region containing it
//   - Hover: every move, once per region containing the pointer, or once with
//     the None collision when no region does
//   - Drag: every move that changes position, with the signed delta
//   - DragEnd: release away from the press position
//
// Regions may overlap; every matching region is notified in registration
// order. Containment is inclusive on all four edges.
//
// # Thread Safety
//
// A Dispatcher is not safe for concurrent use. Register, feed and listen from
// the goroutine that renders.
package collision
