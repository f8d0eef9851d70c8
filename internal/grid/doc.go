// Package grid provides the mutable layout model edited by gridedit.
//
// A Grid is a fixed-length, row-major sequence of cell slots. Each slot is
// either empty (nil) or holds a Cell with a type, an optional name, a blocked
// flag and an optional StyleOverride:
//
//	g, _ := grid.New(10, 4)
//	i := g.Index(1, 3) // row 1, column 3
//	seat := grid.NewCell(grid.TypeSeat)
//	seat.Name = "B4"
//
// # Attributes
//
// Individual properties of a cell are addressed by AttrKey so that editors
// can change one property across many cells at once:
//
//	v, _ := cell.Get(grid.AttrName)
//	_ = cell.Set(grid.AttrFill, "#ff8800")
//
// # Ownership
//
// The slice of slots is never resized or reordered after construction. Only
// the history engine mutates a live Grid (through Put and SetAttr); every
// value read out of a Grid is a copy.
package grid
