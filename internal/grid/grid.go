package grid

import "fmt"

// Grid is a fixed-size, row-major collection of cell slots.
type Grid struct {
	cols  int
	rows  int
	cells []*Cell
}

// New creates an empty grid with the given dimensions.
func New(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]*Cell, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of slots (cols*rows).
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the slot index for a row and column, or -1 if outside the grid.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return -1
	}
	return row*g.cols + col
}

// Coords returns the row and column of a slot index.
func (g *Grid) Coords(index int) (row, col int) {
	return index / g.cols, index % g.cols
}

// InRange returns true if index addresses a slot.
func (g *Grid) InRange(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// At returns a copy of the slot content, nil for an empty slot.
func (g *Grid) At(index int) (*Cell, error) {
	if !g.InRange(index) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return g.cells[index].Clone(), nil
}

// IsEmpty returns true if the slot exists and holds no cell.
func (g *Grid) IsEmpty(index int) bool {
	return g.InRange(index) && g.cells[index] == nil
}

// Attr returns an attribute of the cell at index.
func (g *Grid) Attr(index int, key AttrKey) (any, error) {
	if !g.InRange(index) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return g.cells[index].Get(key)
}

// CheckAttr validates that an attribute can be set on the cell at index
// without changing anything. It returns the normalized value.
func (g *Grid) CheckAttr(index int, key AttrKey, value any) (any, error) {
	if !g.InRange(index) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if g.cells[index] == nil {
		return nil, ErrEmptyCell
	}
	return NormalizeValue(key, value)
}

// SetAttr sets an attribute on the cell at index.
// Only the history engine should call SetAttr on a live grid.
func (g *Grid) SetAttr(index int, key AttrKey, value any) error {
	if _, err := g.CheckAttr(index, key, value); err != nil {
		return err
	}
	return g.cells[index].Set(key, value)
}

// Put replaces the slot at index with a copy of cell (nil empties it).
// Only the history engine should call Put on a live grid.
func (g *Grid) Put(index int, cell *Cell) error {
	if !g.InRange(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	g.cells[index] = cell.Clone()
	return nil
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		cols:  g.cols,
		rows:  g.rows,
		cells: make([]*Cell, len(g.cells)),
	}
	for i, c := range g.cells {
		clone.cells[i] = c.Clone()
	}
	return clone
}

// Equal reports whether two grids have the same size and content.
func (g *Grid) Equal(other *Grid) bool {
	if g.cols != other.cols || g.rows != other.rows {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of non-empty slots.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != nil {
			n++
		}
	}
	return n
}

// Reader is the read-only view of a grid handed out by its owner.
type Reader interface {
	Cols() int
	Rows() int
	Len() int
	Index(row, col int) int
	Coords(index int) (row, col int)
	InRange(index int) bool
	IsEmpty(index int) bool
	At(index int) (*Cell, error)
	Attr(index int, key AttrKey) (any, error)
	Count() int
	Clone() *Grid
}

var _ Reader = (*Grid)(nil)
