package collision

// Collision is a rectangular hit region tagged with a reference.
type Collision[R any] struct {
	X      int
	Y      int
	Width  int
	Height int
	Ref    R

	none bool
}

// None returns the sentinel collision meaning "no region".
func None[R any]() Collision[R] {
	return Collision[R]{none: true}
}

// IsNone returns true for the sentinel collision.
func (c Collision[R]) IsNone() bool {
	return c.none
}

// Contains reports whether (x, y) lies inside the region, edges included.
func (c Collision[R]) Contains(x, y int) bool {
	if c.none {
		return false
	}
	return x >= c.X && x <= c.X+c.Width &&
		y >= c.Y && y <= c.Y+c.Height
}

// Point is a pointer position in local coordinates.
type Point struct {
	X int
	Y int
}

// Equal returns true if two points are equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}
