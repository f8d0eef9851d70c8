package history

import (
	"fmt"
	"time"

	"github.com/dshills/gridedit/internal/grid"
)

// Kind identifies the variant of an Entry.
type Kind uint8

const (
	// KindSetAttribute sets one attribute on one cell.
	KindSetAttribute Kind = iota
	// KindSetAttributes sets one attribute on many cells.
	KindSetAttributes
	// KindSwapCell replaces one slot.
	KindSwapCell
	// KindSwapCells replaces many slots.
	KindSwapCells
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSetAttribute:
		return "setAttribute"
	case KindSetAttributes:
		return "setAttributes"
	case KindSwapCell:
		return "swapCell"
	case KindSwapCells:
		return "swapCells"
	default:
		return "unknown"
	}
}

// side selects which half of an entry is read or written.
type side uint8

const (
	sideOld side = iota
	sideNew
)

// Entry is one committed, reversible edit.
type Entry interface {
	// Kind returns the entry variant.
	Kind() Kind

	// Indices returns the slots the entry touches.
	Indices() []int

	// Description returns a human-readable description.
	Description() string

	// validate checks that every target can take a write.
	validate(g *grid.Grid) error

	// matches checks that every target currently holds side s.
	matches(g *grid.Grid, s side) error

	// write stores side s into the grid.
	write(g *grid.Grid, s side) error
}

// SetAttribute records one attribute change on one cell.
type SetAttribute struct {
	Index int
	Key   grid.AttrKey
	Old   any
	New   any
}

func (e *SetAttribute) Kind() Kind     { return KindSetAttribute }
func (e *SetAttribute) Indices() []int { return []int{e.Index} }

func (e *SetAttribute) Description() string {
	return fmt.Sprintf("Set %s on cell %d", e.Key, e.Index)
}

func (e *SetAttribute) validate(g *grid.Grid) error {
	return validateAttrs(g, e.Key, []int{e.Index}, []any{e.New})
}

func (e *SetAttribute) matches(g *grid.Grid, s side) error {
	return matchAttrs(g, e.Key, []int{e.Index}, []any{pick(s, e.Old, e.New)})
}

func (e *SetAttribute) write(g *grid.Grid, s side) error {
	return g.SetAttr(e.Index, e.Key, pick(s, e.Old, e.New))
}

// SetAttributes records one attribute change across several cells.
// Indices, Old and New are parallel.
type SetAttributes struct {
	Index []int
	Key   grid.AttrKey
	Old   []any
	New   []any
}

func (e *SetAttributes) Kind() Kind { return KindSetAttributes }

func (e *SetAttributes) Indices() []int {
	return append([]int(nil), e.Index...)
}

func (e *SetAttributes) Description() string {
	if len(e.Index) == 1 {
		return fmt.Sprintf("Set %s on cell %d", e.Key, e.Index[0])
	}
	return fmt.Sprintf("Set %s on %d cells", e.Key, len(e.Index))
}

func (e *SetAttributes) validate(g *grid.Grid) error {
	return validateAttrs(g, e.Key, e.Index, e.New)
}

func (e *SetAttributes) matches(g *grid.Grid, s side) error {
	return matchAttrs(g, e.Key, e.Index, pick(s, e.Old, e.New))
}

func (e *SetAttributes) write(g *grid.Grid, s side) error {
	values := pick(s, e.Old, e.New)
	for i, idx := range e.Index {
		if err := g.SetAttr(idx, e.Key, values[i]); err != nil {
			return &TargetError{Op: "write", Index: idx, Err: err}
		}
	}
	return nil
}

// SwapCell records the replacement of one slot.
// Old or New is nil when the slot was or becomes empty.
type SwapCell struct {
	Index int
	Old   *grid.Cell
	New   *grid.Cell
}

func (e *SwapCell) Kind() Kind     { return KindSwapCell }
func (e *SwapCell) Indices() []int { return []int{e.Index} }

func (e *SwapCell) Description() string {
	return describeSwap(e.Old, e.New, fmt.Sprintf("cell %d", e.Index))
}

func (e *SwapCell) validate(g *grid.Grid) error {
	return validateSlots(g, []int{e.Index})
}

func (e *SwapCell) matches(g *grid.Grid, s side) error {
	return matchCells(g, []int{e.Index}, []*grid.Cell{pick(s, e.Old, e.New)})
}

func (e *SwapCell) write(g *grid.Grid, s side) error {
	return g.Put(e.Index, pick(s, e.Old, e.New))
}

// SwapCells records the replacement of several slots.
type SwapCells struct {
	Index []int
	Old   []*grid.Cell
	New   []*grid.Cell
}

func (e *SwapCells) Kind() Kind { return KindSwapCells }

func (e *SwapCells) Indices() []int {
	return append([]int(nil), e.Index...)
}

func (e *SwapCells) Description() string {
	if len(e.Index) == 1 {
		return describeSwap(e.Old[0], e.New[0], fmt.Sprintf("cell %d", e.Index[0]))
	}
	return fmt.Sprintf("Replace %d cells", len(e.Index))
}

func (e *SwapCells) validate(g *grid.Grid) error {
	return validateSlots(g, e.Index)
}

func (e *SwapCells) matches(g *grid.Grid, s side) error {
	return matchCells(g, e.Index, pick(s, e.Old, e.New))
}

func (e *SwapCells) write(g *grid.Grid, s side) error {
	cells := pick(s, e.Old, e.New)
	for i, idx := range e.Index {
		if err := g.Put(idx, cells[i]); err != nil {
			return &TargetError{Op: "write", Index: idx, Err: err}
		}
	}
	return nil
}

func pick[T any](s side, before, after T) T {
	if s == sideOld {
		return before
	}
	return after
}

func describeSwap(from, to *grid.Cell, target string) string {
	switch {
	case from == nil && to != nil:
		return fmt.Sprintf("Create %s at %s", to.Type, target)
	case from != nil && to == nil:
		return fmt.Sprintf("Clear %s", target)
	default:
		return fmt.Sprintf("Replace %s", target)
	}
}

func validateAttrs(g *grid.Grid, key grid.AttrKey, indices []int, values []any) error {
	for i, idx := range indices {
		if _, err := g.CheckAttr(idx, key, values[i]); err != nil {
			return &TargetError{Op: "validate", Index: idx, Err: err}
		}
	}
	return nil
}

func matchAttrs(g *grid.Grid, key grid.AttrKey, indices []int, want []any) error {
	for i, idx := range indices {
		got, err := g.Attr(idx, key)
		if err != nil {
			return &TargetError{Op: "match", Index: idx, Err: err}
		}
		if got != want[i] {
			return &TargetError{Op: "match", Index: idx, Err: ErrDiverged}
		}
	}
	return nil
}

func validateSlots(g *grid.Grid, indices []int) error {
	for _, idx := range indices {
		if !g.InRange(idx) {
			return &TargetError{Op: "validate", Index: idx, Err: grid.ErrIndexOutOfRange}
		}
	}
	return nil
}

func matchCells(g *grid.Grid, indices []int, want []*grid.Cell) error {
	for i, idx := range indices {
		got, err := g.At(idx)
		if err != nil {
			return &TargetError{Op: "match", Index: idx, Err: err}
		}
		if !got.Equal(want[i]) {
			return &TargetError{Op: "match", Index: idx, Err: ErrDiverged}
		}
	}
	return nil
}

// EntryInfo provides read-only info about an entry.
// Used for displaying undo/redo history to users.
type EntryInfo struct {
	Kind        Kind
	Description string
	Indices     []int
	Timestamp   time.Time
}
