package editor

import (
	"errors"
	"testing"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/history"
)

// Helper to create an editor over a 4x2 grid: seats in row 0, row 1 empty.
func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	g, err := grid.New(4, 2)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	for col := 0; col < 4; col++ {
		if err := g.Put(col, grid.NewCell(grid.TypeSeat)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	return New(history.New(g))
}

func attr(t *testing.T, e *Editor, index int, key grid.AttrKey) any {
	t.Helper()
	v, err := e.Grid().Attr(index, key)
	if err != nil {
		t.Fatalf("Attr(%d, %s) failed: %v", index, key, err)
	}
	return v
}

func activate(t *testing.T, e *Editor, address string) {
	t.Helper()
	if err := e.Activate(address); err != nil {
		t.Fatalf("Activate(%q) failed: %v", address, err)
	}
}

func TestPanelShapes(t *testing.T) {
	tests := []struct {
		name      string
		selection []int
		kinds     []element.Kind
	}{
		{"empty", nil, []element.Kind{element.KindLabel}},
		{"occupied", []int{0, 1}, []element.Kind{
			element.KindLabel, element.KindHSelect, element.KindInput,
			element.KindCheckbox, element.KindButton, element.KindButton,
		}},
		{"all empty", []int{4, 5}, []element.Kind{
			element.KindLabel, element.KindButton, element.KindButton, element.KindButton,
		}},
		{"mixed slots", []int{0, 4}, []element.Kind{
			element.KindLabel, element.KindButton, element.KindButton, element.KindButton, element.KindButton,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			e.Select(tt.selection...)
			panel := e.Panel()
			if len(panel) != len(tt.kinds) {
				t.Fatalf("panel has %d elements, want %d", len(panel), len(tt.kinds))
			}
			for i, k := range tt.kinds {
				if panel[i].Kind != k {
					t.Errorf("panel[%d].Kind = %v, want %v", i, panel[i].Kind, k)
				}
			}
		})
	}
}

func TestSelectNormalizes(t *testing.T) {
	e := newTestEditor(t)
	e.Select(3, 1, 3, 99, -1)

	got := e.Selected()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Selected() = %v, want [1 3]", got)
	}
	if !e.IsSelected(3) || e.IsSelected(2) {
		t.Error("IsSelected disagrees with selection")
	}

	e.Toggle(3)
	e.Toggle(0)
	got = e.Selected()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("after toggles Selected() = %v, want [0 1]", got)
	}
}

func TestSelectRect(t *testing.T) {
	e := newTestEditor(t)
	e.SelectRect(1, 2, 0, 1)

	want := []int{1, 2, 5, 6}
	got := e.Selected()
	if len(got) != len(want) {
		t.Fatalf("Selected() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selected()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCommitNameIsOneUndoStep(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0, 1)

	activate(t, e, "2")
	for _, r := range "A1" {
		e.Insert(r)
	}
	if got := e.Display("2"); got != "A1" {
		t.Errorf("Display while editing = %q, want A1", got)
	}
	if err := e.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	for _, i := range []int{0, 1} {
		if got := attr(t, e, i, grid.AttrName); got != "A1" {
			t.Errorf("name[%d] = %v, want A1", i, got)
		}
	}
	if e.History().Len() != 1 {
		t.Fatalf("history Len = %d, want 1", e.History().Len())
	}
	if e.State().Editing {
		t.Error("still editing after commit")
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	for _, i := range []int{0, 1} {
		if got := attr(t, e, i, grid.AttrName); got != "" {
			t.Errorf("after undo name[%d] = %v, want empty", i, got)
		}
	}
}

func TestCommitUnchangedRecordsNothing(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "2")
	if err := e.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if e.History().Len() != 0 {
		t.Errorf("history Len = %d, want 0", e.History().Len())
	}
}

func TestFocusSeedsDraftFromCommonValue(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0, 1)
	activate(t, e, "2")
	for _, r := range "B" {
		e.Insert(r)
	}
	if err := e.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	activate(t, e, "2")
	if got := e.State().Draft; got != "B" {
		t.Errorf("draft = %q, want B", got)
	}
	e.Backspace()
	e.Backspace()
	if got := e.State().Draft; got != "" {
		t.Errorf("draft after backspace = %q, want empty", got)
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "2")
	e.Insert('x')
	e.Cancel()

	if e.State().Editing {
		t.Error("still editing after cancel")
	}
	if got := attr(t, e, 0, grid.AttrName); got != "" {
		t.Errorf("name = %v, want empty", got)
	}
	if e.History().Len() != 0 {
		t.Errorf("history Len = %d, want 0", e.History().Len())
	}
}

func TestInvalidCommitKeepsDraft(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "4") // Style +
	if !e.State().ShowStyle {
		t.Fatal("style group not shown")
	}
	activate(t, e, "6_0")
	for _, r := range "zz" {
		e.Insert(r)
	}

	if err := e.Commit(); !errors.Is(err, grid.ErrInvalidValue) {
		t.Fatalf("Commit error = %v, want ErrInvalidValue", err)
	}
	s := e.State()
	if !s.Editing || s.Draft != "zz" || s.Focus != "6_0" {
		t.Errorf("state = %+v, want open draft zz at 6_0", s)
	}
	if e.History().Len() != 0 {
		t.Errorf("history Len = %d, want 0", e.History().Len())
	}
}

func TestCheckboxToggle(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "3")
	e.Select(0, 1)

	if got := e.Display("3"); got != "[-]" {
		t.Errorf("mixed checkbox = %q, want [-]", got)
	}
	activate(t, e, "3")
	if got := e.Display("3"); got != "[x]" {
		t.Errorf("checkbox = %q, want [x]", got)
	}
	activate(t, e, "3")
	if got := e.Display("3"); got != "[ ]" {
		t.Errorf("checkbox = %q, want [ ]", got)
	}
	if e.History().Len() != 3 {
		t.Errorf("history Len = %d, want 3", e.History().Len())
	}
}

func TestSelectorCycles(t *testing.T) {
	tests := []struct {
		address string
		want    grid.CellType
	}{
		{"1", grid.TypeAisle},
		{"1+", grid.TypeAisle},
		{"1-", grid.TypeCustom},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			e := newTestEditor(t)
			e.Select(0)
			activate(t, e, tt.address)
			if got := attr(t, e, 0, grid.AttrType); got != tt.want {
				t.Errorf("type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFocusTraversal(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "4") // Style +

	want := []string{"2", "6_0", "6_1", "6_2", "2"}
	for _, w := range want {
		if err := e.FocusNext(); err != nil {
			t.Fatalf("FocusNext failed: %v", err)
		}
		if got := e.State().Focus; got != w {
			t.Errorf("Focus = %q, want %q", got, w)
		}
	}

	if err := e.FocusPrev(); err != nil {
		t.Fatalf("FocusPrev failed: %v", err)
	}
	if got := e.State().Focus; got != "6_2" {
		t.Errorf("Focus = %q, want 6_2", got)
	}
}

func TestFocusNextCommits(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "2")
	e.Insert('Q')
	if err := e.FocusNext(); err != nil {
		t.Fatalf("FocusNext failed: %v", err)
	}
	if got := attr(t, e, 0, grid.AttrName); got != "Q" {
		t.Errorf("name = %v, want Q", got)
	}
}

func TestCreateAndDelete(t *testing.T) {
	e := newTestEditor(t)
	e.Select(3, 4, 5)

	activate(t, e, "3") // Create wall
	for _, i := range []int{4, 5} {
		if got := attr(t, e, i, grid.AttrType); got != grid.TypeWall {
			t.Errorf("type[%d] = %v, want wall", i, got)
		}
	}
	if got := attr(t, e, 3, grid.AttrType); got != grid.TypeSeat {
		t.Errorf("type[3] = %v, want seat", got)
	}

	activate(t, e, "5") // Delete
	for _, i := range []int{3, 4, 5} {
		if !e.Grid().IsEmpty(i) {
			t.Errorf("slot %d not empty after delete", i)
		}
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if e.Grid().IsEmpty(3) || e.Grid().IsEmpty(4) {
		t.Error("undo did not restore deleted cells")
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !e.Grid().IsEmpty(4) || e.Grid().IsEmpty(3) {
		t.Error("second undo did not remove created cells only")
	}
}

func TestStaleAddress(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)

	for _, addr := range []string{"9", "6_0", "x", ""} {
		if err := e.Activate(addr); !errors.Is(err, ErrStaleAddress) {
			t.Errorf("Activate(%q) error = %v, want ErrStaleAddress", addr, err)
		}
	}
}

func TestSelectionChangeDropsDraft(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	activate(t, e, "2")
	e.Insert('x')
	e.Select(1)

	s := e.State()
	if s.Editing || s.Draft != "" || s.Focus != "" {
		t.Errorf("state = %+v, want no draft", s)
	}
	if got := attr(t, e, 0, grid.AttrName); got != "" {
		t.Errorf("name = %v, want empty", got)
	}
}

func TestTickBlinksOnlyWhileEditing(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	e.Tick()
	if e.State().CaretVisible {
		t.Error("caret visible without draft")
	}

	activate(t, e, "2")
	if !e.State().CaretVisible {
		t.Error("caret hidden after focus")
	}
	e.Tick()
	if e.State().CaretVisible {
		t.Error("caret still visible after tick")
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	e := newTestEditor(t)
	if err := e.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("Undo error = %v, want ErrNothingToUndo", err)
	}
	if err := e.Redo(); !errors.Is(err, history.ErrNothingToRedo) {
		t.Errorf("Redo error = %v, want ErrNothingToRedo", err)
	}
}

func TestWithStateDropsUnknownIndices(t *testing.T) {
	g, _ := grid.New(2, 1)
	s := State{Session: "s1", Selection: []int{1, 5}}
	e := New(history.New(g), WithState(s))

	got := e.Selected()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Selected() = %v, want [1]", got)
	}
	if e.State().Session != "s1" {
		t.Errorf("Session = %q, want s1", e.State().Session)
	}
}

func TestMoveCursor(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)

	steps := []struct {
		delta   int
		cursor  string
		focus   string
		editing bool
	}{
		{1, "1", "", false},
		{1, "2", "2", true},
		{1, "3", "", false},
		{1, "4", "", false},
		{1, "5", "", false},
		{1, "1", "", false},
		{-1, "5", "", false},
		{-1, "4", "", false},
	}
	for i, s := range steps {
		if err := e.MoveCursor(s.delta); err != nil {
			t.Fatalf("step %d: MoveCursor(%d) failed: %v", i, s.delta, err)
		}
		st := e.State()
		if st.Cursor != s.cursor || st.Focus != s.focus || st.Editing != s.editing {
			t.Errorf("step %d: cursor=%q focus=%q editing=%v, want %q %q %v",
				i, st.Cursor, st.Focus, st.Editing, s.cursor, s.focus, s.editing)
		}
	}
}

func TestMoveCursorCommitsDraft(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	_ = e.MoveCursor(1)
	_ = e.MoveCursor(1)
	e.Insert('Z')
	if err := e.MoveCursor(1); err != nil {
		t.Fatalf("MoveCursor failed: %v", err)
	}
	if got := attr(t, e, 0, grid.AttrName); got != "Z" {
		t.Errorf("name = %v, want Z", got)
	}
	if got := e.State().Cursor; got != "3" {
		t.Errorf("Cursor = %q, want 3", got)
	}
}

func TestCursorAcrossRebuild(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		at     string
		act    string
		cursor string
	}{
		{"toggled checkbox keeps cursor", 0, "3", "3", "3"},
		{"cycled selector keeps cursor", 0, "1", "1+", "1"},
		{"created cell drops cursor", 4, "1", "1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			e.Select(tt.index)
			for e.State().Cursor != tt.at {
				if err := e.MoveCursor(1); err != nil {
					t.Fatalf("MoveCursor failed: %v", err)
				}
			}
			activate(t, e, tt.act)
			if got := e.State().Cursor; got != tt.cursor {
				t.Errorf("Cursor = %q, want %q", got, tt.cursor)
			}
		})
	}
}

func TestSelectionChangeDropsCursor(t *testing.T) {
	e := newTestEditor(t)
	e.Select(0)
	_ = e.MoveCursor(1)
	e.Select(1)
	if got := e.State().Cursor; got != "" {
		t.Errorf("Cursor = %q, want empty", got)
	}
}
