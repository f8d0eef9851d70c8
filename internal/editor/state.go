package editor

import "github.com/google/uuid"

// State is the per-session editing state. It is plain data and can be
// serialized to persist or inspect a session.
type State struct {
	// Session identifies the editing session in logs.
	Session string `json:"session"`

	// Selection holds the selected slot indices in ascending order.
	Selection []int `json:"selection"`

	// Focus is the address of the focused input, empty when none.
	Focus string `json:"focus,omitempty"`

	// Cursor is the address of the panel element keyboard activation
	// applies to. It may name any activatable element.
	Cursor string `json:"cursor,omitempty"`

	// Draft is the uncommitted text of the focused input.
	Draft string `json:"draft,omitempty"`

	// Editing is true while a draft is open.
	Editing bool `json:"editing"`

	// CaretVisible is the blink phase of the draft caret.
	CaretVisible bool `json:"caretVisible"`

	// ShowStyle expands the style group in the panel.
	ShowStyle bool `json:"showStyle"`
}

// NewState creates an empty state with a fresh session ID.
func NewState() State {
	return State{Session: uuid.NewString()}
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	c := s
	c.Selection = append([]int(nil), s.Selection...)
	return c
}

// clearDraft drops any in-progress input.
func (s *State) clearDraft() {
	s.Editing = false
	s.Draft = ""
	s.CaretVisible = false
}
