package element

import (
	"errors"
	"fmt"

	"github.com/dshills/gridedit/internal/grid"
)

// ErrNestedGroup indicates a group placed inside another group.
var ErrNestedGroup = errors.New("groups cannot be nested")

// Kind identifies the type of an element.
type Kind uint8

const (
	// KindLabel is static text.
	KindLabel Kind = iota
	// KindInput is a text field bound to an attribute.
	KindInput
	// KindButton runs an action when activated.
	KindButton
	// KindCheckbox toggles a boolean attribute.
	KindCheckbox
	// KindHSelect cycles through a fixed list of options.
	KindHSelect
	// KindGroup holds leaf elements.
	KindGroup
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindInput:
		return "input"
	case KindButton:
		return "button"
	case KindCheckbox:
		return "checkbox"
	case KindHSelect:
		return "hselect"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Element describes one panel widget.
type Element struct {
	Kind  Kind
	Label string

	// Attr is the attribute edited by inputs, checkboxes and selectors.
	Attr grid.AttrKey

	// Action runs when a button is activated.
	Action func()

	// Options are the values a selector cycles through.
	Options []string

	// Elements are the leaves of a group.
	Elements []Element
}

// Input creates a text field bound to attr.
func Input(label string, attr grid.AttrKey) Element {
	return Element{Kind: KindInput, Label: label, Attr: attr}
}

// Button creates a button running action.
func Button(label string, action func()) Element {
	return Element{Kind: KindButton, Label: label, Action: action}
}

// Checkbox creates a toggle bound to attr.
func Checkbox(label string, attr grid.AttrKey) Element {
	return Element{Kind: KindCheckbox, Label: label, Attr: attr}
}

// Label creates static text.
func Label(label string) Element {
	return Element{Kind: KindLabel, Label: label}
}

// HSelect creates a selector over options bound to attr.
func HSelect(label string, attr grid.AttrKey, options ...string) Element {
	return Element{Kind: KindHSelect, Label: label, Attr: attr, Options: options}
}

// Group creates a group of leaf elements.
func Group(label string, elements ...Element) Element {
	return Element{Kind: KindGroup, Label: label, Elements: elements}
}

// Focusable returns true if keyboard focus traversal stops at the element.
func (e Element) Focusable() bool {
	return e.Kind == KindInput
}

// Activatable returns true if the element responds to activation.
func (e Element) Activatable() bool {
	switch e.Kind {
	case KindInput, KindButton, KindCheckbox, KindHSelect:
		return true
	}
	return false
}

// Tree is the ordered list of top-level panel elements.
type Tree []Element

// Validate checks that no group contains another group.
func (t Tree) Validate() error {
	for i, el := range t {
		if el.Kind != KindGroup {
			continue
		}
		for j, leaf := range el.Elements {
			if leaf.Kind == KindGroup {
				return fmt.Errorf("%w: %s", ErrNestedGroup, GroupAddress(i, j))
			}
		}
	}
	return nil
}
