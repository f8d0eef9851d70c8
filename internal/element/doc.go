// Package element describes the interactive widgets of the attribute panel
// and the string addresses that identify them.
//
// A Tree is an ordered list of top-level elements; a Group element holds an
// ordered list of leaf elements (groups do not nest). Addresses are derived
// from positions:
//
//	"2"    third top-level element
//	"1_0"  first leaf of the group at position 1
//	"3+"   the "next option" control of the selector at position 3
//
// Addresses are only meaningful for the tree they were computed from; the
// panel is rebuilt whenever the selection changes, which invalidates every
// address issued for the previous tree.
//
// Next and Prev walk the input elements in a fixed order for keyboard focus
// traversal: top-level inputs by position, then grouped inputs by
// (group, item), wrapping at the ends.
package element
