package element

import (
	"strconv"
	"strings"
)

// Control is the optional suffix of a selector address.
type Control uint8

const (
	// ControlNone addresses the element itself.
	ControlNone Control = iota
	// ControlPrev ("-") selects the previous option.
	ControlPrev
	// ControlNext ("+") selects the next option.
	ControlNext
)

// String returns the suffix form of the control.
func (c Control) String() string {
	switch c {
	case ControlPrev:
		return "-"
	case ControlNext:
		return "+"
	default:
		return ""
	}
}

// Address is the parsed form of an element address.
type Address struct {
	// Group is the position of the enclosing group, or -1 for a top-level element.
	Group   int
	Item    int
	Control Control
}

// InGroup returns true if the address names a leaf inside a group.
func (a Address) InGroup() bool {
	return a.Group >= 0
}

// String formats the address, including any control suffix.
func (a Address) String() string {
	return a.Base() + a.Control.String()
}

// Base formats the address without its control suffix.
func (a Address) Base() string {
	if a.InGroup() {
		return GroupAddress(a.Group, a.Item)
	}
	return ItemAddress(a.Item)
}

// ItemAddress returns the address of the top-level element at position i.
func ItemAddress(i int) string {
	return strconv.Itoa(i)
}

// GroupAddress returns the address of leaf j in the group at position i.
func GroupAddress(i, j int) string {
	return strconv.Itoa(i) + "_" + strconv.Itoa(j)
}

// WithControl appends a control suffix to an address.
func WithControl(address string, c Control) string {
	return address + c.String()
}

// Parse parses "item", "group_item" with an optional "-" or "+" suffix.
func Parse(s string) (Address, bool) {
	addr := Address{Group: -1}

	switch {
	case strings.HasSuffix(s, "-"):
		addr.Control = ControlPrev
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "+"):
		addr.Control = ControlNext
		s = s[:len(s)-1]
	}

	parts := strings.Split(s, "_")
	switch len(parts) {
	case 1:
		item, ok := parseIndex(parts[0])
		if !ok {
			return Address{}, false
		}
		addr.Item = item
	case 2:
		group, ok := parseIndex(parts[0])
		if !ok {
			return Address{}, false
		}
		item, ok := parseIndex(parts[1])
		if !ok {
			return Address{}, false
		}
		addr.Group = group
		addr.Item = item
	default:
		return Address{}, false
	}
	return addr, true
}

// parseIndex accepts a non-empty run of decimal digits.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
