package element

// Resolve returns the element an address names along with the parsed
// address (which carries any control symbol). Malformed or stale addresses
// resolve to false.
func (t Tree) Resolve(address string) (Element, Address, bool) {
	addr, ok := Parse(address)
	if !ok {
		return Element{}, Address{}, false
	}

	if !addr.InGroup() {
		if addr.Item >= len(t) {
			return Element{}, Address{}, false
		}
		return t[addr.Item], addr, true
	}

	if addr.Group >= len(t) || t[addr.Group].Kind != KindGroup {
		return Element{}, Address{}, false
	}
	leaves := t[addr.Group].Elements
	if addr.Item >= len(leaves) {
		return Element{}, Address{}, false
	}
	return leaves[addr.Item], addr, true
}

// Walk calls fn for every non-group element with its address:
// top-level elements by position, then grouped leaves by (group, item).
func (t Tree) Walk(fn func(address string, el Element)) {
	for i, el := range t {
		if el.Kind != KindGroup {
			fn(ItemAddress(i), el)
		}
	}
	for i, el := range t {
		if el.Kind != KindGroup {
			continue
		}
		for j, leaf := range el.Elements {
			fn(GroupAddress(i, j), leaf)
		}
	}
}

// Addresses returns the focus traversal order of the tree's inputs.
func (t Tree) Addresses() []string {
	var out []string
	t.Walk(func(address string, el Element) {
		if el.Focusable() {
			out = append(out, address)
		}
	})
	return out
}

// Controls returns the addresses of every activatable element in
// traversal order.
func (t Tree) Controls() []string {
	var out []string
	t.Walk(func(address string, el Element) {
		if el.Activatable() {
			out = append(out, address)
		}
	})
	return out
}

// Next returns the input address after address, wrapping to the first.
// A control suffix on address is ignored.
func (t Tree) Next(address string) (string, bool) {
	return step(t.Addresses(), address, 1)
}

// Prev returns the input address before address, wrapping to the last.
func (t Tree) Prev(address string) (string, bool) {
	return step(t.Addresses(), address, -1)
}

// First returns the first input address, if any.
func (t Tree) First() (string, bool) {
	order := t.Addresses()
	if len(order) == 0 {
		return "", false
	}
	return order[0], true
}

// NextControl returns the activatable address after address, wrapping.
// An empty address starts at the first control.
func (t Tree) NextControl(address string) (string, bool) {
	return stepControl(t.Controls(), address, 1)
}

// PrevControl returns the activatable address before address, wrapping.
// An empty address starts at the last control.
func (t Tree) PrevControl(address string) (string, bool) {
	return stepControl(t.Controls(), address, -1)
}

func stepControl(order []string, address string, delta int) (string, bool) {
	if address != "" {
		return step(order, address, delta)
	}
	switch {
	case len(order) == 0:
		return "", false
	case delta > 0:
		return order[0], true
	default:
		return order[len(order)-1], true
	}
}

func step(order []string, address string, delta int) (string, bool) {
	addr, ok := Parse(address)
	if !ok {
		return "", false
	}
	base := addr.Base()

	for i, a := range order {
		if a == base {
			return order[(i+len(order)+delta)%len(order)], true
		}
	}
	return "", false
}
