package grid

import "reflect"

// Selection is a set of selected row ids. Only true entries are meaningful;
// Normalize drops the rest.
type Selection map[string]bool

// Normalize returns a new selection holding only the true entries of sel.
// A nil selection normalizes to an empty one.
func Normalize(sel Selection) Selection {
	out := make(Selection, len(sel))
	for id, on := range sel {
		if on {
			out[id] = true
		}
	}
	return out
}

// SelectionEqual reports whether a and b select exactly the same ids.
func SelectionEqual(a, b Selection) bool {
	if sameMap(a, b) {
		return true
	}
	n := 0
	for id, on := range a {
		if !on {
			continue
		}
		if !b[id] {
			return false
		}
		n++
	}
	for _, on := range b {
		if on {
			n--
		}
	}
	return n == 0
}

// IDs returns the selected ids in no particular order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id, on := range s {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of selected ids.
func (s Selection) Count() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

func sameMap(a, b Selection) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
