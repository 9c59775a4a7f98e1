package grid

// Ids of the synthetic columns added by Compose.
const (
	SelectColumnID     = "select"
	RowActionsColumnID = "row-actions"
)

// Locks lists the column ids pinned to the start and end of every order.
type Locks struct {
	Start []string
	End   []string
}

// DefaultLocks pins the selection column first and the row-actions column last.
func DefaultLocks() Locks {
	return Locks{
		Start: []string{SelectColumnID},
		End:   []string{RowActionsColumnID},
	}
}

// IsLocked reports whether id is pinned at either end.
func (l Locks) IsLocked(id string) bool {
	for _, s := range l.Start {
		if s == id {
			return true
		}
	}
	for _, e := range l.End {
		if e == id {
			return true
		}
	}
	return false
}

// Reconcile repairs previous so it is again a permutation of available with
// locked-start ids as a prefix and locked-end ids as a suffix, both in the
// order given by locks.
//
// Ids the caller (or a drag) already placed keep their relative order. Ids
// that newly appeared in available are inserted after the last placed id
// whose position in available is not greater than theirs, so new columns
// land near their natural position instead of at the end.
func Reconcile(previous, available []string, locks Locks) []string {
	if len(available) == 0 {
		return []string{}
	}
	if len(previous) == 0 {
		previous = available
	}

	availIdx := make(map[string]int, len(available))
	for i, id := range available {
		if _, ok := availIdx[id]; !ok {
			availIdx[id] = i
		}
	}
	locked := make(map[string]bool, len(locks.Start)+len(locks.End))
	for _, id := range locks.Start {
		locked[id] = true
	}
	for _, id := range locks.End {
		locked[id] = true
	}

	placed := make(map[string]bool, len(available))
	middle := make([]string, 0, len(available))
	for _, id := range previous {
		if placed[id] || locked[id] {
			continue
		}
		if _, ok := availIdx[id]; !ok {
			continue
		}
		placed[id] = true
		middle = append(middle, id)
	}

	for _, id := range available {
		if placed[id] || locked[id] {
			continue
		}
		idx := availIdx[id]
		pos := 0
		for i, m := range middle {
			if availIdx[m] <= idx {
				pos = i + 1
			}
		}
		middle = insertAt(middle, pos, id)
		placed[id] = true
	}

	out := make([]string, 0, len(available))
	seen := make(map[string]bool, len(locks.Start)+len(locks.End))
	for _, id := range locks.Start {
		if _, ok := availIdx[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	out = append(out, middle...)
	for _, id := range locks.End {
		if _, ok := availIdx[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// SameOrder reports whether a and b hold the same ids in the same order.
func SameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MoveColumn moves activeID to the position currently held by overID and
// reconciles the result. It returns the original order and false when either
// id is locked, missing from order, or when they are the same id.
func MoveColumn(order []string, activeID, overID string, locks Locks) ([]string, bool) {
	if activeID == "" || overID == "" || activeID == overID {
		return order, false
	}
	if locks.IsLocked(activeID) || locks.IsLocked(overID) {
		return order, false
	}
	from, to := indexOf(order, activeID), indexOf(order, overID)
	if from < 0 || to < 0 {
		return order, false
	}

	moved := make([]string, 0, len(order))
	moved = append(moved, order[:from]...)
	moved = append(moved, order[from+1:]...)
	moved = insertAt(moved, to, activeID)
	return Reconcile(moved, order, locks), true
}

func indexOf(ids []string, id string) int {
	for i := range ids {
		if ids[i] == id {
			return i
		}
	}
	return -1
}

func insertAt(ids []string, pos int, id string) []string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(ids) {
		pos = len(ids)
	}
	ids = append(ids, "")
	copy(ids[pos+1:], ids[pos:])
	ids[pos] = id
	return ids
}
