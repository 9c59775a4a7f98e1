package grid

// HeaderCheckState is the tri-state of the selection column header.
type HeaderCheckState int

const (
	Unchecked HeaderCheckState = iota
	Indeterminate
	Checked
)

func (s HeaderCheckState) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

func checkState(ids []string, sel Selection) HeaderCheckState {
	if len(ids) == 0 {
		return Unchecked
	}
	n := 0
	for _, id := range ids {
		if sel[id] {
			n++
		}
	}
	switch {
	case n == 0:
		return Unchecked
	case n == len(ids):
		return Checked
	default:
		return Indeterminate
	}
}

// selectableIDs returns the ids the header checkbox ranges over: the group
// rows while grouping, every filtered leaf row otherwise.
func selectableIDs(model RowModel, grouping bool) []string {
	if model == nil {
		return nil
	}
	if !grouping {
		return model.LeafRowIDs()
	}
	groups := model.GroupRows()
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids
}

// toggleGroupRows sets every group row to the opposite of "all selected" in
// a single update.
func toggleGroupRows(ids []string) Update[Selection] {
	return Transform(func(prev Selection) Selection {
		all := checkState(ids, prev) == Checked
		next := make(Selection, len(prev)+len(ids))
		for id, on := range prev {
			next[id] = on
		}
		for _, id := range ids {
			if all {
				delete(next, id)
			} else {
				next[id] = true
			}
		}
		return next
	})
}

// toggleAllLeaves selects every leaf row, or clears the selection when all
// of them are already selected.
func toggleAllLeaves(ids []string) Update[Selection] {
	return Transform(func(prev Selection) Selection {
		if checkState(ids, prev) == Checked {
			return Selection{}
		}
		next := make(Selection, len(ids))
		for _, id := range ids {
			next[id] = true
		}
		return next
	})
}

func toggleOne(id string) Update[Selection] {
	return Transform(func(prev Selection) Selection {
		next := make(Selection, len(prev)+1)
		for k, on := range prev {
			next[k] = on
		}
		if next[id] {
			delete(next, id)
		} else {
			next[id] = true
		}
		return next
	})
}
