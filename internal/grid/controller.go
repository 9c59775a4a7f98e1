package grid

import "sort"

// SelectionController is the row-selection flavor of Value: updates are
// normalized, unchanged selections do not notify, and the callback receives
// the selected rows resolved through the row model.
type SelectionController struct {
	value    *Value[Selection]
	onChange func(Selection, []Row)
}

func NewSelectionController() *SelectionController {
	return &SelectionController{value: NewValue(Selection{})}
}

// Resolve installs this render's source and callback. External selections are
// normalized once here so Get hands out a stable reference.
func (c *SelectionController) Resolve(src Source[Selection], onChange func(Selection, []Row)) {
	if src.IsExternal() {
		src = External(Normalize(src.value))
	}
	c.value.Resolve(src, nil)
	c.onChange = onChange
}

// Get returns the effective, normalized selection.
func (c *SelectionController) Get() Selection { return c.value.Get() }

func (c *SelectionController) Controlled() bool { return c.value.Controlled() }

// Internal returns the grid-owned selection.
func (c *SelectionController) Internal() Selection { return c.value.Internal() }

// Clear empties the grid-owned selection without notifying.
func (c *SelectionController) Clear() { c.value.Reset(Selection{}) }

// Drop removes ids from the grid-owned selection without notifying.
func (c *SelectionController) Drop(ids []string) {
	prev := c.value.Internal()
	next := make(Selection, len(prev))
	for id, on := range prev {
		next[id] = on
	}
	for _, id := range ids {
		delete(next, id)
	}
	c.value.Reset(next)
}

// Apply computes the next selection from the effective one. The callback
// fires only when the normalized selection actually changed; ids that the
// row model cannot resolve are left out of the rows passed to it.
func (c *SelectionController) Apply(u Update[Selection], lookup func(id string) (Row, bool)) Selection {
	prev := c.value.Get()
	next := Normalize(u.Apply(prev))
	c.value.Reset(next)
	if SelectionEqual(prev, next) || c.onChange == nil {
		return next
	}

	ids := next.IDs()
	sort.Strings(ids)
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		if lookup == nil {
			break
		}
		if row, ok := lookup(id); ok {
			rows = append(rows, row)
		}
	}
	c.onChange(next, rows)
	return next
}
