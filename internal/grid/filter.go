package grid

import "strings"

// QueueFilter records a filter value for columnID without touching the row
// model. The value takes effect on the next CommitFilters, which callers run
// on the following frame so table state is never changed mid-render.
func (g *Grid) QueueFilter(columnID, value string) {
	col, ok := columnByID(g.columns, columnID)
	if !ok || !col.Filterable {
		return
	}
	g.pending[columnID] = value
}

// HasPendingFilters reports whether CommitFilters has work to do.
func (g *Grid) HasPendingFilters() bool { return len(g.pending) > 0 }

// CommitFilters applies queued filter values and returns to the first page.
// It reports whether any filter changed.
func (g *Grid) CommitFilters() bool {
	if len(g.pending) == 0 {
		return false
	}
	changed := false
	for id, v := range g.pending {
		v = strings.TrimSpace(v)
		if g.filters[id] == v {
			continue
		}
		changed = true
		if v == "" {
			delete(g.filters, id)
			continue
		}
		g.filters[id] = v
	}
	g.pending = map[string]string{}
	if !changed {
		return false
	}
	g.pageIndex = 0
	g.refresh()
	return true
}

// SetFilter queues and commits a filter value at once.
func (g *Grid) SetFilter(columnID, value string) bool {
	g.QueueFilter(columnID, value)
	return g.CommitFilters()
}

// Filter returns the committed filter value of columnID.
func (g *Grid) Filter(columnID string) string { return g.filters[columnID] }

// Filters returns a copy of all committed filter values.
func (g *Grid) Filters() map[string]string {
	out := make(map[string]string, len(g.filters))
	for k, v := range g.filters {
		out[k] = v
	}
	return out
}

// FacetedValues returns the distinct values of columnID for filter choices.
func (g *Grid) FacetedValues(columnID string) []string {
	if g.model == nil {
		return nil
	}
	return g.model.FacetedValues(columnID)
}
