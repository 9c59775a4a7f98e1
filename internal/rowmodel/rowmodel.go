// Package rowmodel is an in-memory grid.Engine: it filters, sorts, groups,
// expands and paginates rows, and collects faceted values for filter choices.
package rowmodel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"assetgrid/internal/grid"
)

// Engine computes row models over in-memory rows.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

var _ grid.Engine = (*Engine)(nil)

// Model is the computed row model.
type Model struct {
	rows      []grid.Row
	byID      map[string]grid.Row
	groupRows []grid.Row
	leafIDs   []string
	facets    map[string][]string
	rowCount  int
	pageCount int
}

var _ grid.RowModel = (*Model)(nil)

func (m *Model) Rows() []grid.Row      { return m.rows }
func (m *Model) GroupRows() []grid.Row { return m.groupRows }
func (m *Model) LeafRowIDs() []string  { return m.leafIDs }
func (m *Model) RowCount() int         { return m.rowCount }
func (m *Model) PageCount() int        { return m.pageCount }

func (m *Model) RowByID(id string) (grid.Row, bool) {
	r, ok := m.byID[id]
	return r, ok
}

func (m *Model) FacetedValues(columnID string) []string {
	return m.facets[columnID]
}

// Compute implements grid.Engine.
func (e *Engine) Compute(data []grid.Row, cols []grid.Column, st grid.ModelState) grid.RowModel {
	dataCols := make([]grid.Column, 0, len(cols))
	colByID := make(map[string]grid.Column, len(cols))
	for _, c := range cols {
		if c.Kind != grid.CellData {
			continue
		}
		dataCols = append(dataCols, c)
		colByID[c.ID] = c
	}

	grouping := make([]string, 0, len(st.Grouping))
	for _, id := range st.Grouping {
		if _, ok := colByID[id]; ok {
			grouping = append(grouping, id)
		}
	}

	m := &Model{
		byID:   make(map[string]grid.Row, len(data)),
		facets: facets(data, dataCols, colByID, st.Filters),
	}

	leaves := filterRows(data, colByID, st.Filters)
	sortRows(leaves, colByID, st.Sorting)

	m.leafIDs = make([]string, 0, len(leaves))
	for i := range leaves {
		leaves[i].Depth = len(grouping)
		leaves[i].CanSelect = len(grouping) == 0
		leaves[i].IsGroup = false
		m.leafIDs = append(m.leafIDs, leaves[i].ID)
		m.byID[leaves[i].ID] = leaves[i]
	}

	var flat []grid.Row
	if len(grouping) == 0 {
		flat = leaves
	} else {
		groups := groupRows(leaves, colByID, grouping, 0, "", st.Sorting)
		m.collectGroups(groups)
		flat = flatten(groups, st.Expanded)
	}

	m.rowCount = len(flat)
	m.pageCount = 1
	m.rows = flat
	if st.Paginate {
		size := st.PageSize
		if size <= 0 {
			size = grid.DefaultPageSize
		}
		m.pageCount = (len(flat) + size - 1) / size
		if m.pageCount < 1 {
			m.pageCount = 1
		}
		page := st.PageIndex
		if page < 0 {
			page = 0
		}
		start := page * size
		if start > len(flat) {
			start = len(flat)
		}
		end := start + size
		if end > len(flat) {
			end = len(flat)
		}
		m.rows = flat[start:end]
	}
	return m
}

func (m *Model) collectGroups(groups []grid.Row) {
	for _, g := range groups {
		m.groupRows = append(m.groupRows, g)
		m.byID[g.ID] = g
		if len(g.SubRows) > 0 && g.SubRows[0].IsGroup {
			m.collectGroups(g.SubRows)
		}
	}
}

func filterRows(data []grid.Row, colByID map[string]grid.Column, filters map[string]string) []grid.Row {
	out := make([]grid.Row, 0, len(data))
	for _, row := range data {
		if matches(row, colByID, filters, "") {
			out = append(out, row)
		}
	}
	return out
}

// matches reports whether row passes every filter except the one on skip.
func matches(row grid.Row, colByID map[string]grid.Column, filters map[string]string, skip string) bool {
	for id, want := range filters {
		if id == skip {
			continue
		}
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		col, ok := colByID[id]
		if !ok {
			continue
		}
		got := strings.ToLower(grid.CellText(col, row))
		if !strings.Contains(got, want) {
			return false
		}
	}
	return true
}

// facets collects each column's distinct values over the rows that pass the
// other columns' filters, so a column's own filter never hides its choices.
func facets(data []grid.Row, cols []grid.Column, colByID map[string]grid.Column, filters map[string]string) map[string][]string {
	out := make(map[string][]string, len(cols))
	for _, col := range cols {
		if !col.Filterable {
			continue
		}
		seen := map[string]bool{}
		vals := []string{}
		for _, row := range data {
			if !matches(row, colByID, filters, col.ID) {
				continue
			}
			v := grid.CellText(col, row)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			vals = append(vals, v)
		}
		sort.Strings(vals)
		out[col.ID] = vals
	}
	return out
}

func sortRows(rows []grid.Row, colByID map[string]grid.Column, specs []grid.SortSpec) {
	if len(specs) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, s := range specs {
			col, ok := colByID[s.ColumnID]
			if !ok {
				continue
			}
			a, b := grid.CellValue(col, rows[i]), grid.CellValue(col, rows[j])
			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if a == nil || b == nil {
				return c < 0
			}
			if s.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders nils after everything else and compares numbers, times and bools by
// value; anything else compares by its case-folded text.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// groupRows buckets rows by grouping[level], recursing for deeper levels.
// Groups appear in first-seen order of the (already sorted) rows, unless the
// grouped column itself is sorted, in which case groups follow that sort.
func groupRows(rows []grid.Row, colByID map[string]grid.Column, grouping []string, level int, parentID string, specs []grid.SortSpec) []grid.Row {
	colID := grouping[level]
	col := colByID[colID]

	type bucket struct {
		value any
		key   string
		rows  []grid.Row
	}
	var buckets []*bucket
	byKey := map[string]*bucket{}
	for _, r := range rows {
		v := grid.CellValue(col, r)
		key := grid.CellText(col, r)
		b, ok := byKey[key]
		if !ok {
			b = &bucket{value: v, key: key}
			byKey[key] = b
			buckets = append(buckets, b)
		}
		b.rows = append(b.rows, r)
	}
	for _, s := range specs {
		if s.ColumnID != colID {
			continue
		}
		desc := s.Desc
		sort.SliceStable(buckets, func(i, j int) bool {
			c := compareValues(buckets[i].value, buckets[j].value)
			if desc {
				return c > 0
			}
			return c < 0
		})
		break
	}

	out := make([]grid.Row, 0, len(buckets))
	for _, b := range buckets {
		id := colID + ":" + b.key
		if parentID != "" {
			id = parentID + ">" + id
		}
		g := grid.Row{
			ID:          id,
			Data:        map[string]any{colID: b.value},
			IsGroup:     true,
			CanSelect:   true,
			Depth:       level,
			GroupColumn: colID,
			GroupValue:  b.key,
			LeafCount:   len(b.rows),
		}
		if level+1 < len(grouping) {
			g.SubRows = groupRows(b.rows, colByID, grouping, level+1, id, specs)
		} else {
			g.SubRows = b.rows
		}
		out = append(out, g)
	}
	return out
}

func flatten(groups []grid.Row, expanded grid.Expansion) []grid.Row {
	var out []grid.Row
	for _, g := range groups {
		out = append(out, g)
		if !expanded[g.ID] {
			continue
		}
		if len(g.SubRows) > 0 && g.SubRows[0].IsGroup {
			out = append(out, flatten(g.SubRows, expanded)...)
			continue
		}
		out = append(out, g.SubRows...)
	}
	return out
}
