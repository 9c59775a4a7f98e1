package grid

import "fmt"

// HeaderCell is one header in column order.
type HeaderCell struct {
	ColumnID   string
	Label      string
	Kind       CellKind
	Width      int
	Sortable   bool
	Filterable bool
	Sort       SortDirection
	Filter     string

	Draggable  bool
	Dragging   bool
	DropTarget bool

	// Check is set on the selection column header.
	Check HeaderCheckState
}

// Cell is one body cell in column order.
type Cell struct {
	ColumnID   string
	Kind       CellKind
	Text       string
	Checked    bool
	Selectable bool
	Actions    []RowAction
}

// ViewRow is one visible body row.
type ViewRow struct {
	ID       string
	Row      Row
	Depth    int
	IsGroup  bool
	Expanded bool
	Selected bool
	Cells    []Cell
}

// View is everything a renderer needs for one frame.
type View struct {
	Headers    []HeaderCell
	Rows       []ViewRow
	Pagination Pagination
	Drag       DragSession
	Grouping   bool
}

// View builds the header, body and pagination for the current state, with
// cells in column order.
func (g *Grid) View() View {
	cols := g.Columns()
	sel := g.selection.Get()
	expanded := g.expanded.Get()
	grouping := g.GroupingActive()

	v := View{
		Headers:    make([]HeaderCell, 0, len(cols)),
		Pagination: g.Pagination(),
		Drag:       g.drag.Session(),
		Grouping:   grouping,
	}
	for _, col := range cols {
		h := HeaderCell{
			ColumnID:   col.ID,
			Label:      headerLabel(col),
			Kind:       col.Kind,
			Width:      col.Width,
			Sortable:   col.Sortable,
			Filterable: col.Filterable,
			Sort:       g.SortDirection(col.ID),
			Filter:     g.filters[col.ID],
			Draggable:  Draggable(col),
			Dragging:   g.drag.ActiveID() == col.ID,
			DropTarget: g.drag.IsDropTarget(col.ID),
		}
		if col.Kind == CellSelect {
			h.Check = g.HeaderCheck()
		}
		v.Headers = append(v.Headers, h)
	}

	if g.model == nil {
		return v
	}
	rows := g.model.Rows()
	v.Rows = make([]ViewRow, 0, len(rows))
	for _, row := range rows {
		vr := ViewRow{
			ID:       row.ID,
			Row:      row,
			Depth:    row.Depth,
			IsGroup:  row.IsGroup,
			Expanded: row.IsGroup && expanded[row.ID],
			Selected: sel[row.ID],
			Cells:    make([]Cell, 0, len(cols)),
		}
		for _, col := range cols {
			vr.Cells = append(vr.Cells, g.cell(col, row, sel))
		}
		v.Rows = append(v.Rows, vr)
	}
	return v
}

func (g *Grid) cell(col Column, row Row, sel Selection) Cell {
	c := Cell{ColumnID: col.ID, Kind: col.Kind}
	switch col.Kind {
	case CellSelect:
		c.Selectable = row.CanSelect
		c.Checked = row.CanSelect && sel[row.ID]
	case CellActions:
		if !row.IsGroup {
			c.Actions = g.opts.RowActions
			for i, a := range c.Actions {
				if i > 0 {
					c.Text += " "
				}
				c.Text += "[" + actionLabel(a) + "]"
			}
		}
	default:
		if row.IsGroup {
			if row.GroupColumn == col.ID {
				c.Text = fmt.Sprintf("%v (%d)", row.GroupValue, row.LeafCount)
			}
			return c
		}
		c.Text = CellText(col, row)
	}
	return c
}

func headerLabel(col Column) string {
	if col.Header != "" {
		return col.Header
	}
	if col.Kind == CellSelect {
		return ""
	}
	return col.ID
}

func actionLabel(a RowAction) string {
	if a.Label != "" {
		return a.Label
	}
	if a.Icon != "" {
		return a.Icon
	}
	return a.ActionID()
}
