package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Lock pins a column to one end of the column order.
type Lock int

const (
	LockNone Lock = iota
	LockStart
	LockEnd
)

// CellKind tells the render layer how to draw a column's cells.
type CellKind int

const (
	CellData CellKind = iota
	CellSelect
	CellActions
)

// Column describes one grid column. Callers hand fresh descriptors to every
// render; the grid never mutates them.
//
// Column ids must be unique within a grid. Two columns resolving to the same
// id make ordering and selection ambiguous.
type Column struct {
	ID          string
	AccessorKey string
	Header      string

	Sortable   bool
	Filterable bool
	Hideable   bool
	Hidden     bool
	Lock       Lock
	Width      int

	Kind CellKind

	// Value extracts the raw value used for sorting, filtering and grouping.
	// When nil, Row.Data[AccessorKey] is used.
	Value func(Row) any
	// Cell renders the display text. When nil, the value is formatted with %v.
	Cell func(Row) string
}

// Row is one record handed to (or produced by) the row model.
type Row struct {
	ID   string
	Data map[string]any
	// Source is the caller's original object, passed back through callbacks.
	Source any

	IsGroup     bool
	CanSelect   bool
	Depth       int
	GroupColumn string
	GroupValue  any
	LeafCount   int
	SubRows     []Row
}

// RowAction is a per-row command shown in the row-actions column.
type RowAction struct {
	ID      string
	Type    string
	Label   string
	Icon    string
	OnClick func(Row)
}

// ActionID returns the action's id, falling back to its type.
func (a RowAction) ActionID() string {
	if id := strings.TrimSpace(a.ID); id != "" {
		return id
	}
	return strings.TrimSpace(a.Type)
}

// ResolveColumnID returns the column's id: the explicit id, else the accessor
// key, else a placeholder derived from the column's position.
func ResolveColumnID(col Column, index int) string {
	if id := strings.TrimSpace(col.ID); id != "" {
		return id
	}
	if key := strings.TrimSpace(col.AccessorKey); key != "" {
		return key
	}
	return "col-" + strconv.Itoa(index)
}

// ComposeOptions controls which synthetic columns Compose adds.
type ComposeOptions struct {
	Selectable bool
	RowActions []RowAction
}

// Compose returns the effective column list: the data columns with resolved
// ids, prefixed by the selection column when rows are selectable and
// suffixed by the row-actions column when any row action is configured.
func Compose(data []Column, opts ComposeOptions) []Column {
	out := make([]Column, 0, len(data)+2)
	if opts.Selectable {
		out = append(out, Column{
			ID:   SelectColumnID,
			Lock: LockStart,
			Kind: CellSelect,
		})
	}
	for i, col := range data {
		col.ID = ResolveColumnID(col, i)
		out = append(out, col)
	}
	if len(opts.RowActions) > 0 {
		out = append(out, Column{
			ID:     RowActionsColumnID,
			Header: "Actions",
			Lock:   LockEnd,
			Kind:   CellActions,
		})
	}
	return out
}

// AvailableIDs returns the ids of the visible columns in cols.
func AvailableIDs(cols []Column) []string {
	ids := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.Hidden {
			continue
		}
		ids = append(ids, col.ID)
	}
	return ids
}

// Draggable reports whether the render layer may start a drag on col.
func Draggable(col Column) bool {
	return col.Lock == LockNone && col.Kind == CellData
}

// CellValue returns the raw value of col for row.
func CellValue(col Column, row Row) any {
	if col.Value != nil {
		return col.Value(row)
	}
	key := col.AccessorKey
	if key == "" {
		key = col.ID
	}
	return row.Data[key]
}

// CellText returns the display text of col for row.
func CellText(col Column, row Row) string {
	if col.Cell != nil {
		return col.Cell(row)
	}
	v := CellValue(col, row)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func columnByID(cols []Column, id string) (Column, bool) {
	for _, col := range cols {
		if col.ID == id {
			return col, true
		}
	}
	return Column{}, false
}
