package grid

import "fmt"

// SortDirection is the sort state of a single column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// SortSpec sorts by one column. Earlier specs take precedence.
type SortSpec struct {
	ColumnID string `json:"id"`
	Desc     bool   `json:"desc,omitempty"`
}

// Expansion is the set of expanded group row ids.
type Expansion map[string]bool

// ModelState is everything the row-model engine needs besides rows and columns.
type ModelState struct {
	Sorting  []SortSpec
	Filters  map[string]string
	Grouping []string
	Expanded Expansion

	Paginate  bool
	PageIndex int
	PageSize  int
}

// RowModel is the computed view of the data after filtering, sorting,
// grouping, expansion and pagination.
type RowModel interface {
	// Rows returns the visible rows in display order.
	Rows() []Row
	// RowByID looks up any row (leaf or group) known to the model, across all pages.
	RowByID(id string) (Row, bool)
	// GroupRows returns every group row produced by grouping, across all pages.
	GroupRows() []Row
	// LeafRowIDs returns the ids of all filtered leaf rows, across all pages.
	LeafRowIDs() []string
	// FacetedValues returns the distinct display values of a column.
	FacetedValues(columnID string) []string
	// RowCount is the number of displayable rows before pagination.
	RowCount() int
	// PageCount is at least 1.
	PageCount() int
}

// Engine computes row models. The grid treats it as a black box.
type Engine interface {
	Compute(data []Row, cols []Column, st ModelState) RowModel
}
