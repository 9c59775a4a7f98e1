// Package grid is a headless interactive data grid. It owns column order
// (including drag-to-reorder), row selection, grouping, expansion, sorting,
// filtering and pagination state, and delegates the row computation itself
// to an Engine. Rendering is left to the caller through View.
//
// A Grid is driven from a single event loop and is not safe for concurrent use.
package grid

// DefaultPageSize is the built-in pagination page size when none is given.
const DefaultPageSize = 10

// Options is the caller-facing configuration, handed in again on every render.
// Data, Columns and Engine are required.
type Options struct {
	Data    []Row
	Columns []Column
	Engine  Engine

	// DataKey identifies the data set. When it changes and row selection is
	// not caller-controlled, the grid clears its own selection.
	DataKey string

	ShowPagination          bool
	ShowCheckbox            bool
	EnableRowClickSelection bool

	RowSelection         Source[Selection]
	OnRowSelectionChange func(Selection, []Row)

	EnableGrouping   bool
	Grouping         Source[[]string]
	OnGroupingChange func([]string)

	Expanded         Source[Expansion]
	OnExpandedChange func(Expansion)

	// Setting OnPageChange switches to caller-driven pagination: the grid
	// stops paging rows itself and reports page requests instead.
	TotalCount       int
	CurrentPage      int
	PageSize         int
	SelectedCount    int
	OnPageChange     func(page int)
	OnPageSizeChange func(size int)

	OnColumnOrderChange func([]string)
	// InitialColumnOrder seeds the order on mount, e.g. from saved preferences.
	InitialColumnOrder []string

	RowActions []RowAction

	// Locks overrides DefaultLocks. Columns carrying a Lock marker are added
	// to the matching end.
	Locks *Locks
}

// Grid is one mounted grid instance.
type Grid struct {
	opts    Options
	locks   Locks
	columns []Column

	order          []string
	orderPublished bool
	drag           *DragCoordinator

	selection *SelectionController
	grouping  *Value[[]string]
	expanded  *Value[Expansion]

	sorting []SortSpec
	filters map[string]string
	pending map[string]string

	pageIndex int
	pageSize  int

	model   RowModel
	dataKey string
	mounted bool
}

// New mounts a grid and runs its first render.
func New(opts Options) *Grid {
	g := &Grid{
		drag:      NewDragCoordinator(DefaultLocks()),
		selection: NewSelectionController(),
		grouping:  NewValue([]string{}),
		expanded:  NewValue(Expansion{}),
		filters:   map[string]string{},
		pending:   map[string]string{},
		pageSize:  DefaultPageSize,
	}
	if opts.PageSize > 0 {
		g.pageSize = opts.PageSize
	}
	g.order = append([]string(nil), opts.InitialColumnOrder...)
	g.SetOptions(opts)
	return g
}

// SetOptions re-renders the grid with fresh caller options.
func (g *Grid) SetOptions(opts Options) {
	if g.mounted && opts.DataKey != g.dataKey && !opts.RowSelection.IsExternal() {
		g.selection.Clear()
	}
	g.mounted = true
	g.dataKey = opts.DataKey
	g.opts = opts

	g.selection.Resolve(opts.RowSelection, opts.OnRowSelectionChange)
	g.grouping.Resolve(opts.Grouping, opts.OnGroupingChange)
	g.expanded.Resolve(opts.Expanded, opts.OnExpandedChange)

	g.columns = Compose(opts.Columns, ComposeOptions{
		Selectable: opts.ShowCheckbox,
		RowActions: opts.RowActions,
	})
	g.locks = effectiveLocks(g.columns, opts.Locks)
	g.drag.SetLocks(g.locks)

	g.reconcileOrder(g.order)
	g.refresh()
}

func effectiveLocks(cols []Column, override *Locks) Locks {
	base := DefaultLocks()
	if override != nil {
		base = *override
	}
	out := Locks{
		Start: append([]string(nil), base.Start...),
		End:   append([]string(nil), base.End...),
	}
	for _, col := range cols {
		if out.IsLocked(col.ID) {
			continue
		}
		switch col.Lock {
		case LockStart:
			out.Start = append(out.Start, col.ID)
		case LockEnd:
			out.End = append(out.End, col.ID)
		}
	}
	return out
}

// reconcileOrder repairs prev against the current columns and publishes the
// result when it differs from the order last published.
func (g *Grid) reconcileOrder(prev []string) {
	next := Reconcile(prev, AvailableIDs(g.columns), g.locks)
	if g.orderPublished && SameOrder(next, g.order) {
		return
	}
	g.order = next
	g.orderPublished = true
	if g.opts.OnColumnOrderChange != nil {
		g.opts.OnColumnOrderChange(append([]string(nil), next...))
	}
}

func (g *Grid) refresh() {
	if g.opts.Engine == nil {
		g.model = nil
		return
	}
	var prevGroups []Row
	if g.model != nil {
		prevGroups = g.model.GroupRows()
	}
	g.model = g.opts.Engine.Compute(g.opts.Data, g.columns, g.modelState())
	if g.builtInPagination() && g.pageIndex >= g.model.PageCount() {
		g.pageIndex = g.model.PageCount() - 1
		if g.pageIndex < 0 {
			g.pageIndex = 0
		}
		g.model = g.opts.Engine.Compute(g.opts.Data, g.columns, g.modelState())
	}
	g.dropStaleGroupSelection(prevGroups)
}

// dropStaleGroupSelection forgets selected group rows that the new row model
// no longer produces, e.g. after ungrouping. Leaf ids are kept even when a
// filter hides them.
func (g *Grid) dropStaleGroupSelection(prevGroups []Row) {
	var stale []string
	sel := g.selection.Internal()
	for _, r := range prevGroups {
		if !sel[r.ID] {
			continue
		}
		if _, ok := g.model.RowByID(r.ID); !ok {
			stale = append(stale, r.ID)
		}
	}
	if len(stale) > 0 {
		g.selection.Drop(stale)
	}
}

func (g *Grid) modelState() ModelState {
	filters := make(map[string]string, len(g.filters))
	for k, v := range g.filters {
		filters[k] = v
	}
	return ModelState{
		Sorting:   append([]SortSpec(nil), g.sorting...),
		Filters:   filters,
		Grouping:  g.activeGrouping(),
		Expanded:  g.expanded.Get(),
		Paginate:  g.builtInPagination(),
		PageIndex: g.pageIndex,
		PageSize:  g.pageSize,
	}
}

func (g *Grid) activeGrouping() []string {
	if !g.opts.EnableGrouping {
		return nil
	}
	return append([]string(nil), g.grouping.Get()...)
}

// GroupingActive reports whether rows are currently grouped.
func (g *Grid) GroupingActive() bool {
	return len(g.activeGrouping()) > 0
}

func (g *Grid) lookup(id string) (Row, bool) {
	if g.model == nil {
		return Row{}, false
	}
	return g.model.RowByID(id)
}

// Model returns the current row model. It is nil when no Engine is set.
func (g *Grid) Model() RowModel { return g.model }

// Order returns a copy of the current column order.
func (g *Grid) Order() []string { return append([]string(nil), g.order...) }

// Columns returns the visible composed columns in column order.
func (g *Grid) Columns() []Column {
	out := make([]Column, 0, len(g.order))
	for _, id := range g.order {
		if col, ok := columnByID(g.columns, id); ok {
			out = append(out, col)
		}
	}
	return out
}

// Locks returns the effective locked ids.
func (g *Grid) Locks() Locks { return g.locks }

// Selection returns the effective row selection.
func (g *Grid) Selection() Selection { return g.selection.Get() }

// Grouping returns the effective group-by column ids.
func (g *Grid) Grouping() []string { return append([]string(nil), g.grouping.Get()...) }

// Expanded returns the effective expansion state.
func (g *Grid) Expanded() Expansion { return g.expanded.Get() }

// SetRowSelection applies a selection update.
func (g *Grid) SetRowSelection(u Update[Selection]) {
	g.selection.Apply(u, g.lookup)
}

// ToggleRow flips the selection of one row. Rows the model marks as not
// selectable (leaf rows while grouping) are ignored.
func (g *Grid) ToggleRow(id string) {
	row, ok := g.lookup(id)
	if !ok || !row.CanSelect {
		return
	}
	g.SetRowSelection(toggleOne(id))
}

// ToggleAllRows is the header checkbox action. While grouping it flips every
// group row at once; otherwise it selects or clears every filtered row.
func (g *Grid) ToggleAllRows() {
	grouping := g.GroupingActive()
	ids := selectableIDs(g.model, grouping)
	if grouping {
		g.SetRowSelection(toggleGroupRows(ids))
		return
	}
	g.SetRowSelection(toggleAllLeaves(ids))
}

// HeaderCheck returns the header checkbox state over the rows it toggles.
func (g *Grid) HeaderCheck() HeaderCheckState {
	return checkState(selectableIDs(g.model, g.GroupingActive()), g.selection.Get())
}

// ClickRow handles a click on a row body: group rows expand or collapse,
// leaf rows toggle selection when row-click selection is enabled.
func (g *Grid) ClickRow(id string) {
	row, ok := g.lookup(id)
	if !ok {
		return
	}
	if row.IsGroup {
		g.ToggleExpanded(id)
		return
	}
	if g.opts.EnableRowClickSelection {
		g.ToggleRow(id)
	}
}

// SetGrouping applies a grouping update. It is ignored unless grouping is enabled.
func (g *Grid) SetGrouping(u Update[[]string]) {
	if !g.opts.EnableGrouping {
		return
	}
	g.grouping.Apply(u)
	g.pageIndex = 0
	g.refresh()
}

// ToggleGroupBy adds or removes columnID from the grouping.
func (g *Grid) ToggleGroupBy(columnID string) {
	col, ok := columnByID(g.columns, columnID)
	if !ok || col.Kind != CellData {
		return
	}
	g.SetGrouping(Transform(func(prev []string) []string {
		next := make([]string, 0, len(prev)+1)
		found := false
		for _, id := range prev {
			if id == columnID {
				found = true
				continue
			}
			next = append(next, id)
		}
		if !found {
			next = append(next, columnID)
		}
		return next
	}))
}

// SetExpanded applies an expansion update.
func (g *Grid) SetExpanded(u Update[Expansion]) {
	g.expanded.Apply(u)
	g.refresh()
}

// ToggleExpanded expands or collapses one group row.
func (g *Grid) ToggleExpanded(id string) {
	g.SetExpanded(Transform(func(prev Expansion) Expansion {
		next := make(Expansion, len(prev)+1)
		for k, v := range prev {
			if v {
				next[k] = true
			}
		}
		if next[id] {
			delete(next, id)
		} else {
			next[id] = true
		}
		return next
	}))
}

// ToggleSort cycles a sortable column through ascending, descending and
// unsorted. Sorting by one column replaces any previous sort.
func (g *Grid) ToggleSort(columnID string) {
	col, ok := columnByID(g.columns, columnID)
	if !ok || !col.Sortable {
		return
	}
	switch g.SortDirection(columnID) {
	case SortNone:
		g.sorting = []SortSpec{{ColumnID: columnID}}
	case SortAscending:
		g.sorting = []SortSpec{{ColumnID: columnID, Desc: true}}
	default:
		g.sorting = nil
	}
	g.refresh()
}

// SetSorting replaces the sort specs. Unknown or unsortable columns are dropped.
func (g *Grid) SetSorting(specs []SortSpec) {
	next := make([]SortSpec, 0, len(specs))
	for _, s := range specs {
		if col, ok := columnByID(g.columns, s.ColumnID); ok && col.Sortable {
			next = append(next, s)
		}
	}
	g.sorting = next
	g.refresh()
}

// Sorting returns the current sort specs.
func (g *Grid) Sorting() []SortSpec { return append([]SortSpec(nil), g.sorting...) }

// SortDirection returns the sort state of one column.
func (g *Grid) SortDirection(columnID string) SortDirection {
	for _, s := range g.sorting {
		if s.ColumnID != columnID {
			continue
		}
		if s.Desc {
			return SortDescending
		}
		return SortAscending
	}
	return SortNone
}

// InvokeAction runs the row action actionID against row rowID. It reports
// whether an action ran.
func (g *Grid) InvokeAction(actionID, rowID string) bool {
	row, ok := g.lookup(rowID)
	if !ok || row.IsGroup {
		return false
	}
	for _, a := range g.opts.RowActions {
		if a.ActionID() != actionID || a.OnClick == nil {
			continue
		}
		a.OnClick(row)
		return true
	}
	return false
}

// DragStart begins a column drag. Locked columns are recorded but can never
// be moved.
func (g *Grid) DragStart(columnID string) { g.drag.Start(columnID) }

// DragHover reports the column under the pointer (empty for none).
func (g *Grid) DragHover(columnID string) { g.drag.Hover(columnID) }

// DragCancel ends the drag without reordering.
func (g *Grid) DragCancel() { g.drag.Cancel() }

// DragSession returns the current drag session.
func (g *Grid) DragSession() DragSession { return g.drag.Session() }

// DragEnd ends the drag and, when it produced a move, publishes the new
// column order. It reports whether the order changed.
func (g *Grid) DragEnd() bool {
	next, moved := g.drag.End(g.order)
	if !moved {
		return false
	}
	g.reconcileOrder(next)
	return true
}
