package grid_test

import (
	"testing"

	"assetgrid/internal/grid"
	"assetgrid/internal/rowmodel"

	"github.com/stretchr/testify/require"
)

func fixtureRows() []grid.Row {
	mk := func(id, name, dept string, cost int) grid.Row {
		return grid.Row{ID: id, Data: map[string]any{"name": name, "dept": dept, "cost": cost}}
	}
	return []grid.Row{
		mk("a1", "Pump", "Ops", 30),
		mk("a2", "Valve", "Ops", 10),
		mk("a3", "Crane", "Yard", 50),
		mk("a4", "Forklift", "Yard", 20),
		mk("a5", "Laptop", "IT", 5),
	}
}

func fixtureColumns() []grid.Column {
	return []grid.Column{
		{AccessorKey: "name", Header: "Name", Sortable: true, Filterable: true},
		{AccessorKey: "dept", Header: "Department", Sortable: true, Filterable: true},
		{AccessorKey: "cost", Header: "Cost", Sortable: true},
	}
}

func baseOptions() grid.Options {
	return grid.Options{
		Data:         fixtureRows(),
		Columns:      fixtureColumns(),
		Engine:       rowmodel.New(),
		ShowCheckbox: true,
		RowActions:   []grid.RowAction{{Type: "edit", Label: "Edit"}},
	}
}

func TestGrid_MountPublishesReconciledOrder(t *testing.T) {
	var orders [][]string
	opts := baseOptions()
	opts.OnColumnOrderChange = func(o []string) { orders = append(orders, o) }

	g := grid.New(opts)
	require.Equal(t, [][]string{{"select", "name", "dept", "cost", "row-actions"}}, orders)

	// Re-render with identical columns: no new notification.
	g.SetOptions(opts)
	require.Len(t, orders, 1)
}

func TestGrid_InitialOrderRestored(t *testing.T) {
	opts := baseOptions()
	opts.InitialColumnOrder = []string{"cost", "stale", "name"}
	g := grid.New(opts)
	require.Equal(t, []string{"select", "cost", "name", "dept", "row-actions"}, g.Order())
}

func TestGrid_DragMiddleReorder(t *testing.T) {
	var last []string
	opts := baseOptions()
	opts.OnColumnOrderChange = func(o []string) { last = o }
	g := grid.New(opts)

	g.DragStart("cost")
	g.DragHover("name")
	require.Equal(t, grid.DragHovering, g.DragSession().Phase())
	require.True(t, g.DragEnd())

	want := []string{"select", "cost", "name", "dept", "row-actions"}
	require.Equal(t, want, g.Order())
	require.Equal(t, want, last)
	require.Equal(t, grid.DragIdle, g.DragSession().Phase())

	v := g.View()
	ids := make([]string, 0, len(v.Headers))
	for _, h := range v.Headers {
		ids = append(ids, h.ColumnID)
	}
	require.Equal(t, want, ids)
	require.Equal(t, "cost", v.Rows[0].Cells[1].ColumnID)
}

func TestGrid_DragLockedColumnLeavesOrderUnchanged(t *testing.T) {
	calls := 0
	opts := baseOptions()
	opts.OnColumnOrderChange = func([]string) { calls++ }
	g := grid.New(opts)
	before := g.Order()

	g.DragStart("select")
	g.DragHover("dept")
	require.False(t, g.DragEnd())
	require.Equal(t, before, g.Order())
	require.Equal(t, 1, calls)
	require.Equal(t, grid.DragIdle, g.DragSession().Phase())
}

func TestGrid_DragCancel(t *testing.T) {
	g := grid.New(baseOptions())
	before := g.Order()
	g.DragStart("name")
	g.DragHover("cost")
	require.True(t, g.View().Headers[3].DropTarget)
	g.DragCancel()
	require.Equal(t, before, g.Order())
	require.Equal(t, grid.DragIdle, g.DragSession().Phase())
}

func TestGrid_NewColumnAppearsAfterDrag(t *testing.T) {
	opts := baseOptions()
	g := grid.New(opts)
	g.DragStart("cost")
	g.DragHover("name")
	require.True(t, g.DragEnd())

	opts.Columns = append(fixtureColumns(), grid.Column{AccessorKey: "location", Header: "Location"})
	g.SetOptions(opts)
	order := g.Order()
	require.Equal(t, "select", order[0])
	require.Equal(t, "row-actions", order[len(order)-1])
	require.ElementsMatch(t, []string{"select", "cost", "name", "dept", "location", "row-actions"}, order)
	require.Equal(t, []string{"select", "cost", "name", "dept", "location", "row-actions"}, order)
}

func TestGrid_HiddenColumnDroppedFromOrder(t *testing.T) {
	opts := baseOptions()
	g := grid.New(opts)
	cols := fixtureColumns()
	cols[1].Hidden = true
	opts.Columns = cols
	g.SetOptions(opts)
	require.Equal(t, []string{"select", "name", "cost", "row-actions"}, g.Order())
}

func TestGrid_GroupingHeaderToggleIsSingleUpdate(t *testing.T) {
	var calls int
	var lastRows []grid.Row
	opts := baseOptions()
	opts.EnableGrouping = true
	opts.OnRowSelectionChange = func(_ grid.Selection, rows []grid.Row) {
		calls++
		lastRows = rows
	}
	g := grid.New(opts)
	g.ToggleGroupBy("dept")
	require.True(t, g.GroupingActive())

	groups := g.Model().GroupRows()
	require.Len(t, groups, 3)

	g.ToggleRow(groups[0].ID)
	g.ToggleRow(groups[1].ID)
	require.Equal(t, grid.Indeterminate, g.HeaderCheck())
	calls = 0

	g.ToggleAllRows()
	require.Equal(t, 1, calls, "one batched update, not one per group")
	require.Equal(t, grid.Checked, g.HeaderCheck())
	require.Len(t, lastRows, 3)
	for _, r := range lastRows {
		require.True(t, r.IsGroup)
	}

	g.ToggleAllRows()
	require.Equal(t, grid.Unchecked, g.HeaderCheck())
	require.Empty(t, g.Selection())
}

func TestGrid_UngroupingForgetsSelectedGroupRows(t *testing.T) {
	opts := baseOptions()
	opts.EnableGrouping = true
	opts.ShowPagination = true
	g := grid.New(opts)

	g.ToggleGroupBy("dept")
	g.ToggleAllRows()
	require.Equal(t, 3, g.Pagination().SelectedCount)

	g.ToggleGroupBy("dept")
	require.False(t, g.GroupingActive())
	require.Equal(t, grid.Unchecked, g.HeaderCheck())
	require.Zero(t, g.Pagination().SelectedCount)
	require.Empty(t, g.Selection())
}

func TestGrid_NestingKeepsSelectedGroupThatStillExists(t *testing.T) {
	opts := baseOptions()
	opts.EnableGrouping = true
	opts.Columns = append(fixtureColumns(), grid.Column{AccessorKey: "site", Header: "Site"})
	g := grid.New(opts)

	g.ToggleGroupBy("dept")
	g.ToggleRow("dept:Ops")
	g.ToggleGroupBy("site")
	require.Equal(t, grid.Selection{"dept:Ops": true}, g.Selection())
}

func TestGrid_FilterKeepsHiddenLeafSelection(t *testing.T) {
	g := grid.New(baseOptions())
	g.ToggleRow("a1")
	g.SetFilter("dept", "yard")
	require.Equal(t, grid.Selection{"a1": true}, g.Selection())
}

func TestGrid_GroupingLeafRowsNotSelectable(t *testing.T) {
	opts := baseOptions()
	opts.EnableGrouping = true
	g := grid.New(opts)
	g.ToggleGroupBy("dept")
	g.ToggleExpanded("dept:Ops")

	v := g.View()
	var leaf grid.ViewRow
	for _, r := range v.Rows {
		if !r.IsGroup {
			leaf = r
			break
		}
	}
	require.Equal(t, "a1", leaf.ID)
	require.False(t, leaf.Cells[0].Selectable)

	g.ToggleRow("a1")
	require.Empty(t, g.Selection())

	// The group row shows its value and leaf count in the grouped column.
	require.Equal(t, "Ops (2)", v.Rows[0].Cells[indexOfColumn(v, "dept")].Text)
}

func TestGrid_UngroupedToggleAllSelectsEveryFilteredRow(t *testing.T) {
	opts := baseOptions()
	opts.ShowPagination = true
	opts.PageSize = 2
	g := grid.New(opts)

	g.ToggleAllRows()
	require.Equal(t, grid.Checked, g.HeaderCheck())
	require.Equal(t, 5, g.Selection().Count(), "selection spans pages")

	g.ToggleAllRows()
	require.Equal(t, 0, g.Selection().Count())
}

func TestGrid_ControlledSelection(t *testing.T) {
	var published []grid.Selection
	opts := baseOptions()
	opts.RowSelection = grid.External(grid.Selection{"a1": true})
	opts.OnRowSelectionChange = func(s grid.Selection, _ []grid.Row) { published = append(published, s) }
	g := grid.New(opts)

	g.ToggleRow("a2")
	require.Equal(t, grid.Selection{"a1": true}, g.Selection(), "caller value renders")
	require.Equal(t, []grid.Selection{{"a1": true, "a2": true}}, published)

	// Dropping control falls back to the last internal value, not to empty.
	opts.RowSelection = grid.Internal[grid.Selection]()
	g.SetOptions(opts)
	require.Equal(t, grid.Selection{"a1": true, "a2": true}, g.Selection())
}

func TestGrid_DataKeyChangeClearsUncontrolledSelection(t *testing.T) {
	opts := baseOptions()
	opts.DataKey = "v1"
	g := grid.New(opts)
	g.ToggleRow("a1")
	require.Equal(t, 1, g.Selection().Count())

	g.SetOptions(opts)
	require.Equal(t, 1, g.Selection().Count())

	opts.DataKey = "v2"
	g.SetOptions(opts)
	require.Equal(t, 0, g.Selection().Count())
}

func TestGrid_RowClickSelection(t *testing.T) {
	opts := baseOptions()
	g := grid.New(opts)
	g.ClickRow("a1")
	require.Equal(t, 0, g.Selection().Count())

	opts.EnableRowClickSelection = true
	g.SetOptions(opts)
	g.ClickRow("a1")
	require.Equal(t, grid.Selection{"a1": true}, g.Selection())
}

func TestGrid_SortCycle(t *testing.T) {
	g := grid.New(baseOptions())
	g.ToggleSort("cost")
	require.Equal(t, grid.SortAscending, g.SortDirection("cost"))
	require.Equal(t, "a5", g.View().Rows[0].ID)

	g.ToggleSort("cost")
	require.Equal(t, grid.SortDescending, g.SortDirection("cost"))
	require.Equal(t, "a3", g.View().Rows[0].ID)

	g.ToggleSort("cost")
	require.Equal(t, grid.SortNone, g.SortDirection("cost"))
	require.Equal(t, "a1", g.View().Rows[0].ID)

	g.ToggleSort("select")
	require.Empty(t, g.Sorting())
}

func TestGrid_FilterCommitIsDeferred(t *testing.T) {
	g := grid.New(baseOptions())
	g.QueueFilter("dept", "yard")
	require.True(t, g.HasPendingFilters())
	require.Len(t, g.View().Rows, 5, "queued filter does not touch the row model")

	require.True(t, g.CommitFilters())
	require.False(t, g.HasPendingFilters())
	require.Len(t, g.View().Rows, 2)
	require.Equal(t, "yard", g.Filter("dept"))

	require.Equal(t, []string{"IT", "Ops", "Yard"}, g.FacetedValues("dept"))

	require.True(t, g.SetFilter("dept", ""))
	require.Len(t, g.View().Rows, 5)

	g.QueueFilter("cost", "5")
	require.False(t, g.HasPendingFilters(), "cost is not filterable")
}

func TestGrid_BuiltInPagination(t *testing.T) {
	var sizes []int
	opts := baseOptions()
	opts.ShowPagination = true
	opts.PageSize = 2
	opts.OnPageSizeChange = func(n int) { sizes = append(sizes, n) }
	g := grid.New(opts)

	p := g.Pagination()
	require.False(t, p.External)
	require.Equal(t, 3, p.PageCount)
	require.Equal(t, 5, p.TotalCount)
	require.Len(t, g.View().Rows, 2)

	g.NextPage()
	g.NextPage()
	g.NextPage()
	require.Equal(t, 2, g.Pagination().Page, "clamped to last page")
	require.Len(t, g.View().Rows, 1)

	g.SetPageSize(5)
	require.Equal(t, 0, g.Pagination().Page)
	require.Equal(t, 1, g.Pagination().PageCount)
	require.Equal(t, []int{5}, sizes)
}

func TestGrid_ExternalPagination(t *testing.T) {
	var pages []int
	opts := baseOptions()
	opts.ShowPagination = true
	opts.TotalCount = 42
	opts.CurrentPage = 1
	opts.PageSize = 10
	opts.SelectedCount = 3
	opts.OnPageChange = func(p int) { pages = append(pages, p) }
	g := grid.New(opts)

	p := g.Pagination()
	require.True(t, p.External)
	require.Equal(t, 5, p.PageCount)
	require.Equal(t, 3, p.SelectedCount)
	require.Len(t, g.View().Rows, 5, "caller pages the data itself")

	g.NextPage()
	g.PrevPage()
	require.Equal(t, []int{2, 0}, pages)
}

func TestGrid_RowActions(t *testing.T) {
	var clicked []string
	opts := baseOptions()
	opts.RowActions = []grid.RowAction{
		{Type: "edit", Label: "Edit", OnClick: func(r grid.Row) { clicked = append(clicked, "edit:"+r.ID) }},
		{ID: "rm", Type: "delete", Icon: "x", OnClick: func(r grid.Row) { clicked = append(clicked, "rm:"+r.ID) }},
	}
	g := grid.New(opts)

	require.True(t, g.InvokeAction("rm", "a2"))
	require.True(t, g.InvokeAction("edit", "a1"))
	require.False(t, g.InvokeAction("nope", "a1"))
	require.False(t, g.InvokeAction("edit", "missing"))
	require.Equal(t, []string{"rm:a2", "edit:a1"}, clicked)

	v := g.View()
	last := v.Rows[0].Cells[len(v.Rows[0].Cells)-1]
	require.Equal(t, grid.CellActions, last.Kind)
	require.Equal(t, "[Edit] [x]", last.Text)
}

func TestGrid_ControlledGrouping(t *testing.T) {
	var published [][]string
	opts := baseOptions()
	opts.EnableGrouping = true
	opts.Grouping = grid.External([]string{"dept"})
	opts.OnGroupingChange = func(g []string) { published = append(published, g) }
	g := grid.New(opts)
	require.True(t, g.GroupingActive())

	g.ToggleGroupBy("dept")
	require.Equal(t, []string{"dept"}, g.Grouping(), "caller still groups by dept")
	require.Equal(t, [][]string{{}}, published)
}

func TestGrid_GroupingDisabledIgnoresUpdates(t *testing.T) {
	g := grid.New(baseOptions())
	g.ToggleGroupBy("dept")
	require.False(t, g.GroupingActive())
	require.Empty(t, g.Grouping())
}

func indexOfColumn(v grid.View, id string) int {
	for i, h := range v.Headers {
		if h.ColumnID == id {
			return i
		}
	}
	return -1
}
