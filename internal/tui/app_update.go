package tui

import (
	"fmt"

	"assetgrid/internal/assetcols"
	"assetgrid/internal/grid"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filterInput.Width = max(10, msg.Width-12)
		return m, nil

	case reloadTickMsg:
		if mt := m.store.ModTime(); mt.After(m.lastModTime) {
			m.lastModTime = mt
			return m, tea.Batch(loadAssetsCmd(m.store), tickReload())
		}
		return m, tickReload()

	case assetsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.assets = msg.assets
		m.dataVersion++
		m.lastModTime = m.store.ModTime()
		m.syncGrid()
		return m, nil

	case assetsDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("deleted %d asset(s)", msg.n)
		return m, loadAssetsCmd(m.store)

	case commitFiltersMsg:
		if m.grid.CommitFilters() {
			m.debug.logf("filters %v", m.grid.Filters())
			m.rowCursor = 0
			m.clampCursors()
		}
		return m, nil

	case tea.BlurMsg:
		// A release can be lost while the terminal is unfocused.
		if m.grid.DragSession().Phase() != grid.DragIdle {
			m.debug.logf("drag cancel (blur) active=%s", m.grid.DragSession().ActiveID())
			m.grid.DragCancel()
		}
		m.mouseDragCol = ""
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		if m.grid.DragSession().Phase() != grid.DragIdle && m.mouseDragCol == "" {
			return m.updateKeyboardDrag(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case m.showHelp && key.Matches(msg, m.keys.Cancel):
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.rowCursor--
	case key.Matches(msg, m.keys.Down):
		m.rowCursor++
	case key.Matches(msg, m.keys.Left):
		m.colCursor--
	case key.Matches(msg, m.keys.Right):
		m.colCursor++

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.cursorRow(); ok {
			m.grid.ToggleRow(row.ID)
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.grid.ToggleAllRows()
	case key.Matches(msg, m.keys.Open):
		if row, ok := m.cursorRow(); ok {
			m.grid.ClickRow(row.ID)
		}

	case key.Matches(msg, m.keys.Sort):
		if col, ok := m.focusedColumn(); ok {
			m.grid.ToggleSort(col.ID)
		}
	case key.Matches(msg, m.keys.Filter):
		col, ok := m.focusedColumn()
		if !ok || !col.Filterable {
			m.status = "column is not filterable"
			return m, nil
		}
		m.filtering = true
		m.filterCol = col.ID
		m.filterInput.SetValue(m.grid.Filter(col.ID))
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()
	case key.Matches(msg, m.keys.Group):
		if col, ok := m.focusedColumn(); ok && col.Kind == grid.CellData {
			m.grid.ToggleGroupBy(col.ID)
			m.rowCursor = 0
		}
	case key.Matches(msg, m.keys.Move):
		col, ok := m.focusedColumn()
		if !ok || !grid.Draggable(col) {
			m.status = "column is pinned"
			return m, nil
		}
		m.grid.DragStart(col.ID)
		m.debug.logf("drag start (keyboard) %s", col.ID)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.grid.NextPage()
		m.rowCursor = 0
	case key.Matches(msg, m.keys.PrevPage):
		m.grid.PrevPage()
		m.rowCursor = 0
	case key.Matches(msg, m.keys.Bigger):
		m.grid.SetPageSize(m.grid.Pagination().PageSize + 5)
	case key.Matches(msg, m.keys.Smaller):
		if size := m.grid.Pagination().PageSize - 5; size > 0 {
			m.grid.SetPageSize(size)
		}

	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.cursorRow(); ok {
			m.grid.InvokeAction(assetcols.DeleteActionID, row.ID)
		}
	case key.Matches(msg, m.keys.DeleteSel):
		ids := m.grid.Selection().IDs()
		for _, id := range ids {
			m.grid.InvokeAction(assetcols.DeleteActionID, id)
		}
	case key.Matches(msg, m.keys.Reload):
		cmd = loadAssetsCmd(m.store)
	}

	m.syncGrid()
	return m, tea.Batch(cmd, m.drainEvents())
}

// drainEvents turns what grid callbacks recorded into status text and commands.
func (m *appModel) drainEvents() tea.Cmd {
	ev := m.events
	if ev.selected > 0 && m.status == "" {
		m.status = fmt.Sprintf("%d selected", ev.selected)
	}
	ev.selected = 0
	if len(ev.deleteIDs) == 0 {
		return nil
	}
	ids := ev.deleteIDs
	ev.deleteIDs = nil
	return deleteAssetsCmd(m.store, ids)
}

func (m appModel) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filtering = false
		m.filterInput.Blur()
		if msg.String() == "esc" {
			m.grid.QueueFilter(m.filterCol, "")
		}
		return m, commitFiltersNextFrame()
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.grid.QueueFilter(m.filterCol, m.filterInput.Value())
	return m, tea.Batch(cmd, commitFiltersNextFrame())
}

// updateKeyboardDrag moves a picked-up column's drop target along the
// column order.
func (m appModel) updateKeyboardDrag(msg tea.KeyMsg) appModel {
	session := m.grid.DragSession()
	order := m.grid.Order()
	target := session.OverID()
	if target == "" {
		target = session.ActiveID()
	}
	idx := indexOf(order, target)

	switch {
	case key.Matches(msg, m.dragKeys.Cancel):
		m.grid.DragCancel()
		m.debug.logf("drag cancel")
		return m
	case key.Matches(msg, m.dragKeys.Drop):
		if m.grid.DragEnd() {
			m.status = "column moved"
			m.colCursor = indexOf(m.grid.Order(), session.ActiveID())
		}
		m.debug.logf("drag end active=%s over=%s", session.ActiveID(), session.OverID())
		m.syncGrid()
		return m
	case msg.String() == "left" || msg.String() == "h":
		idx--
	case msg.String() == "right" || msg.String() == "l":
		idx++
	default:
		return m
	}
	if idx < 0 || idx >= len(order) {
		return m
	}
	m.grid.DragHover(order[idx])
	return m
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.filtering {
		return m, nil
	}
	layout := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		colID := layout.columnAt(msg.X)
		if msg.Y == layout.headerY {
			m.mouseDragCol = colID
			if colID == grid.SelectColumnID {
				m.grid.ToggleAllRows()
				m.mouseDragCol = ""
				m.syncGrid()
				return m, m.drainEvents()
			}
			// Pinned headers still take clicks, they just never start a drag.
			if col, ok := m.columnByID(colID); ok && grid.Draggable(col) {
				m.grid.DragStart(colID)
			}
			return m, nil
		}
		rowIdx := msg.Y - layout.bodyY
		md := m.grid.Model()
		if md == nil || rowIdx < 0 || rowIdx >= len(md.Rows()) {
			return m, nil
		}
		row := md.Rows()[rowIdx]
		m.rowCursor = rowIdx
		if i := indexOf(m.grid.Order(), colID); i >= 0 {
			m.colCursor = i
		}
		switch colID {
		case grid.SelectColumnID:
			m.grid.ToggleRow(row.ID)
		case grid.RowActionsColumnID:
			m.grid.InvokeAction(assetcols.DeleteActionID, row.ID)
		default:
			m.grid.ClickRow(row.ID)
		}
		m.syncGrid()
		return m, m.drainEvents()

	case tea.MouseActionMotion:
		if m.mouseDragCol == "" {
			return m, nil
		}
		if msg.Y == layout.headerY {
			m.grid.DragHover(layout.columnAt(msg.X))
		} else {
			m.grid.DragHover("")
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.mouseDragCol == "" {
			return m, nil
		}
		pressed := m.mouseDragCol
		m.mouseDragCol = ""
		session := m.grid.DragSession()
		if m.grid.DragEnd() {
			m.status = "column moved"
			m.debug.logf("drag end (mouse) active=%s over=%s", session.ActiveID(), session.OverID())
		} else if msg.Y == layout.headerY && layout.columnAt(msg.X) == pressed {
			// Press and release on the same header is a click.
			m.grid.ToggleSort(pressed)
		}
		m.syncGrid()
		return m, nil
	}
	return m, nil
}

func (m appModel) columnByID(id string) (grid.Column, bool) {
	for _, col := range m.grid.Columns() {
		if col.ID == id {
			return col, true
		}
	}
	return grid.Column{}, false
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
