package tui

import (
	"context"
	"strconv"
	"time"

	"assetgrid/internal/assetcols"
	"assetgrid/internal/grid"
	"assetgrid/internal/model"
	"assetgrid/internal/rowmodel"
	"assetgrid/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type reloadTickMsg struct{}

// commitFiltersMsg arrives one frame after a filter keystroke. Filters are
// queued while typing and only reach the row model here.
type commitFiltersMsg struct{}

type assetsLoadedMsg struct {
	assets []model.Asset
	err    error
}

type assetsDeletedMsg struct {
	n   int
	err error
}

// gridEvents collects what grid callbacks report during one Update. The
// model is copied by value on every message, so callbacks write through this
// pointer instead of into the model.
type gridEvents struct {
	deleteIDs []string
	selected  int
}

type appModel struct {
	store  store.Store
	prefs  *store.GridState
	engine grid.Engine
	now    func() time.Time

	assets      []model.Asset
	dataVersion int
	grid        *grid.Grid
	events      *gridEvents
	grouping    *[]string

	width  int
	height int

	rowCursor int
	colCursor int

	keys     keyMap
	dragKeys dragKeyMap
	help     help.Model
	showHelp bool
	pages    paginator.Model

	filtering   bool
	filterCol   string
	filterInput textinput.Model

	// mouseDragCol is the header the mouse went down on, until release.
	mouseDragCol string

	status string
	err    error

	lastModTime time.Time
	debug       debugLogger
}

func newAppModel(s store.Store, assets []model.Asset) appModel {
	prefs, err := s.LoadGridState()
	if err != nil || prefs == nil {
		prefs = &store.GridState{Version: 1}
	}
	saved := prefs.Prefs(assetcols.GridName)

	m := appModel{
		store:    s,
		prefs:    prefs,
		engine:   rowmodel.New(),
		now:      time.Now,
		assets:   assets,
		events:   &gridEvents{},
		grouping: new([]string),
		keys:     newKeyMap(),
		dragKeys: newDragKeyMap(),
		help:     help.New(),
		debug:    newDebugLogger(),
	}
	*m.grouping = append([]string{}, saved.Grouping...)

	m.pages = paginator.New()
	m.pages.Type = paginator.Dots
	m.pages.ActiveDot = styleHeader.Render("•")
	m.pages.InactiveDot = styleMuted.Render("•")

	m.filterInput = textinput.New()
	m.filterInput.Prompt = "filter: "
	m.filterInput.CharLimit = 64

	opts := m.gridOptions()
	opts.InitialColumnOrder = saved.ColumnOrder
	if saved.PageSize > 0 {
		opts.PageSize = saved.PageSize
	}
	m.grid = grid.New(opts)
	m.lastModTime = s.ModTime()
	return m
}

// gridOptions builds the options handed to the grid on every update.
func (m appModel) gridOptions() grid.Options {
	events := m.events
	grouping := m.grouping
	prefs := m.prefs
	st := m.store
	debug := m.debug

	savePrefs := func(fn func(*store.GridPrefs)) {
		prefs.Update(assetcols.GridName, fn)
		if err := st.SaveGridState(prefs); err != nil {
			debug.logf("save grid state: %v", err)
		}
	}

	return grid.Options{
		Data:    assetcols.Rows(m.assets, m.now()),
		Columns: assetcols.Columns(),
		Engine:  m.engine,
		DataKey: strconv.Itoa(m.dataVersion),

		ShowPagination: true,
		ShowCheckbox:   true,

		OnRowSelectionChange: func(sel grid.Selection, rows []grid.Row) {
			events.selected = sel.Count()
			debug.logf("selection count=%d resolved=%d", sel.Count(), len(rows))
		},

		EnableGrouping: true,
		Grouping:       grid.External(*grouping),
		OnGroupingChange: func(next []string) {
			*grouping = append([]string{}, next...)
			debug.logf("grouping %v", next)
			savePrefs(func(p *store.GridPrefs) { p.Grouping = append([]string{}, next...) })
		},

		OnPageSizeChange: func(size int) {
			savePrefs(func(p *store.GridPrefs) { p.PageSize = size })
		},
		OnColumnOrderChange: func(order []string) {
			debug.logf("column order %v", order)
			savePrefs(func(p *store.GridPrefs) { p.ColumnOrder = append([]string{}, order...) })
		},

		RowActions: assetcols.RowActions(func(r grid.Row) {
			events.deleteIDs = append(events.deleteIDs, r.ID)
		}),
	}
}

// syncGrid re-renders the grid with fresh options and keeps the cursors in range.
func (m *appModel) syncGrid() {
	m.grid.SetOptions(m.gridOptions())
	m.clampCursors()
}

func (m *appModel) clampCursors() {
	rows := 0
	if md := m.grid.Model(); md != nil {
		rows = len(md.Rows())
	}
	if m.rowCursor >= rows {
		m.rowCursor = rows - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
	cols := len(m.grid.Columns())
	if m.colCursor >= cols {
		m.colCursor = cols - 1
	}
	if m.colCursor < 0 {
		m.colCursor = 0
	}
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func commitFiltersNextFrame() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg { return commitFiltersMsg{} })
}

func loadAssetsCmd(s store.Store) tea.Cmd {
	return func() tea.Msg {
		assets, err := s.ListAssets(context.Background())
		return assetsLoadedMsg{assets: assets, err: err}
	}
}

func deleteAssetsCmd(s store.Store, ids []string) tea.Cmd {
	return func() tea.Msg {
		n, err := s.DeleteAssets(context.Background(), ids)
		return assetsDeletedMsg{n: n, err: err}
	}
}

// focusedColumn returns the column under the column cursor.
func (m appModel) focusedColumn() (grid.Column, bool) {
	cols := m.grid.Columns()
	if m.colCursor < 0 || m.colCursor >= len(cols) {
		return grid.Column{}, false
	}
	return cols[m.colCursor], true
}

// cursorRow returns the visible row under the row cursor.
func (m appModel) cursorRow() (grid.Row, bool) {
	md := m.grid.Model()
	if md == nil {
		return grid.Row{}, false
	}
	rows := md.Rows()
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return grid.Row{}, false
	}
	return rows[m.rowCursor], true
}
