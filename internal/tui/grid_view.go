package tui

import (
	"fmt"
	"strings"

	"assetgrid/internal/docs"
	"assetgrid/internal/grid"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	selectColWidth  = 3
	defaultColWidth = 12
	colGap          = 1
)

type colSpan struct {
	id     string
	x0, x1 int // [x0, x1)
	width  int
}

// gridLayout maps screen coordinates to grid columns and rows. The title
// takes the first line, headers the second, then a rule, then the body.
type gridLayout struct {
	headerY int
	bodyY   int
	spans   []colSpan
}

func (l gridLayout) columnAt(x int) string {
	for _, s := range l.spans {
		if x >= s.x0 && x < s.x1 {
			return s.id
		}
	}
	return ""
}

func (l gridLayout) totalWidth() int {
	if len(l.spans) == 0 {
		return 0
	}
	return l.spans[len(l.spans)-1].x1
}

func (m appModel) layout() gridLayout {
	return layoutFor(m.grid.View().Headers)
}

func layoutFor(headers []grid.HeaderCell) gridLayout {
	l := gridLayout{headerY: 1, bodyY: 3}
	x := 0
	for _, h := range headers {
		w := columnWidth(h)
		l.spans = append(l.spans, colSpan{id: h.ColumnID, x0: x, x1: x + w, width: w})
		x += w + colGap
	}
	return l
}

func columnWidth(h grid.HeaderCell) int {
	switch h.Kind {
	case grid.CellSelect:
		return selectColWidth
	case grid.CellActions:
		return max(xansi.StringWidth(h.Label), 5)
	}
	w := h.Width
	if w <= 0 {
		w = defaultColWidth
	}
	// Room for the label plus a sort or filter marker.
	return max(w, xansi.StringWidth(h.Label)+2)
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > w {
		s = xansi.Truncate(s, w, "…")
	}
	if pad := w - xansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func checkGlyph(state grid.HeaderCheckState) string {
	switch state {
	case grid.Checked:
		return "[x]"
	case grid.Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

func headerText(h grid.HeaderCell) string {
	if h.Kind == grid.CellSelect {
		return checkGlyph(h.Check)
	}
	label := h.Label
	switch h.Sort {
	case grid.SortAscending:
		label += " ▲"
	case grid.SortDescending:
		label += " ▼"
	}
	if h.Filter != "" {
		label += "*"
	}
	return label
}

func cellText(c grid.Cell, row grid.ViewRow) string {
	switch c.Kind {
	case grid.CellSelect:
		if !c.Selectable {
			return ""
		}
		if c.Checked {
			return "[x]"
		}
		return "[ ]"
	case grid.CellData:
		if row.IsGroup && c.Text != "" {
			marker := "▸ "
			if row.Expanded {
				marker = "▾ "
			}
			return strings.Repeat("  ", row.Depth) + marker + c.Text
		}
	}
	return c.Text
}

func (m appModel) View() string {
	if m.showHelp {
		return m.helpView()
	}

	v := m.grid.View()
	lay := layoutFor(v.Headers)
	gap := strings.Repeat(" ", colGap)

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.titleText(v)))
	b.WriteByte('\n')

	headers := make([]string, 0, len(v.Headers))
	for i, h := range v.Headers {
		text := fit(headerText(h), lay.spans[i].width)
		st := styleHeader
		switch {
		case h.DropTarget:
			st = styleDropOn
		case h.Dragging:
			st = styleDragging
		case i == m.colCursor:
			st = styleFocusCol
		case !h.Draggable:
			st = styleHeaderDim
		}
		headers = append(headers, st.Render(text))
	}
	b.WriteString(strings.Join(headers, gap))
	b.WriteByte('\n')
	b.WriteString(styleMuted.Render(strings.Repeat("─", lay.totalWidth())))
	b.WriteByte('\n')

	if len(v.Rows) == 0 {
		b.WriteString(styleMuted.Render("  no assets"))
		b.WriteByte('\n')
	}
	for ri, row := range v.Rows {
		cells := make([]string, 0, len(row.Cells))
		for ci, c := range row.Cells {
			cells = append(cells, fit(cellText(c, row), lay.spans[ci].width))
		}
		line := strings.Join(cells, gap)
		switch {
		case ri == m.rowCursor:
			line = styleCursorRow.Render(line)
		case row.IsGroup:
			line = styleGroupRow.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(m.footerView(v))
	return b.String()
}

func (m appModel) titleText(v grid.View) string {
	parts := []string{"Assets"}
	if g := m.grid.Grouping(); v.Grouping && len(g) > 0 {
		parts = append(parts, "grouped by "+strings.Join(g, " > "))
	}
	if f := m.grid.Filters(); len(f) > 0 {
		keys := make([]string, 0, len(f))
		for _, id := range m.grid.Order() {
			if val, ok := f[id]; ok {
				keys = append(keys, id+"~"+val)
			}
		}
		parts = append(parts, "filter "+strings.Join(keys, ", "))
	}
	return strings.Join(parts, " · ")
}

func (m appModel) footerView(v grid.View) string {
	var lines []string

	p := v.Pagination
	if p.Enabled {
		pages := m.pages
		pages.TotalPages = p.PageCount
		pages.Page = p.Page
		lines = append(lines, fmt.Sprintf("page %d/%d  %s  %d rows · %d per page · %d selected",
			p.Page+1, p.PageCount, pages.View(), p.TotalCount, p.PageSize, p.SelectedCount))
	}

	if v.Drag.Phase() != grid.DragIdle && m.mouseDragCol == "" {
		target := v.Drag.OverID()
		if target == "" {
			target = "…"
		}
		lines = append(lines, styleStatus.Render(fmt.Sprintf("moving %s → %s", v.Drag.ActiveID(), target)))
		lines = append(lines, m.help.View(m.dragKeys))
		return strings.Join(lines, "\n")
	}

	if m.filtering {
		lines = append(lines, styleInput.Render(m.filterInput.View()))
	}
	if m.err != nil {
		lines = append(lines, styleStatus.Render("error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, styleStatus.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m appModel) helpView() string {
	body, _ := docs.Get("keys")
	width := m.width
	if width <= 0 {
		width = 80
	}
	out := renderMarkdown(body, min(width, 100))
	return lipgloss.JoinVertical(lipgloss.Left, out, styleMuted.Render("esc/? to close"))
}
