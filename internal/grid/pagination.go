package grid

// Pagination is the pagination footer state.
type Pagination struct {
	Enabled       bool
	External      bool
	Page          int
	PageSize      int
	PageCount     int
	TotalCount    int
	SelectedCount int
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 0 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page+1 < p.PageCount }

func (g *Grid) externalPagination() bool { return g.opts.OnPageChange != nil }

func (g *Grid) builtInPagination() bool {
	return g.opts.ShowPagination && !g.externalPagination()
}

// Pagination returns the current pagination state. Caller-driven pagination
// reports the caller's numbers verbatim.
func (g *Grid) Pagination() Pagination {
	if g.externalPagination() {
		size := g.opts.PageSize
		if size <= 0 {
			size = DefaultPageSize
		}
		pages := (g.opts.TotalCount + size - 1) / size
		if pages < 1 {
			pages = 1
		}
		return Pagination{
			Enabled:       g.opts.ShowPagination,
			External:      true,
			Page:          g.opts.CurrentPage,
			PageSize:      size,
			PageCount:     pages,
			TotalCount:    g.opts.TotalCount,
			SelectedCount: g.opts.SelectedCount,
		}
	}
	p := Pagination{
		Enabled:       g.opts.ShowPagination,
		Page:          g.pageIndex,
		PageSize:      g.pageSize,
		PageCount:     1,
		SelectedCount: g.selection.Get().Count(),
	}
	if g.model != nil {
		p.PageCount = g.model.PageCount()
		p.TotalCount = g.model.RowCount()
	}
	return p
}

// SetPage moves to page (zero-based). Caller-driven pagination only reports
// the request; built-in pagination clamps it to the available pages.
func (g *Grid) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	if g.externalPagination() {
		g.opts.OnPageChange(page)
		return
	}
	if g.model != nil && page >= g.model.PageCount() {
		page = g.model.PageCount() - 1
	}
	if page == g.pageIndex {
		return
	}
	g.pageIndex = page
	g.refresh()
}

func (g *Grid) NextPage() { g.SetPage(g.Pagination().Page + 1) }
func (g *Grid) PrevPage() { g.SetPage(g.Pagination().Page - 1) }

// SetPageSize changes the page size and returns to the first page. The
// OnPageSizeChange callback fires in both pagination modes.
func (g *Grid) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	if g.externalPagination() {
		if g.opts.OnPageSizeChange != nil {
			g.opts.OnPageSizeChange(size)
		}
		return
	}
	if size == g.pageSize {
		return
	}
	g.pageSize = size
	g.pageIndex = 0
	g.refresh()
	if g.opts.OnPageSizeChange != nil {
		g.opts.OnPageSizeChange(size)
	}
}
