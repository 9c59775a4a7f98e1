package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assetgrid/internal/assetcols"
	"assetgrid/internal/grid"
	"assetgrid/internal/model"
	"assetgrid/internal/mutate"
	"assetgrid/internal/rowmodel"
	"assetgrid/internal/statusutil"

	"github.com/spf13/cobra"
)

func newAssetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List and manage assets",
	}
	cmd.AddCommand(newAssetsListCmd(app))
	cmd.AddCommand(newAssetsShowCmd(app))
	cmd.AddCommand(newAssetsAddCmd(app))
	cmd.AddCommand(newAssetsSeedCmd(app))
	cmd.AddCommand(newAssetsStatusCmd(app))
	cmd.AddCommand(newAssetsDeleteCmd(app))
	return cmd
}

type listOptions struct {
	sort     []string
	filters  []string
	group    []string
	columns  string
	page     int
	pageSize int
}

// listRow is one row of `assets list` output. Group rows carry the grouped
// column, its value and the number of assets under it.
type listRow struct {
	ID     string            `json:"id"`
	Group  bool              `json:"group,omitempty"`
	Depth  int               `json:"depth,omitempty"`
	Column string            `json:"column,omitempty"`
	Value  string            `json:"value,omitempty"`
	Count  int               `json:"count,omitempty"`
	Cells  map[string]string `json:"cells,omitempty"`
}

type listMeta struct {
	Columns   []string          `json:"columns"`
	Sort      []grid.SortSpec   `json:"sort,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	Grouping  []string          `json:"grouping,omitempty"`
	Page      int               `json:"page,omitempty"`
	PageCount int               `json:"pageCount,omitempty"`
	Total     int               `json:"total"`
}

type listResult struct {
	Data []listRow `json:"data"`
	Meta listMeta  `json:"meta"`

	view grid.View
}

// Table implements format.Tabular.
func (r listResult) Table() ([]string, [][]string) {
	headers := make([]string, 0, len(r.view.Headers))
	for _, h := range r.view.Headers {
		headers = append(headers, h.Label)
	}
	rows := make([][]string, 0, len(r.view.Rows))
	for _, vr := range r.view.Rows {
		cells := make([]string, 0, len(vr.Cells))
		for _, c := range vr.Cells {
			text := c.Text
			if vr.IsGroup && text != "" {
				text = strings.Repeat("  ", vr.Depth) + text
			}
			cells = append(cells, text)
		}
		rows = append(rows, cells)
	}
	return headers, rows
}

func newAssetsListCmd(app *App) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets (sort, filter, group, paginate)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			assets, err := s.ListAssets(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			prefs, err := s.LoadGridState()
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := listAssets(assets, prefs.Prefs(assetcols.GridName).ColumnOrder, opts, time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sort, "sort", nil, "Sort by column, optionally :desc (e.g. cost:desc)")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "Filter column=value (case-insensitive substring; repeatable)")
	cmd.Flags().StringArrayVar(&opts.group, "group", nil, "Group by column (repeatable for nested groups)")
	cmd.Flags().StringVar(&opts.columns, "columns", "", "Comma-separated columns to show (default: all)")
	cmd.Flags().IntVar(&opts.page, "page", 0, "Page number (1-based; enables pagination)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Page size (enables pagination)")

	return cmd
}

// listAssets runs assets through the same grid the TUI uses, headless.
func listAssets(assets []model.Asset, savedOrder []string, opts listOptions, now time.Time) (listResult, error) {
	sortSpecs, err := parseSortFlags(opts.sort)
	if err != nil {
		return listResult{}, err
	}
	filters, err := parseFilterFlags(opts.filters)
	if err != nil {
		return listResult{}, err
	}
	grouping, err := assetcols.ParseColumnList(strings.Join(opts.group, ","))
	if err != nil {
		return listResult{}, usageError{flag: "group", msg: err.Error()}
	}
	visible, err := assetcols.ParseColumnList(opts.columns)
	if err != nil {
		return listResult{}, usageError{flag: "columns", msg: err.Error()}
	}
	if opts.page < 0 || opts.pageSize < 0 {
		return listResult{}, usageError{flag: "page", msg: "must not be negative"}
	}

	paginate := opts.page > 0 || opts.pageSize > 0
	g := grid.New(grid.Options{
		Data:               assetcols.Rows(assets, now),
		Columns:            assetcols.WithVisible(assetcols.Columns(), visible),
		Engine:             rowmodel.New(),
		ShowPagination:     paginate,
		PageSize:           opts.pageSize,
		EnableGrouping:     true,
		InitialColumnOrder: savedOrder,
	})

	g.SetSorting(sortSpecs)
	for id, v := range filters {
		g.QueueFilter(id, v)
	}
	g.CommitFilters()
	if len(grouping) > 0 {
		g.SetGrouping(grid.Set(grouping))
		expanded := grid.Expansion{}
		for _, r := range g.Model().GroupRows() {
			expanded[r.ID] = true
		}
		g.SetExpanded(grid.Set(expanded))
	}
	if opts.page > 1 {
		g.SetPage(opts.page - 1)
	}

	view := g.View()
	p := view.Pagination
	res := listResult{
		Data: make([]listRow, 0, len(view.Rows)),
		Meta: listMeta{
			Columns:  g.Order(),
			Sort:     g.Sorting(),
			Filters:  g.Filters(),
			Grouping: grouping,
			Total:    p.TotalCount,
		},
		view: view,
	}
	if paginate {
		res.Meta.Page = p.Page + 1
		res.Meta.PageCount = p.PageCount
	}
	for _, vr := range view.Rows {
		if vr.IsGroup {
			res.Data = append(res.Data, listRow{
				ID:     vr.ID,
				Group:  true,
				Depth:  vr.Depth,
				Column: vr.Row.GroupColumn,
				Value:  fmt.Sprint(vr.Row.GroupValue),
				Count:  vr.Row.LeafCount,
			})
			continue
		}
		cells := make(map[string]string, len(vr.Cells))
		for _, c := range vr.Cells {
			cells[c.ColumnID] = c.Text
		}
		res.Data = append(res.Data, listRow{ID: vr.ID, Depth: vr.Depth, Cells: cells})
	}
	return res, nil
}

func parseSortFlags(flags []string) ([]grid.SortSpec, error) {
	known := map[string]bool{}
	for _, id := range assetcols.ColumnIDs() {
		known[id] = true
	}
	var out []grid.SortSpec
	for _, f := range flags {
		id, dir, _ := strings.Cut(strings.TrimSpace(f), ":")
		if !known[id] {
			return nil, usageError{flag: "sort", msg: fmt.Sprintf("unknown column %q", id)}
		}
		spec := grid.SortSpec{ColumnID: id}
		switch strings.ToLower(dir) {
		case "", "asc":
		case "desc":
			spec.Desc = true
		default:
			return nil, usageError{flag: "sort", msg: fmt.Sprintf("direction must be asc or desc, got %q", dir)}
		}
		out = append(out, spec)
	}
	return out, nil
}

func parseFilterFlags(flags []string) (map[string]string, error) {
	known := map[string]bool{}
	for _, c := range grid.Compose(assetcols.Columns(), grid.ComposeOptions{}) {
		if c.Filterable {
			known[c.ID] = true
		}
	}
	out := map[string]string{}
	for _, f := range flags {
		id, v, ok := strings.Cut(f, "=")
		id = strings.TrimSpace(id)
		if !ok {
			return nil, usageError{flag: "filter", msg: fmt.Sprintf("expected column=value, got %q", f)}
		}
		if !known[id] {
			return nil, usageError{flag: "filter", msg: fmt.Sprintf("column %q is not filterable", id)}
		}
		out[id] = v
	}
	return out, nil
}

func newAssetsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <asset-id>",
		Short: "Show one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := s.GetAsset(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, lookupErr("asset", args[0], err))
			}
			return writeOut(cmd, app, map[string]any{
				"data": a,
				"meta": map[string]any{"underWarranty": a.UnderWarranty(time.Now())},
			})
		},
	}
}

func newAssetsAddCmd(app *App) *cobra.Command {
	var (
		a         model.Asset
		status    string
		purchased string
		warranty  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unknown statuses pass through so validation reports them with everything else.
			a.Status = model.AssetStatus(strings.ToLower(strings.TrimSpace(status)))
			if st, err := statusutil.NormalizeAssetStatus(status); err == nil {
				a.Status = st
			}
			var err error
			if a.PurchasedAt, err = parseDateFlag("purchased", purchased); err != nil {
				return writeErr(cmd, err)
			}
			if a.WarrantyEnd, err = parseDateFlag("warranty-end", warranty); err != nil {
				return writeErr(cmd, err)
			}

			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			added, err := s.AddAssets(cmd.Context(), []model.Asset{a}, time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": added[0]})
		},
	}

	cmd.Flags().StringVar(&a.Tag, "tag", "", "Asset tag (required, unique)")
	cmd.Flags().StringVar(&a.Name, "name", "", "Asset name (required)")
	cmd.Flags().StringVar(&a.Serial, "serial", "", "Serial number (default: generated)")
	cmd.Flags().StringVar(&a.Category, "category", "", "Category")
	cmd.Flags().StringVar(&a.Department, "department", "", "Department")
	cmd.Flags().StringVar(&a.Location, "location", "", "Location")
	cmd.Flags().StringVar(&a.Customer, "customer", "", "Customer")
	cmd.Flags().StringVar(&status, "status", string(model.AssetStatusActive), "Status (active|maintenance|down|retired)")
	cmd.Flags().Float64Var(&a.Cost, "cost", 0, "Purchase cost")
	cmd.Flags().StringVar(&purchased, "purchased", "", "Purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&warranty, "warranty-end", "", "Warranty end date (YYYY-MM-DD)")

	return cmd
}

func parseDateFlag(flag, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, usageError{flag: flag, msg: fmt.Sprintf("expected YYYY-MM-DD, got %q", v)}
	}
	return &t, nil
}

func newAssetsSeedCmd(app *App) *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated sample assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return writeErr(cmd, usageError{flag: "count", msg: "must be positive"})
			}
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			added, err := s.SeedAssets(cmd.Context(), count, seed, time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			ids := make([]string, 0, len(added))
			for _, a := range added {
				ids = append(ids, a.ID)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"added": len(added), "ids": ids}})
		},
	}

	cmd.Flags().IntVar(&count, "count", 25, "Number of assets to generate")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")

	return cmd
}

func newAssetsStatusCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "status <asset-id> <status>",
		Short: "Change an asset's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.SetAssetStatus(cmd.Context(), s, args[0], args[1], force, time.Now())
			if err != nil {
				var nf mutate.NotFoundError
				switch {
				case errors.As(err, &nf):
					err = errNotFound("asset", nf.AssetID)
				case errors.Is(err, mutate.ErrRetired):
					err = fmt.Errorf("%w (use --force to reopen)", err)
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": res.Asset,
				"meta": map[string]any{"changed": res.Changed, "from": res.From, "to": res.To},
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Allow moving a retired asset back into service")
	return cmd
}

func newAssetsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <asset-id>...",
		Short: "Delete assets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := s.DeleteAssets(cmd.Context(), args)
			if err != nil {
				return writeErr(cmd, err)
			}
			if n == 0 && len(args) == 1 {
				return writeErr(cmd, errNotFound("asset", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": n, "requested": len(args)}})
		},
	}
}
