package cli

import (
	"fmt"

	"assetgrid/internal/assetcols"
	"assetgrid/internal/grid"
	"assetgrid/internal/store"

	"github.com/spf13/cobra"
)

// columnsResult is the saved column order of the interactive grid.
type columnsResult struct {
	Order  []string `json:"order"`
	Locked []string `json:"locked"`
	Saved  bool     `json:"saved"`

	headers map[string]string
}

// columnsOutput wraps columnsResult in the CLI's data envelope.
type columnsOutput struct {
	Data columnsResult `json:"data"`
}

func (o columnsOutput) Table() ([]string, [][]string) { return o.Data.table() }

func (r columnsResult) table() ([]string, [][]string) {
	rows := make([][]string, 0, len(r.Order))
	locked := map[string]bool{}
	for _, id := range r.Locked {
		locked[id] = true
	}
	for i, id := range r.Order {
		pin := ""
		if locked[id] {
			pin = "pinned"
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), id, r.headers[id], pin})
	}
	return []string{"#", "Column", "Header", ""}, rows
}

func newColumnsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show the grid's saved column order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadGridState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			saved := st.Prefs(assetcols.GridName).ColumnOrder
			res := columnOrder(saved)
			res.Saved = len(saved) > 0
			return writeOut(cmd, app, columnsOutput{Data: res})
		},
	}
	cmd.AddCommand(newColumnsMoveCmd(app))
	cmd.AddCommand(newColumnsResetCmd(app))
	return cmd
}

func newColumnsMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <column> <onto-column>",
		Short: "Move a column to the position of another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, st, err := loadGridState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			current := columnOrder(st.Prefs(assetcols.GridName).ColumnOrder)
			for _, id := range args {
				if indexOf(current.Order, id) < 0 {
					return writeErr(cmd, errNotFound("column", id))
				}
			}
			next, ok := grid.MoveColumn(current.Order, args[0], args[1], grid.DefaultLocks())
			if !ok {
				return writeErr(cmd, fmt.Errorf("cannot move %s onto %s (pinned columns stay at the edges)", args[0], args[1]))
			}
			if err := saveColumnOrder(s, st, next); err != nil {
				return writeErr(cmd, err)
			}
			res := columnOrder(next)
			res.Saved = true
			return writeOut(cmd, app, columnsOutput{Data: res})
		},
	}
}

func newColumnsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved column order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, st, err := loadGridState(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveColumnOrder(s, st, nil); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, columnsOutput{Data: columnOrder(nil)})
		},
	}
}

func loadGridState(app *App) (store.Store, *store.GridState, error) {
	s, err := loadStore(app)
	if err != nil {
		return store.Store{}, nil, err
	}
	st, err := s.LoadGridState()
	if err != nil {
		return store.Store{}, nil, err
	}
	return s, st, nil
}

func saveColumnOrder(s store.Store, st *store.GridState, order []string) error {
	st.Update(assetcols.GridName, func(p *store.GridPrefs) { p.ColumnOrder = order })
	return s.SaveGridState(st)
}

// columnOrder repairs saved against the interactive grid's current columns.
func columnOrder(saved []string) columnsResult {
	cols := grid.Compose(assetcols.Columns(), assetcols.ComposeOptions())
	locks := grid.DefaultLocks()
	headers := make(map[string]string, len(cols))
	for _, c := range cols {
		headers[c.ID] = c.Header
	}
	return columnsResult{
		Order:   grid.Reconcile(saved, grid.AvailableIDs(cols), locks),
		Locked:  append(append([]string{}, locks.Start...), locks.End...),
		headers: headers,
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
