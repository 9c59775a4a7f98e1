// Package assetcols maps assets onto grid rows and columns.
package assetcols

import (
	"fmt"
	"strings"
	"time"

	"assetgrid/internal/grid"
	"assetgrid/internal/model"
)

// GridName keys the asset grid's saved preferences.
const GridName = "assets"

// Columns returns the asset grid's data columns in their default order.
func Columns() []grid.Column {
	return []grid.Column{
		{AccessorKey: "tag", Header: "Tag", Sortable: true, Filterable: true, Width: 9},
		{AccessorKey: "name", Header: "Name", Sortable: true, Filterable: true, Width: 18},
		{AccessorKey: "category", Header: "Category", Sortable: true, Filterable: true, Hideable: true, Width: 12},
		{AccessorKey: "department", Header: "Department", Sortable: true, Filterable: true, Hideable: true, Width: 12},
		{AccessorKey: "location", Header: "Location", Sortable: true, Filterable: true, Hideable: true, Width: 12},
		{AccessorKey: "customer", Header: "Customer", Sortable: true, Filterable: true, Hideable: true, Width: 10},
		{AccessorKey: "status", Header: "Status", Sortable: true, Filterable: true, Width: 11},
		{
			AccessorKey: "cost",
			Header:      "Cost",
			Sortable:    true,
			Width:       10,
			Cell: func(r grid.Row) string {
				v, ok := r.Data["cost"].(float64)
				if !ok {
					return ""
				}
				return fmt.Sprintf("%.2f", v)
			},
		},
		{
			AccessorKey: "purchased",
			Header:      "Purchased",
			Sortable:    true,
			Hideable:    true,
			Width:       10,
			Cell:        dateCell("purchased"),
		},
		{
			AccessorKey: "warranty",
			Header:      "Warranty",
			Sortable:    true,
			Filterable:  true,
			Hideable:    true,
			Width:       8,
		},
	}
}

func dateCell(key string) func(grid.Row) string {
	return func(r grid.Row) string {
		t, ok := r.Data[key].(time.Time)
		if !ok {
			return ""
		}
		return t.Format("2006-01-02")
	}
}

// Rows converts assets into grid rows keyed by asset id. now decides the
// warranty column.
func Rows(assets []model.Asset, now time.Time) []grid.Row {
	out := make([]grid.Row, 0, len(assets))
	for _, a := range assets {
		data := map[string]any{
			"tag":        a.Tag,
			"name":       a.Name,
			"category":   a.Category,
			"department": a.Department,
			"location":   a.Location,
			"customer":   a.Customer,
			"status":     string(a.Status),
			"cost":       a.Cost,
			"warranty":   warrantyLabel(a, now),
		}
		if a.PurchasedAt != nil {
			data["purchased"] = *a.PurchasedAt
		}
		out = append(out, grid.Row{ID: a.ID, Data: data, Source: a})
	}
	return out
}

func warrantyLabel(a model.Asset, now time.Time) string {
	switch {
	case a.WarrantyEnd == nil:
		return "none"
	case a.UnderWarranty(now):
		return "active"
	default:
		return "expired"
	}
}

// ColumnIDs returns the resolved ids of the data columns.
func ColumnIDs() []string {
	cols := Columns()
	out := make([]string, 0, len(cols))
	for i, c := range cols {
		out = append(out, grid.ResolveColumnID(c, i))
	}
	return out
}

// ParseColumnList parses a comma-separated list of column ids, rejecting
// unknown ones.
func ParseColumnList(s string) ([]string, error) {
	known := map[string]bool{}
	for _, id := range ColumnIDs() {
		known[id] = true
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if !known[id] {
			return nil, fmt.Errorf("unknown column %q (known: %s)", id, strings.Join(ColumnIDs(), ", "))
		}
		out = append(out, id)
	}
	return out, nil
}

// WithVisible marks every column not listed in ids as hidden. An empty list
// leaves every column visible.
func WithVisible(cols []grid.Column, ids []string) []grid.Column {
	if len(ids) == 0 {
		return cols
	}
	show := map[string]bool{}
	for _, id := range ids {
		show[id] = true
	}
	out := make([]grid.Column, len(cols))
	for i, c := range cols {
		c.Hidden = !show[grid.ResolveColumnID(c, i)]
		out[i] = c
	}
	return out
}

// DeleteActionID is the row action that deletes an asset.
const DeleteActionID = "delete"

// RowActions returns the asset grid's row actions. Callers that only need
// the column layout may pass a nil handler.
func RowActions(onDelete func(grid.Row)) []grid.RowAction {
	return []grid.RowAction{{ID: DeleteActionID, Label: "del", OnClick: onDelete}}
}

// ComposeOptions returns the synthetic columns the interactive grid shows.
// The saved column order always refers to this composition.
func ComposeOptions() grid.ComposeOptions {
	return grid.ComposeOptions{Selectable: true, RowActions: RowActions(nil)}
}
