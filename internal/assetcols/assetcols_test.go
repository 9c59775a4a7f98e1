package assetcols

import (
	"testing"
	"time"

	"assetgrid/internal/grid"
	"assetgrid/internal/model"
	"assetgrid/internal/rowmodel"

	"github.com/stretchr/testify/require"
)

func TestRows_MapsAssetFields(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	bought := now.AddDate(-2, 0, 0)
	ends := now.AddDate(1, 0, 0)
	old := now.AddDate(-1, 0, 0)

	rows := Rows([]model.Asset{
		{ID: "asset-a", Tag: "AT-1", Name: "Pump", Status: model.AssetStatusActive, Cost: 12.5, PurchasedAt: &bought, WarrantyEnd: &ends},
		{ID: "asset-b", Tag: "AT-2", Name: "Valve", Status: model.AssetStatusDown, WarrantyEnd: &old},
		{ID: "asset-c", Tag: "AT-3", Name: "Crane", Status: model.AssetStatusRetired},
	}, now)

	require.Len(t, rows, 3)
	require.Equal(t, "asset-a", rows[0].ID)
	require.Equal(t, "active", rows[0].Data["warranty"])
	require.Equal(t, "expired", rows[1].Data["warranty"])
	require.Equal(t, "none", rows[2].Data["warranty"])
	require.NotContains(t, rows[1].Data, "purchased")

	cols := grid.Compose(Columns(), grid.ComposeOptions{})
	byID := map[string]grid.Column{}
	for _, c := range cols {
		byID[c.ID] = c
	}
	require.Equal(t, "12.50", grid.CellText(byID["cost"], rows[0]))
	require.Equal(t, bought.Format("2006-01-02"), grid.CellText(byID["purchased"], rows[0]))
	require.Equal(t, "", grid.CellText(byID["purchased"], rows[1]))
}

func TestColumns_SortByCostIsNumeric(t *testing.T) {
	rows := Rows([]model.Asset{
		{ID: "a", Tag: "A", Name: "a", Status: model.AssetStatusActive, Cost: 900},
		{ID: "b", Tag: "B", Name: "b", Status: model.AssetStatusActive, Cost: 10000},
		{ID: "c", Tag: "C", Name: "c", Status: model.AssetStatusActive, Cost: 50},
	}, time.Now())

	g := grid.New(grid.Options{Data: rows, Columns: Columns(), Engine: rowmodel.New()})
	g.ToggleSort("cost")

	var got []string
	for _, r := range g.Model().Rows() {
		got = append(got, r.ID)
	}
	require.Equal(t, []string{"c", "a", "b"}, got)
}

func TestParseColumnList(t *testing.T) {
	ids, err := ParseColumnList(" name, tag ,,status")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "tag", "status"}, ids)

	_, err = ParseColumnList("name,bogus")
	require.ErrorContains(t, err, `unknown column "bogus"`)
}

func TestWithVisible(t *testing.T) {
	cols := WithVisible(Columns(), []string{"name", "cost"})
	require.Equal(t, []string{"name", "cost"}, grid.AvailableIDs(grid.Compose(cols, grid.ComposeOptions{})))

	require.Equal(t, Columns()[0].Hidden, WithVisible(Columns(), nil)[0].Hidden)
}
