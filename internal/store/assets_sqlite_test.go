package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"assetgrid/internal/model"
)

func TestAssets_AddGetListDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bought := now.AddDate(-1, 0, 0)

	added, err := s.AddAssets(ctx, []model.Asset{
		{Tag: "AT-0002", Name: "Pump 200", Department: "Ops", Status: model.AssetStatusActive, Cost: 1200, PurchasedAt: &bought},
		{Tag: "AT-0001", Name: "Valve 100", Department: "Yard", Status: model.AssetStatusDown},
	}, now)
	if err != nil {
		t.Fatalf("AddAssets: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 added, got %d", len(added))
	}
	for _, a := range added {
		if !IsAssetID(a.ID) {
			t.Fatalf("expected generated asset id, got %q", a.ID)
		}
		if len(a.Serial) != 12 {
			t.Fatalf("expected 12-char serial, got %q", a.Serial)
		}
	}

	list, err := s.ListAssets(ctx)
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(list) != 2 || list[0].Tag != "AT-0001" || list[1].Tag != "AT-0002" {
		t.Fatalf("expected assets ordered by tag, got %#v", list)
	}

	got, err := s.GetAsset(ctx, added[0].ID)
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if got.Name != "Pump 200" || got.Cost != 1200 {
		t.Fatalf("unexpected asset: %#v", got)
	}
	if got.PurchasedAt == nil || !got.PurchasedAt.Equal(bought) {
		t.Fatalf("purchasedAt mismatch: %v", got.PurchasedAt)
	}
	if got.WarrantyEnd != nil {
		t.Fatalf("expected nil warranty, got %v", got.WarrantyEnd)
	}

	n, err := s.DeleteAssets(ctx, []string{added[0].ID, "asset-missing"})
	if err != nil {
		t.Fatalf("DeleteAssets: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}
	if _, err := s.GetAsset(ctx, added[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssets_AddRejectsInvalidWithAllProblems(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	_, err := s.AddAssets(context.Background(), []model.Asset{{Status: "broken", Cost: -1}}, time.Now())
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"tag is required", "name is required", `invalid status "broken"`, "cost must not be negative"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
	if s.Exists() {
		t.Fatalf("expected no database to be created for invalid input")
	}
}

func TestAssets_DuplicateTagFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	a := model.Asset{Tag: "AT-0001", Name: "Pump", Status: model.AssetStatusActive}
	if _, err := s.AddAssets(ctx, []model.Asset{a}, time.Now()); err != nil {
		t.Fatalf("AddAssets: %v", err)
	}
	if _, err := s.AddAssets(ctx, []model.Asset{a}, time.Now()); err == nil {
		t.Fatalf("expected unique tag violation")
	}
	n, err := s.CountAssets(ctx)
	if err != nil {
		t.Fatalf("CountAssets: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 asset after failed insert, got %d", n)
	}
}

func TestSeedAssets_ContinuesTags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.SeedAssets(ctx, 3, 1, now); err != nil {
		t.Fatalf("SeedAssets: %v", err)
	}
	more, err := s.SeedAssets(ctx, 2, 2, now)
	if err != nil {
		t.Fatalf("SeedAssets (second): %v", err)
	}
	if more[0].Tag != "AT-0004" || more[1].Tag != "AT-0005" {
		t.Fatalf("expected tags to continue, got %s, %s", more[0].Tag, more[1].Tag)
	}
	n, _ := s.CountAssets(ctx)
	if n != 5 {
		t.Fatalf("expected 5 assets, got %d", n)
	}
}

func TestSampleAssets_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := SampleAssets(10, 42, now)
	b := SampleAssets(10, 42, now)
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Department != b[i].Department || a[i].Cost != b[i].Cost {
			t.Fatalf("sample %d differs: %#v vs %#v", i, a[i], b[i])
		}
		if err := ValidateAsset(a[i]); err != nil {
			t.Fatalf("sample %d invalid: %v", i, err)
		}
	}
}
