package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"assetgrid/internal/model"
)

var (
	seedCategories  = []string{"Pump", "Valve", "Compressor", "Forklift", "Generator", "Laptop", "HVAC Unit", "Crane"}
	seedDepartments = []string{"Operations", "Facilities", "IT", "Logistics", "Maintenance"}
	seedLocations   = []string{"Plant A", "Plant B", "Warehouse 1", "Warehouse 2", "HQ"}
	seedCustomers   = []string{"", "Acme Corp", "Globex", "Initech", "Umbrella"}
)

// SampleAssets returns n generated assets. The same seed yields the same
// assets (ids and serials aside, which are assigned on insert).
func SampleAssets(n int, seed int64, now time.Time) []model.Asset {
	rng := rand.New(rand.NewSource(seed))
	out := make([]model.Asset, 0, n)
	for i := 0; i < n; i++ {
		cat := seedCategories[rng.Intn(len(seedCategories))]
		purchased := now.AddDate(0, -rng.Intn(60)-1, -rng.Intn(28)).UTC().Truncate(24 * time.Hour)
		a := model.Asset{
			Tag:         fmt.Sprintf("AT-%04d", i+1),
			Name:        fmt.Sprintf("%s %d", cat, rng.Intn(900)+100),
			Category:    cat,
			Department:  seedDepartments[rng.Intn(len(seedDepartments))],
			Location:    seedLocations[rng.Intn(len(seedLocations))],
			Customer:    seedCustomers[rng.Intn(len(seedCustomers))],
			Status:      model.AssetStatuses[rng.Intn(len(model.AssetStatuses))],
			Cost:        float64(rng.Intn(50000) + 500),
			PurchasedAt: &purchased,
		}
		if rng.Intn(3) != 0 {
			w := purchased.AddDate(rng.Intn(4)+1, 0, 0)
			a.WarrantyEnd = &w
		}
		out = append(out, a)
	}
	return out
}

// SeedAssets inserts n sample assets with tags continuing after the current count.
func (s Store) SeedAssets(ctx context.Context, n int, seed int64, now time.Time) ([]model.Asset, error) {
	existing, err := s.CountAssets(ctx)
	if err != nil {
		return nil, err
	}
	sample := SampleAssets(n, seed, now)
	for i := range sample {
		sample[i].Tag = fmt.Sprintf("AT-%04d", existing+i+1)
	}
	return s.AddAssets(ctx, sample, now)
}
