package model

import "time"

type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusDown        AssetStatus = "down"
	AssetStatusRetired     AssetStatus = "retired"
)

// AssetStatuses lists the valid statuses in display order.
var AssetStatuses = []AssetStatus{
	AssetStatusActive,
	AssetStatusMaintenance,
	AssetStatusDown,
	AssetStatusRetired,
}

func (s AssetStatus) Valid() bool {
	for _, v := range AssetStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Asset struct {
	ID     string `json:"id"`
	Tag    string `json:"tag"`
	Serial string `json:"serial,omitempty"`
	Name   string `json:"name"`

	Category   string      `json:"category,omitempty"`
	Department string      `json:"department,omitempty"`
	Location   string      `json:"location,omitempty"`
	Customer   string      `json:"customer,omitempty"`
	Status     AssetStatus `json:"status"`

	Cost        float64    `json:"cost"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
	WarrantyEnd *time.Time `json:"warrantyEnd,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnderWarranty reports whether the asset's warranty covers now.
func (a Asset) UnderWarranty(now time.Time) bool {
	return a.WarrantyEnd != nil && !now.After(*a.WarrantyEnd)
}
