package store

import (
	"errors"
	"fmt"
	"strings"

	"assetgrid/internal/model"

	"github.com/hashicorp/go-multierror"
)

// ValidateAsset reports every problem with a, not just the first.
func ValidateAsset(a model.Asset) error {
	var result *multierror.Error
	if strings.TrimSpace(a.Tag) == "" {
		result = multierror.Append(result, errors.New("tag is required"))
	}
	if strings.TrimSpace(a.Name) == "" {
		result = multierror.Append(result, errors.New("name is required"))
	}
	if !a.Status.Valid() {
		result = multierror.Append(result, fmt.Errorf("invalid status %q", a.Status))
	}
	if a.Cost < 0 {
		result = multierror.Append(result, fmt.Errorf("cost must not be negative (got %v)", a.Cost))
	}
	if a.PurchasedAt != nil && a.WarrantyEnd != nil && a.WarrantyEnd.Before(*a.PurchasedAt) {
		result = multierror.Append(result, errors.New("warranty ends before purchase"))
	}
	return result.ErrorOrNil()
}
