package mutate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assetgrid/internal/model"
	"assetgrid/internal/statusutil"
	"assetgrid/internal/store"
)

var ErrInvalidStatus = errors.New("invalid status")
var ErrRetired = errors.New("asset is retired")

type SetStatusResult struct {
	Asset   model.Asset
	Changed bool
	From    model.AssetStatus
	To      model.AssetStatus
}

// SetAssetStatus moves an asset to status. Leaving retired needs force.
func SetAssetStatus(ctx context.Context, s store.Store, assetID, status string, force bool, now time.Time) (SetStatusResult, error) {
	assetID = strings.TrimSpace(assetID)
	to, err := statusutil.NormalizeAssetStatus(status)
	if err != nil {
		return SetStatusResult{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	a, err := s.GetAsset(ctx, assetID)
	if errors.Is(err, store.ErrNotFound) {
		return SetStatusResult{}, NotFoundError{AssetID: assetID}
	}
	if err != nil {
		return SetStatusResult{}, err
	}

	prev := a.Status
	if prev == to {
		return SetStatusResult{Asset: a, From: prev, To: to}, nil
	}
	if statusutil.IsEndState(prev) && !force {
		return SetStatusResult{}, ErrRetired
	}

	if err := s.SetAssetStatus(ctx, assetID, to, now); err != nil {
		return SetStatusResult{}, err
	}
	a.Status = to
	a.UpdatedAt = now.UTC()
	return SetStatusResult{Asset: a, Changed: true, From: prev, To: to}, nil
}
