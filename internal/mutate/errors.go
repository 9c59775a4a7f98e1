package mutate

import (
	"fmt"

	"assetgrid/internal/store"
)

// NotFoundError names the asset id that matched nothing. It unwraps to
// store.ErrNotFound.
type NotFoundError struct {
	AssetID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.AssetID)
}

func (e NotFoundError) Unwrap() error { return store.ErrNotFound }
