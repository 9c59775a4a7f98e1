package statusutil

import (
	"fmt"
	"strings"

	"assetgrid/internal/model"
)

var aliases = map[string]model.AssetStatus{
	"ok":       model.AssetStatusActive,
	"up":       model.AssetStatusActive,
	"maint":    model.AssetStatusMaintenance,
	"service":  model.AssetStatusMaintenance,
	"broken":   model.AssetStatusDown,
	"disposed": model.AssetStatusRetired,
}

// NormalizeAssetStatus accepts a status in any case, or one of its short aliases.
func NormalizeAssetStatus(s string) (model.AssetStatus, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", fmt.Errorf("invalid status: empty")
	}
	if st := model.AssetStatus(v); st.Valid() {
		return st, nil
	}
	if st, ok := aliases[v]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q (want one of %s)", strings.TrimSpace(s), statusList())
}

func statusList() string {
	parts := make([]string, 0, len(model.AssetStatuses))
	for _, st := range model.AssetStatuses {
		parts = append(parts, string(st))
	}
	return strings.Join(parts, "|")
}

// IsEndState reports whether status is terminal. Retired assets never come back.
func IsEndState(status model.AssetStatus) bool {
	return status == model.AssetStatusRetired
}
