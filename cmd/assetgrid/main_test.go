package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectAssetLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"assetgrid"},
			want: []string{"assetgrid"},
		},
		{
			name: "asset id first",
			in:   []string{"assetgrid", "asset-7f3a"},
			want: []string{"assetgrid", "assets", "show", "asset-7f3a"},
		},
		{
			name: "asset id after value flag",
			in:   []string{"assetgrid", "--dir", "./data", "asset-7f3a"},
			want: []string{"assetgrid", "--dir", "./data", "assets", "show", "asset-7f3a"},
		},
		{
			name: "asset id after equals flag",
			in:   []string{"assetgrid", "--format=table", "asset-7f3a"},
			want: []string{"assetgrid", "--format=table", "assets", "show", "asset-7f3a"},
		},
		{
			name: "asset id after bool flag",
			in:   []string{"assetgrid", "--pretty", "asset-7f3a"},
			want: []string{"assetgrid", "--pretty", "assets", "show", "asset-7f3a"},
		},
		{
			name: "asset id after double dash",
			in:   []string{"assetgrid", "--", "asset-7f3a"},
			want: []string{"assetgrid", "--", "assets", "show", "asset-7f3a"},
		},
		{
			name: "bare prefix is not an id",
			in:   []string{"assetgrid", "asset-"},
			want: []string{"assetgrid", "asset-"},
		},
		{
			name: "subcommand left alone",
			in:   []string{"assetgrid", "assets", "show", "asset-7f3a"},
			want: []string{"assetgrid", "assets", "show", "asset-7f3a"},
		},
		{
			name: "flag value that looks like an id is not rewritten",
			in:   []string{"assetgrid", "--dir", "asset-data", "columns"},
			want: []string{"assetgrid", "--dir", "asset-data", "columns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectAssetLookupArgs(append([]string(nil), tt.in...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
