package main

import (
	"os"
	"strings"

	"assetgrid/internal/cli"
	"assetgrid/internal/store"
)

// rewriteDirectAssetLookupArgs turns `assetgrid <asset-id>` into
// `assetgrid assets show <asset-id>`. Persistent flags may come first, so
// the first positional token is what counts, not argv[1].
func rewriteDirectAssetLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}

	insertShow := func(at int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:at]...)
		out = append(out, "assets", "show")
		return append(out, argv[at:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			if i+1 < len(argv) && store.IsAssetID(argv[i+1]) {
				return insertShow(i + 1)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			// Unknown flags are skipped without their value so an id is never swallowed.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if store.IsAssetID(a) {
			return insertShow(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectAssetLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
