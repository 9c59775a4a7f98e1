package cli

import (
	"fmt"
	"os"
	"strings"

	"assetgrid/internal/format"
	"assetgrid/internal/store"
	"assetgrid/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "assetgrid",
		Short:        "Asset inventory grid (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive grid
  assetgrid

  # Scriptable commands
  assetgrid assets list --sort cost:desc --format table

  # Direct asset lookup (shortcut for: assetgrid assets show <asset-id>)
  assetgrid asset-abcd1234
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ASSETGRID_DIR", ""), "Path to store dir (default: ~/.assetgrid)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ASSETGRID_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newAssetsCmd(app))
	cmd.AddCommand(newColumnsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	s, err := loadStore(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	if err := s.Init(cmd.Context()); err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cmd.Context(), s)
}

func loadStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
