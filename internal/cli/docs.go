package cli

import (
	"fmt"
	"os"
	"strings"

	"assetgrid/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var render bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				titles := make(map[string]string, len(topics))
				for _, t := range topics {
					titles[t] = docs.Title(t)
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": topics, "titles": titles}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `assetgrid docs` to list topics)", topic))
			}

			switch {
			case render:
				out, err := glamour.Render(body, docsStyle())
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": topic, "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.MarkFlagsMutuallyExclusive("raw", "render")

	return cmd
}

// docsStyle picks a glamour style without querying the terminal.
func docsStyle() string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("ASSETGRID_THEME")), "light") {
		return "light"
	}
	return "dark"
}
