package cli

import (
	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

// NewSeasonCmd creates the season command group.
func NewSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "season", Short: "Season schedule commands"}
	cmd.AddCommand(newSeasonListCmd())
	return cmd
}

func newSeasonListCmd() *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List seasons",
		Long:  "List seasons with substring search, column sorting, and pagination.",
		Example: `  # Newest seasons first
  rinkctl season list --sort start_date:desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, league.EntitySeasons, params)
		},
	}

	addListFlags(cmd, &params)
	return cmd
}
