package cli

import (
	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

// NewMatchCmd creates the match command group.
func NewMatchCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "match", Short: "Match schedule commands"}
	cmd.AddCommand(newMatchListCmd())
	return cmd
}

func newMatchListCmd() *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches",
		Long:  "List matches with substring search, column sorting, and pagination.",
		Example: `  # Upcoming fixtures, soonest first
  rinkctl match list --sort date

  # Everything played at one venue
  rinkctl match list --search "fargo arena"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, league.EntityMatches, params)
		},
	}

	addListFlags(cmd, &params)
	return cmd
}
