package cli

import (
	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

// NewTeamCmd creates the team command group.
func NewTeamCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "team", Short: "Team roster commands"}
	cmd.AddCommand(newTeamListCmd(), newTeamSetActiveCmd())
	return cmd
}

func newTeamListCmd() *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		Long:  "List teams with substring search, column sorting, and pagination.",
		Example: `  # List all teams
  rinkctl team list

  # Search and sort by wins, best record first
  rinkctl team list --search fargo --sort wins:desc

  # Second page of ten, as JSON
  rinkctl team list --page 2 --page-size 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, league.EntityTeams, params)
		},
	}

	addListFlags(cmd, &params)
	return cmd
}

func newTeamSetActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-active <id> <true|false>",
		Short: "Set a team's active flag",
		Long:  "Activate or deactivate a team. Deactivated teams stay listed but are marked inactive.",
		Example: `  # Deactivate a team
  rinkctl team set-active t-042 false`,
		Args: cobra.ExactArgs(2), //nolint:mnd // id and flag value.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetActive(cmd, league.EntityTeams, args)
		},
	}
}
