package cli

import (
	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

// NewPlayerCmd creates the player command group.
func NewPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "player", Short: "Player roster commands"}
	cmd.AddCommand(newPlayerListCmd(), newPlayerSetActiveCmd())
	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		Long:  "List players with substring search, column sorting, and pagination.",
		Example: `  # Top scorers first
  rinkctl player list --sort points:desc

  # Search across name, team, and position
  rinkctl player list --search varga`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, league.EntityPlayers, params)
		},
	}

	addListFlags(cmd, &params)
	return cmd
}

func newPlayerSetActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-active <id> <true|false>",
		Short: "Set a player's active flag",
		Example: `  # Move a player back onto the active roster
  rinkctl player set-active p-107 true`,
		Args: cobra.ExactArgs(2), //nolint:mnd // id and flag value.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetActive(cmd, league.EntityPlayers, args)
		},
	}
}
