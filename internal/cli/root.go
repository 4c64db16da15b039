package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/breakaway-dev/rinkctl/internal/config"
	"github.com/breakaway-dev/rinkctl/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the rinkctl CLI. It wires
// up configuration loading, logging, tracing, audit logging, and the
// entity subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "rinkctl",
		Short:   "League operations console",
		Long:    "rinkctl: browse and administer hockey league records from the terminal",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.InitGlobalConfig()
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		NewTeamCmd(),
		NewPlayerCmd(),
		NewSeasonCmd(),
		NewMatchCmd(),
		NewOverviewCmd(),
		NewBrowseCmd(),
		newConfigCmd(),
		NewVersionCmd(),
	)

	return cmd
}

const rootCmdExample = `  # List teams with search and sort
  rinkctl team list --search fargo --sort wins:desc

  # Page through players as JSON
  rinkctl player list --page 2 --page-size 10 --output json

  # Flip a team's active flag
  rinkctl team set-active t-042 false

  # League at a glance
  rinkctl overview

  # Browse records interactively
  rinkctl browse players

  # Initialize configuration
  rinkctl config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
