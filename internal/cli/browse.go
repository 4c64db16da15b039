package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/config"
	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/logging"
	"github.com/breakaway-dev/rinkctl/internal/tui"
)

// NewBrowseCmd creates the browse command, the interactive terminal UI over
// the same list pipeline the plain list commands use.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [entity]",
		Short: "Browse the league interactively",
		Long: "Open a full-screen browser over teams, players, seasons and matches.\n" +
			"Search, sort, page and toggle active flags without leaving the terminal.",
		Example: `  # Start on the teams tab
  rinkctl browse

  # Jump straight to players
  rinkctl browse players`,
		Args: cobra.MaximumNArgs(1),
		RunE: executeBrowse,
	}
	return cmd
}

func executeBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	entity := league.EntityTeams
	if len(args) > 0 {
		parsed, err := league.ParseEntity(args[0])
		if err != nil {
			return err
		}
		entity = parsed
	}

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("browse requires an interactive terminal (try 'rinkctl %s list' instead)", entity.Singular())
	}

	audit := newAuditContext(ctx, "browse", map[string]string{"entity": entity.String()})
	log.Info().Ctx(ctx).Str("entity", entity.String()).Msg("starting interactive browser")

	model := tui.NewBrowseModel(ctx, apiClient(ctx), entity, config.GetDefaultPageSize())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		audit.logFailure(ctx, err)
		return fmt.Errorf("running interactive browser: %w", err)
	}

	audit.logSuccess(ctx, 0)
	return nil
}
