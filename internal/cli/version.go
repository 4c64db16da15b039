package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/api"
	"github.com/breakaway-dev/rinkctl/internal/logging"
	"github.com/breakaway-dev/rinkctl/pkg/version"
)

// NewVersionCmd creates the version command. With --backend it also queries
// the league backend and checks the version against the supported minimum.
func NewVersionCmd() *cobra.Command {
	var backend bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Client version only
  rinkctl version

  # Also query the backend and check compatibility
  rinkctl version --backend`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeVersion(cmd, backend)
		},
	}

	cmd.Flags().BoolVar(&backend, "backend", false, "also report the backend version")
	return cmd
}

func executeVersion(cmd *cobra.Command, backend bool) error {
	cmd.Printf("rinkctl %s\n", version.GetVersion())

	if !backend {
		return nil
	}

	ctx := cmd.Context()
	client := apiClient(ctx)

	info, err := client.Version(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().Ctx(ctx).Err(err).Msg("backend version query failed")
		return fmt.Errorf("querying backend version: %w", err)
	}

	cmd.Printf("backend %s\n", info.Version)

	if err := api.CheckCompatibility(info); err != nil {
		return fmt.Errorf("backend compatibility: %w", err)
	}
	cmd.Printf("backend is compatible (minimum supported: %s)\n", api.MinBackendVersion)
	return nil
}
