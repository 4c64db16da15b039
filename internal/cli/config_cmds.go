package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/breakaway-dev/rinkctl/internal/config"
)

// NewConfigInitCmd creates the config init command for writing a starter
// configuration file.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: "Creates ~/.rinkctl/config.yaml populated with defaults.\n" +
			"Set RINKCTL_HOME to place the configuration elsewhere.",
		Example: `  # Create the configuration file
  rinkctl config init

  # Overwrite an existing file
  rinkctl config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	if err := config.Defaults().Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: "Validates the effective configuration, including the config file and\n" +
			"any RINKCTL_* environment overrides, for values that would break commands.",
		Example: `  # Validate current configuration
  rinkctl config validate

  # Validate and show the resolved settings
  rinkctl config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show resolved configuration details")
	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.NewWithContext(cmd.Context())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printConfigDetails(cmd, cfg)
	}
	return nil
}

func printConfigDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  API base URL: %s\n", cfg.API.BaseURL)
	cmd.Printf("  API timeout: %ds\n", cfg.API.TimeoutSeconds)
	if cfg.API.Token != "" {
		cmd.Println("  API token: set")
	} else {
		cmd.Println("  API token: not set")
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Page size: %d\n", cfg.Output.PageSize)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Audit enabled: %t\n", cfg.Logging.Audit.Enabled)
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration as YAML.
func NewConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: "Prints the resolved configuration after applying the config file and\n" +
			"environment overrides. The API token is redacted.",
		Example: `  # Show resolved settings
  rinkctl config show`,
		RunE: runConfigShow,
	}
	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := config.NewWithContext(cmd.Context())

	// Copy before redacting so the global config is untouched.
	display := *cfg
	if display.API.Token != "" {
		display.API.Token = "<redacted>"
	}

	data, err := yaml.Marshal(&display)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	cmd.Print(string(data))
	return nil
}
