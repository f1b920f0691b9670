// Package cli implements the gram command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gram-cli/gram/internal/api"
	"github.com/gram-cli/gram/internal/config"
	"github.com/gram-cli/gram/internal/logging"
	"github.com/gram-cli/gram/internal/styles"
)

// Execute runs the gram CLI.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gram",
		Short:         "Read your messaging inbox from the terminal",
		Long:          "gram is a command-line front-end to a messaging-platform bridge server: login, search users, list the inbox, and read conversations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	cmd.PersistentFlags().String("config", "", "Path to config file")

	cmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newWhoamiCmd(),
		newSearchCmd(),
		newInboxCmd(),
		newThreadCmd(),
		newOpenCmd(),
	)

	return cmd
}

// App bundles what every command needs: configuration, the API client, and
// the render theme.
type App struct {
	Config *config.Config
	Client *api.Client
	Theme  styles.Theme
}

// loadApp loads configuration (honoring --config), initializes logging, and
// builds the API client.
func loadApp(cmd *cobra.Command) (*App, error) {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	return &App{
		Config: cfg,
		Client: api.NewClient(cfg.Server),
		Theme:  styles.Default(),
	}, nil
}
