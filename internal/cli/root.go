package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/catalog_admin/internal/config"
)

// NewRootCommand returns the catalog command. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Catalog administration service for brands, categories, products and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional env file loaded before the process environment")

	root.AddCommand(newServeCommand(&envFile), newMigrateCommand(&envFile))
	return root
}
