package main

import (
	"fmt"

	root "vdpscanner"

	"github.com/spf13/cobra"
)

// migrateCommand constructs the 'migrate' subcommand that creates or
// upgrades the domains table.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := getPostgres(ctx, a.cfg)
			if err != nil {
				return fmt.Errorf("could not create postgres storage: %w", err)
			}
			defer closeStrg()

			return strg.Migrate(ctx, root.Migrations, "migrations") //nolint: wrapcheck
		},
	}

	return cmd
}
