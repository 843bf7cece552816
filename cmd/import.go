package main

import (
	"fmt"

	"vdpscanner/internal/source"
	"vdpscanner/pkg/logger"
	"vdpscanner/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that loads a DotGov CSV
// file into the domains table.
func importCommand(a *app) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Loads a DotGov CSV file into the domains table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			records, err := source.Local{Path: inputPath(a.cfg, args[0])}.Domains(ctx)
			if err != nil {
				return err //nolint: wrapcheck
			}

			strg, closeStrg, err := getPostgres(ctx, a.cfg)
			if err != nil {
				return fmt.Errorf("could not create postgres storage: %w", err)
			}
			defer closeStrg()

			var upserted, pruned int64
			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				if prune {
					stale, txErr := staleDomains(ctx, tx, records)
					if txErr != nil {
						return txErr
					}
					if pruned, txErr = tx.DeleteDomains(ctx, stale...); txErr != nil {
						return txErr //nolint: wrapcheck
					}
				}

				var txErr error
				upserted, txErr = tx.UpsertDomains(ctx, records...)

				return txErr //nolint: wrapcheck
			})
			if err != nil {
				return fmt.Errorf("could not import domains: %w", err)
			}

			logger.Info(ctx, "domains imported",
				zap.Int("read", len(records)),
				zap.Int64("upserted", upserted),
				zap.Int64("pruned", pruned))

			return nil
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete stored domains missing from FILE")

	return cmd
}
