// Package main provides the CLI entrypoint of the VDP scanner. It wires the
// scan subcommands (local, github, postgres) and the domain store maintenance
// commands (import, migrate), loads configuration and initializes logging.
package main

import (
	"context"
	"os"

	"vdpscanner/internal/config"
	"vdpscanner/pkg/logger"
	"vdpscanner/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands. cfg is populated by the root
// command's PersistentPreRunE, before any subcommand runs.
type app struct {
	configPath string
	debug      bool
	agencyCSV  string
	domainCSV  string

	cfg *config.Config
}

// load reads the configuration, applies flag overrides and sets up logging.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err //nolint: wrapcheck
	}

	if a.debug {
		cfg.Debug = true
	}
	if a.agencyCSV != "" {
		cfg.Output.AgencyCSV = a.agencyCSV
	}
	if a.domainCSV != "" {
		cfg.Output.DomainCSV = a.domainCSV
	}

	logger.Setup(cfg.Environment, cfg.Debug)
	a.cfg = cfg

	return nil
}

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func(), error) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		return nil, nil, err //nolint: wrapcheck
	}

	return pgsql, func() {
		logger.Debug(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}, nil
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vdp-scanner",
		Short: "Checks federal domains for a published Vulnerability Disclosure Policy",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "config.yml", "Config file path")
	flags.BoolVarP(&a.debug, "debug", "d", false, "Include debugging messages in the output")
	flags.StringVarP(&a.agencyCSV, "agency-csv", "a", "", "Filename to use for agency results")
	flags.StringVarP(&a.domainCSV, "domain-csv", "t", "", "Filename to use for domain results")

	rootCmd.AddCommand(
		localCommand(a),
		githubCommand(a),
		postgresCommand(a),
		importCommand(a),
		migrateCommand(a),
		versionCommand(),
	)

	return rootCmd
}

// main builds the root command and executes it, exiting non-zero on error.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
