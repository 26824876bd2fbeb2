package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ewaste_backend/internal/config"
	"ewaste_backend/internal/logger"
	"ewaste_backend/internal/migrations"
	"ewaste_backend/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ewaste",
	Short: "E-waste pickup and recycling backend",
	Long: `Serves the e-waste pickup API: user and admin accounts, pickup requests,
facility registration and reward estimates.

Running the binary without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging for every subcommand
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LogLevel, cfg.Env)
	return cfg, nil
}

// openStore connects to the configured backend and prepares its schema/indexes
func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := config.ConnectDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("Postgres migrations applied")
		return repository.NewPostgresStore(pool), nil
	default:
		client, db, err := config.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return repository.NewMongoStore(client, db), nil
	}
}
