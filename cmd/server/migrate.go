package main

import (
	"context"
	"fmt"

	"ewaste_backend/internal/config"
	"ewaste_backend/internal/migrations"
	"ewaste_backend/internal/model"
	"ewaste_backend/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL migrations (STORE_DRIVER=postgres only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.StoreDriver != config.DriverPostgres {
			return fmt.Errorf("migrate requires STORE_DRIVER=%s, got %q", config.DriverPostgres, cfg.StoreDriver)
		}

		pool, err := config.ConnectDB(cmd.Context(), cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := migrations.Up(cmd.Context(), pool); err != nil {
			return err
		}
		log.Info().Msg("Migrations applied successfully")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed-rewards",
	Short: "Upsert the reward reference table and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		return service.NewRewardService(store.Rewards, model.DefaultRewards).SeedRewards(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
