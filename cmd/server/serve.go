package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ewaste_backend/internal/config"
	"ewaste_backend/internal/handler"
	"ewaste_backend/internal/model"
	"ewaste_backend/internal/service"
	"ewaste_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	authService := service.NewAuthService(store.Users, store.Admins, jwtUtil)
	intakeService := service.NewIntakeService(store.Pickups, store.Facilities)
	rewardService := service.NewRewardService(store.Rewards, model.DefaultRewards)
	directoryService := service.NewDirectoryService(store.Users, store.Admins)

	// Seed before listening so no request sees a partial reward table
	if err := rewardService.SeedRewards(ctx); err != nil {
		return err
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.Dependencies{
		Auth:      authService,
		Intake:    intakeService,
		Rewards:   rewardService,
		Directory: directoryService,
		JWT:       jwtUtil,
		Store:     store,
		StaticDir: cfg.StaticDir,
	})

	return listenAndServe(ctx, cfg, router)
}

func listenAndServe(ctx context.Context, cfg *config.Config, h http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.ServerPort).Str("store", cfg.StoreDriver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("Server exiting")
	return nil
}
