package handler

import (
	"context"
	"net/http"
	"time"

	"ewaste_backend/internal/middleware"
	"ewaste_backend/internal/service"
	"ewaste_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies groups everything the router needs
type Dependencies struct {
	Auth      service.AuthService
	Intake    service.IntakeService
	Rewards   service.RewardService
	Directory service.DirectoryService
	JWT       *utils.JWTUtil
	Store     Pinger
	StaticDir string
}

// NewRouter builds the gin engine with middleware and all routes registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(deps.JWT)
	adminRoleMW := middleware.AdminMiddleware()

	NewAuthHandler(deps.Auth).RegisterAuthRoutes(router)
	NewIntakeHandler(deps.Intake).RegisterIntakeRoutes(router, jwtAuthMW, adminRoleMW)
	NewRewardHandler(deps.Rewards).RegisterRewardRoutes(router)
	NewDirectoryHandler(deps.Directory).RegisterDirectoryRoutes(router, jwtAuthMW)

	router.GET("/health", healthCheck(deps.Store))

	if deps.StaticDir != "" {
		router.Static("/public", deps.StaticDir)
	}

	return router
}

func healthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "store": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "healthy"})
	}
}
