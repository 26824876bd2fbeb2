package handler

import (
	"errors"
	"net/http"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RewardHandler serves the reward estimator
type RewardHandler struct {
	service service.RewardService
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(s service.RewardService) *RewardHandler {
	return &RewardHandler{service: s}
}

// Estimate answers with the total reward points for the submitted items.
// Any unknown item fails the whole request without saying which one.
func (h *RewardHandler) Estimate(c *gin.Context) {
	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	total, err := h.service.Estimate(c.Request.Context(), req.Items)
	if err != nil {
		if errors.Is(err, service.ErrEstimateOverflow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantities are too large"})
			return
		}
		internalError(c, err, "Error estimating rewards")
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalRewards": total})
}

// RegisterRewardRoutes registers reward routes
func (h *RewardHandler) RegisterRewardRoutes(rg gin.IRouter) {
	rg.POST("/estimate", h.Estimate)
}
