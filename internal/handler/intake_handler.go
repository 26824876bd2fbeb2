package handler

import (
	"errors"
	"net/http"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IntakeHandler handles pickup request and facility submissions
type IntakeHandler struct {
	service service.IntakeService
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(s service.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: s}
}

func (h *IntakeHandler) SubmitPickupRequest(c *gin.Context) {
	var req model.CreatePickupRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	pickup, err := h.service.SubmitPickupRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err, "Error saving e-waste request")
		return
	}
	c.JSON(http.StatusCreated, pickup)
}

func (h *IntakeHandler) SubmitFacility(c *gin.Context) {
	var req model.CreateFacilityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	facility, err := h.service.SubmitFacility(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err, "Error saving facility request")
		return
	}
	c.JSON(http.StatusCreated, facility)
}

func (h *IntakeHandler) ListPickupRequests(c *gin.Context) {
	requests, err := h.service.ListPickupRequests(c.Request.Context())
	if err != nil {
		internalError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *IntakeHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.service.ListFacilities(c.Request.Context())
	if err != nil {
		internalError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, facilities)
}

// RegisterIntakeRoutes registers the public intake routes and the admin listings
func (h *IntakeHandler) RegisterIntakeRoutes(rg gin.IRouter, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/EwasteRequest", h.SubmitPickupRequest)
	rg.POST("/facilityDetails", h.SubmitFacility)

	admin := rg.Group("/admin", authMW, adminMW)
	{
		admin.GET("/requests", h.ListPickupRequests)
		admin.GET("/facilities", h.ListFacilities)
	}
}
