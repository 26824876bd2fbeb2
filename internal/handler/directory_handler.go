package handler

import (
	"errors"
	"net/http"

	"ewaste_backend/internal/middleware"
	"ewaste_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves account listings and the caller's own record
type DirectoryHandler struct {
	service service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(s service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *DirectoryHandler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		internalError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, admins)
}

// GetUserData returns the user identified by the bearer token
func (h *DirectoryHandler) GetUserData(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		internalError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, user)
}

// RegisterDirectoryRoutes registers the read routes
func (h *DirectoryHandler) RegisterDirectoryRoutes(rg gin.IRouter, authMW gin.HandlerFunc) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/admins", h.ListAdmins)
	rg.GET("/user-data", authMW, h.GetUserData)
}
