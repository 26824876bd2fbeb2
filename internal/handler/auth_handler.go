package handler

import (
	"errors"
	"net/http"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login for users and admins
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.service.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, token, err := h.service.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		internalError(c, err, "Server error")
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user_id": user.ID,
		"token":   token,
	})
}

func (h *AuthHandler) AdminRegister(c *gin.Context) {
	var req model.RegisterAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	admin, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err, "Error registering admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Admin registered successfully",
		"admin_id":     admin.ID,
		"adminName":    admin.AdminName,
		"email":        admin.Email,
		"facilityName": admin.FacilityName,
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	admin, token, err := h.service.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		internalError(c, err, "Server error")
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"admin_id": admin.ID,
		"token":    token,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg gin.IRouter) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)

	admin := rg.Group("/admin")
	{
		admin.POST("/register", h.AdminRegister)
		admin.POST("/login", h.AdminLogin)
	}
}
