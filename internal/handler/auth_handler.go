package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qrobotics/storefront-api/internal/middleware"
	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// AuthHandler handles admin authentication and account endpoints.
type AuthHandler struct {
	adminService *service.AdminService
	rateLimiter  *middleware.LoginRateLimiter
	env          string
}

// NewAuthHandler constructs an AuthHandler. rateLimiter may be nil, in which
// case failed-login throttling is disabled.
func NewAuthHandler(adminService *service.AdminService, rateLimiter *middleware.LoginRateLimiter, env string) *AuthHandler {
	return &AuthHandler{adminService: adminService, rateLimiter: rateLimiter, env: env}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Email and password are required")
		return
	}

	if h.rateLimiter != nil && !h.rateLimiter.Allow(c.Request.Context(), c.ClientIP()) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many failed login attempts, try again later")
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.rateLimiter != nil {
			h.rateLimiter.RecordFailure(c.Request.Context(), c.ClientIP())
		}
		if errors.Is(err, service.ErrAccountInactive) {
			utils.Error(c, 403, "ACCOUNT_INACTIVE", err.Error())
			return
		}
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	if h.rateLimiter != nil {
		h.rateLimiter.Reset(c.Request.Context(), c.ClientIP())
	}
	utils.Success(c, 200, "Login successful", gin.H{"token": token})
}

// CreateAdmin handles POST /v1/admin/admins
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.adminService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 201, "Admin created successfully", gin.H{"id": id})
}

// GetAdminByEmail handles GET /v1/admin/admins/:email
func (h *AuthHandler) GetAdminByEmail(c *gin.Context) {
	admin, err := h.adminService.GetAdminByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Admin retrieved", admin)
}
