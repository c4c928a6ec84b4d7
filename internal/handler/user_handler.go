package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// UserHandler handles user account HTTP endpoints.
type UserHandler struct {
	accountService *service.AccountService
	env            string
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(accountService *service.AccountService, env string) *UserHandler {
	return &UserHandler{accountService: accountService, env: env}
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.accountService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 201, "User created", gin.H{"id": id})
}

// CreateAddress handles POST /v1/users/addresses
func (h *UserHandler) CreateAddress(c *gin.Context) {
	var req service.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.accountService.CreateAddress(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 201, "Address created", gin.H{"id": id})
}

type updateNameRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateName handles PUT /v1/users/name
func (h *UserHandler) UpdateName(c *gin.Context) {
	var req updateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.accountService.UpdateName(c.Request.Context(), req.Email, req.FirstName, req.LastName); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Name updated successfully", nil)
}

type updatePasswordRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// UpdatePassword handles PUT /v1/users/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.accountService.UpdatePassword(c.Request.Context(), req.Email, req.PasswordHash); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Password updated successfully", nil)
}

type updatePhoneRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// UpdatePhone handles PUT /v1/users/phone
func (h *UserHandler) UpdatePhone(c *gin.Context) {
	var req updatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.accountService.UpdatePhone(c.Request.Context(), req.Email, req.PhoneNumber); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Phone number updated successfully", nil)
}

// GetUserByEmail handles GET /v1/users/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.accountService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "User retrieved", user)
}
