package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// CategoryHandler handles category HTTP endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
	env             string
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService, env string) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, env: env}
}

// ListCategories handles GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

// ListCategoryNames handles GET /v1/categories/names
func (h *CategoryHandler) ListCategoryNames(c *gin.Context) {
	names, err := h.categoryService.ListNames(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Category names retrieved", names)
}

// CreateCategory handles POST /v1/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 201, "Category created successfully", gin.H{"id": id})
}

// DeleteCategory handles DELETE /v1/admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Category deleted successfully", nil)
}
