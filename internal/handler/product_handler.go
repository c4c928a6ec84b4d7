package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// ProductHandler handles product HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
	env            string
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService, env string) *ProductHandler {
	return &ProductHandler{productService: productService, env: env}
}

// ListProducts handles GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Products retrieved", products)
}

// GetProduct handles GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.productService.Create(c.Request.Context(), c.GetInt("admin_id"), &req)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 201, "Product created successfully", gin.H{"id": id})
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.productService.Update(c.Request.Context(), c.GetInt("admin_id"), id, &req); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Product updated successfully", nil)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}
