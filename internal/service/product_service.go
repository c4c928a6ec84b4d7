package service

import (
	"context"
	"strings"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// ProductStore is the storage surface the product service depends on.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product, quantity int) error
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product, quantity *int, updatedBy int) error
	SoftDelete(ctx context.Context, id int) error
}

// ProductService handles product lifecycle operations.
type ProductService struct {
	store ProductStore
}

// NewProductService constructs a ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// CreateProductRequest represents the request to create a product.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	CategoryID    int     `json:"category_id"`
	StockQuantity *int    `json:"stock_quantity"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateProductRequest represents the request to update a product. All fields
// except stock quantity replace the stored values outright.
type UpdateProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	CategoryID    int     `json:"category_id"`
	IsAvailable   bool    `json:"is_available"`
	StockQuantity *int    `json:"stock_quantity"`
}

func validateProductFields(name string, price float64, categoryID int, stockQuantity *int) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewFieldValidation("name", "product name is required")
	}
	if price <= 0 {
		return apperrors.NewFieldValidation("price", "price must be positive")
	}
	if categoryID <= 0 {
		return apperrors.NewFieldValidation("category_id", "category id is required")
	}
	if stockQuantity != nil && *stockQuantity < 0 {
		return apperrors.NewFieldValidation("stock_quantity", "stock quantity cannot be negative")
	}
	return nil
}

// Create validates the request and inserts the product together with its
// inventory row. actorID is the admin performing the operation and is recorded
// on both rows. Stock defaults to 0, availability to true.
func (s *ProductService) Create(ctx context.Context, actorID int, req *CreateProductRequest) (int, error) {
	if err := validateProductFields(req.Name, req.Price, req.CategoryID, req.StockQuantity); err != nil {
		return 0, err
	}

	quantity := 0
	if req.StockQuantity != nil {
		quantity = *req.StockQuantity
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product := &models.Product{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: available,
		CreatedBy:   actorID,
	}
	if err := s.store.Create(ctx, product, quantity); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// List returns all active products with category name and stock quantity.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.store.List(ctx)
}

// Get returns a single active product.
func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, apperrors.NewFieldValidation("id", "must be a positive id")
	}
	return s.store.GetByID(ctx, id)
}

// Update replaces the mutable product fields; inventory quantity changes only
// when the request carries one. actorID is recorded on the inventory row.
func (s *ProductService) Update(ctx context.Context, actorID, id int, req *UpdateProductRequest) error {
	if id <= 0 {
		return apperrors.NewFieldValidation("id", "must be a positive id")
	}
	if err := validateProductFields(req.Name, req.Price, req.CategoryID, req.StockQuantity); err != nil {
		return err
	}

	product := &models.Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}
	return s.store.Update(ctx, product, req.StockQuantity, actorID)
}

// Delete soft-deletes a product. The store refuses with a ConflictError when
// the product appears in any non-deleted order.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperrors.NewFieldValidation("id", "must be a positive id")
	}
	return s.store.SoftDelete(ctx, id)
}
