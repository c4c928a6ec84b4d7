package service

import (
	"context"
	"strings"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// CategoryStore is the storage surface the category service depends on.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	ListNames(ctx context.Context) ([]string, error)
	SoftDelete(ctx context.Context, id int) error
}

// CategoryService handles category lifecycle operations.
type CategoryService struct {
	store CategoryStore
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategoryRequest represents the request to create a category.
type CreateCategoryRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *int    `json:"parent_category_id"`
}

// Create validates the request and inserts the category, returning its id.
func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (int, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, apperrors.NewFieldValidation("name", "category name is required")
	}
	if req.ParentCategoryID != nil && *req.ParentCategoryID <= 0 {
		return 0, apperrors.NewFieldValidation("parent_category_id", "must be a positive id")
	}

	category := &models.Category{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	}
	if err := s.store.Create(ctx, category); err != nil {
		return 0, err
	}
	return category.ID, nil
}

// List returns every active category with parent names resolved.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.List(ctx)
}

// ListNames returns active category names, newest first.
func (s *CategoryService) ListNames(ctx context.Context) ([]string, error) {
	return s.store.ListNames(ctx)
}

// Delete soft-deletes a category. The store refuses with a ConflictError when
// active products or subcategories still reference it.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperrors.NewFieldValidation("id", "must be a positive id")
	}
	return s.store.SoftDelete(ctx, id)
}
